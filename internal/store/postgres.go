package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if cfg.MaxConns <= 0 {
		cfg.MaxConns = defaultPoolSize
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertPriceEntry inserts or replaces a price row, matching codes without
// regard to case.
func (s *PostgresStore) UpsertPriceEntry(ctx context.Context, e *domain.PriceEntry) error {
	var single *int64
	if e.SingleCost.IsNumeric() {
		v := e.SingleCost.Amount
		single = &v
	}

	state := e.SingleCost.Kind
	if state == "" {
		state = domain.KindNumeric
	}

	args := pgx.NamedArgs{
		"code":        string(e.Code),
		"description": e.Description,
		"cost_state":  string(state),
		"single_cost": single,
		"max_cost":    e.MaxCost,
	}

	if _, err := s.pool.Exec(ctx, queryUpsertPriceEntry, args); err != nil {
		return fmt.Errorf("upserting price %s: %w", e.Code, err)
	}
	return nil
}

// GetPriceEntry retrieves one price row by code, ignoring case.
func (s *PostgresStore) GetPriceEntry(ctx context.Context, code domain.Code) (*domain.PriceEntry, error) {
	e := &domain.PriceEntry{}
	if err := scanPriceEntry(s.pool.QueryRow(ctx, queryGetPriceEntry, string(code)), e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("price %s: %w", code, ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

// ListPriceEntries returns every price row in insertion order.
func (s *PostgresStore) ListPriceEntries(ctx context.Context) ([]domain.PriceEntry, error) {
	rows, err := s.pool.Query(ctx, queryListPriceEntries)
	if err != nil {
		return nil, fmt.Errorf("querying prices: %w", err)
	}
	defer rows.Close()

	var entries []domain.PriceEntry
	for rows.Next() {
		var e domain.PriceEntry
		if err := scanPriceEntry(rows, &e); err != nil {
			return nil, fmt.Errorf("scanning price: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CreateInspection inserts a new inspection. An ID is generated when unset.
func (s *PostgresStore) CreateInspection(ctx context.Context, in *domain.Inspection) error {
	if len(in.Codes) > domain.InspectionSlots {
		return fmt.Errorf("inspection has %d codes, at most %d allowed",
			len(in.Codes), domain.InspectionSlots)
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
	}

	slots := codeSlots(in.Codes)
	args := pgx.NamedArgs{
		"id":        in.ID,
		"reference": in.Reference,
		"code_1":    slots[0],
		"code_2":    slots[1],
		"code_3":    slots[2],
		"code_4":    slots[3],
	}

	if err := s.pool.QueryRow(ctx, queryInsertInspection, args).Scan(&in.CreatedAt); err != nil {
		return fmt.Errorf("inserting inspection: %w", err)
	}
	return nil
}

// GetInspection retrieves an inspection by ID.
func (s *PostgresStore) GetInspection(ctx context.Context, id string) (*domain.Inspection, error) {
	in := &domain.Inspection{}
	if err := scanInspection(s.pool.QueryRow(ctx, queryGetInspection, id), in); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("inspection %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return in, nil
}

// ListInspections queries inspections with optional filters, returning
// results and total count.
func (s *PostgresStore) ListInspections(
	ctx context.Context,
	q *InspectionQuery,
) ([]domain.Inspection, int, error) {
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting inspections: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying inspections: %w", err)
	}
	defer rows.Close()

	inspections, err := collectInspections(rows)
	if err != nil {
		return nil, 0, err
	}
	return inspections, total, nil
}

// ListInspectionsCursor returns up to limit inspections with IDs after
// afterID, in ID order. With pendingOnly, costed inspections are skipped.
func (s *PostgresStore) ListInspectionsCursor(
	ctx context.Context,
	afterID string,
	limit int,
	pendingOnly bool,
) ([]domain.Inspection, error) {
	rows, err := s.pool.Query(ctx, queryListInspectionsCursor, afterID, limit, pendingOnly)
	if err != nil {
		return nil, fmt.Errorf("querying inspections after %q: %w", afterID, err)
	}
	defer rows.Close()

	return collectInspections(rows)
}

// UpdateInspectionCost records a computed total and clears any prior failure.
func (s *PostgresStore) UpdateInspectionCost(ctx context.Context, id string, cost domain.Cost) error {
	tag, err := s.pool.Exec(ctx, queryUpdateInspectionCost, id, cost.String(), string(cost.Kind))
	if err != nil {
		return fmt.Errorf("updating inspection %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inspection %s: %w", id, ErrNotFound)
	}
	return nil
}

// RecordInspectionFailure stores why an inspection could not be costed and
// leaves it pending.
func (s *PostgresStore) RecordInspectionFailure(ctx context.Context, id, errText string) error {
	tag, err := s.pool.Exec(ctx, queryRecordInspectionFailure, id, errText)
	if err != nil {
		return fmt.Errorf("recording failure for inspection %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inspection %s: %w", id, ErrNotFound)
	}
	return nil
}

// scannable is satisfied by pgx.Row and pgx.Rows.
type scannable interface {
	Scan(dest ...any) error
}

func scanPriceEntry(row scannable, e *domain.PriceEntry) error {
	var (
		code   string
		state  string
		single *int64
	)
	if err := row.Scan(&code, &e.Description, &state, &single, &e.MaxCost); err != nil {
		return err
	}

	e.Code = domain.Code(code)
	switch domain.CostKind(state) {
	case domain.KindNeedsReplacement:
		e.SingleCost = domain.NeedsReplacement()
	case domain.KindNotAvailable:
		e.SingleCost = domain.NotAvailable()
	default:
		if single == nil {
			return fmt.Errorf("price %s: numeric entry without single cost", code)
		}
		e.SingleCost = domain.Numeric(*single)
	}
	return nil
}

func scanInspection(row scannable, in *domain.Inspection) error {
	var (
		slots [domain.InspectionSlots]*string
		kind  string
	)
	if err := row.Scan(
		&in.ID, &in.Reference, &slots[0], &slots[1], &slots[2], &slots[3],
		&in.TotalCost, &kind, &in.CostError,
		&in.CostedAt, &in.CreatedAt,
	); err != nil {
		return err
	}

	in.CostKind = domain.CostKind(kind)
	in.Codes = make([]domain.Code, domain.InspectionSlots)
	for i, s := range slots {
		if s != nil {
			in.Codes[i] = domain.Code(*s)
		}
	}
	return nil
}

func collectInspections(rows pgx.Rows) ([]domain.Inspection, error) {
	var out []domain.Inspection
	for rows.Next() {
		var in domain.Inspection
		if err := scanInspection(rows, &in); err != nil {
			return nil, fmt.Errorf("scanning inspection: %w", err)
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

// codeSlots maps codes onto the fixed inspection columns; absent codes are NULL.
func codeSlots(codes []domain.Code) [domain.InspectionSlots]*string {
	var slots [domain.InspectionSlots]*string
	for i, c := range codes {
		if i >= domain.InspectionSlots {
			break
		}
		if !c.IsAbsent() {
			s := string(c)
			slots[i] = &s
		}
	}
	return slots
}
