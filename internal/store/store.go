// Package store defines the datastore abstraction for repair-cost.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"

	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// InspectionQuery defines optional filters for inspection queries.
type InspectionQuery struct {
	CostKind  *domain.CostKind
	Costed    *bool
	Failed    *bool
	Reference *string // prefix match
	Limit     int     // default 50
	Offset    int
	OrderBy   string // "created_at", "costed_at", "reference"
}

// Store defines all data access operations for repair-cost.
type Store interface {
	// Prices
	UpsertPriceEntry(ctx context.Context, e *domain.PriceEntry) error
	GetPriceEntry(ctx context.Context, code domain.Code) (*domain.PriceEntry, error)
	ListPriceEntries(ctx context.Context) ([]domain.PriceEntry, error)

	// Inspections
	CreateInspection(ctx context.Context, in *domain.Inspection) error
	GetInspection(ctx context.Context, id string) (*domain.Inspection, error)
	ListInspections(ctx context.Context, q *InspectionQuery) ([]domain.Inspection, int, error)
	ListInspectionsCursor(
		ctx context.Context,
		afterID string,
		limit int,
		pendingOnly bool,
	) ([]domain.Inspection, error)
	UpdateInspectionCost(ctx context.Context, id string, cost domain.Cost) error
	RecordInspectionFailure(ctx context.Context, id string, errText string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
