package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/repair-cost/internal/api/handlers"
	"github.com/donaldgifford/repair-cost/internal/store"
	storeMocks "github.com/donaldgifford/repair-cost/internal/store/mocks"
	"github.com/donaldgifford/repair-cost/pkg/costing"
	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

// stubCoster costs inspections with a real estimator but keeps results in
// memory.
type stubCoster struct {
	est   *costing.Estimator
	err   error
	calls int
}

func (s *stubCoster) CostInspection(_ context.Context, in *domain.Inspection) (*domain.Estimate, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	est, err := s.est.Estimate(in.Codes)
	if err != nil {
		in.CostError = err.Error()
		return nil, err
	}
	total := est.Total.String()
	in.TotalCost = &total
	in.CostKind = est.Total.Kind
	return est, nil
}

func expectCreate(m *storeMocks.MockStore) {
	m.EXPECT().
		CreateInspection(mock.Anything, mock.AnythingOfType("*domain.Inspection")).
		Run(func(_ context.Context, in *domain.Inspection) {
			in.ID = "11111111-2222-3333-4444-555555555555"
			in.CreatedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		}).
		Return(nil).
		Once()
}

func TestCreateInspection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		setupMock  func(*storeMocks.MockStore)
		coster     func(*testing.T) *stubCoster
		wantStatus int
		wantBody   []string
		wantCalls  int
	}{
		{
			name:       "costed on create",
			body:       map[string]any{"reference": "LOT-1", "codes": []string{"L21", "L22", "", ""}},
			setupMock:  expectCreate,
			wantStatus: http.StatusCreated,
			wantBody:   []string{`"total_cost":"60"`, `"reference":"LOT-1"`, `"estimate":`},
			wantCalls:  1,
		},
		{
			name:       "unpriced code still created",
			body:       map[string]any{"codes": []string{"L35"}},
			setupMock:  expectCreate,
			wantStatus: http.StatusCreated,
			wantBody:   []string{`"cost_error":"no price for code L35 (family HDD)"`},
			wantCalls:  1,
		},
		{
			name:       "empty row not costed",
			body:       map[string]any{"codes": []string{"", "", "", ""}},
			setupMock:  expectCreate,
			wantStatus: http.StatusCreated,
			wantBody:   []string{`"id":"11111111-2222-3333-4444-555555555555"`},
			wantCalls:  0,
		},
		{
			name:       "too many codes rejected",
			body:       map[string]any{"codes": []string{"L1", "L2", "L3", "L4", "L5"}},
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantCalls:  0,
		},
		{
			name: "store error",
			body: map[string]any{"codes": []string{"L9"}},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateInspection(mock.Anything, mock.Anything).
					Return(errors.New("insert failed")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{"creating inspection failed"},
			wantCalls:  0,
		},
		{
			name:      "costing store error",
			body:      map[string]any{"codes": []string{"L9"}},
			setupMock: expectCreate,
			coster: func(t *testing.T) *stubCoster {
				return &stubCoster{est: testEstimator(t), err: errors.New("update failed")}
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{"costing inspection failed"},
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			coster := &stubCoster{est: testEstimator(t)}
			if tt.coster != nil {
				coster = tt.coster(t)
			}

			_, api := humatest.New(t)
			handlers.RegisterInspectionRoutes(api, handlers.NewInspectionsHandler(ms, coster))

			resp := api.Post("/api/v1/inspections", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
			assert.Equal(t, tt.wantCalls, coster.calls)
		})
	}
}

func TestGetInspection(t *testing.T) {
	t.Parallel()

	const id = "11111111-2222-3333-4444-555555555555"

	tests := []struct {
		name       string
		id         string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "found",
			id:   id,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetInspection(mock.Anything, id).Return(&domain.Inspection{
					ID:        id,
					Reference: "LOT-9",
					Codes:     []domain.Code{"L9", "", "", ""},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"reference":"LOT-9"`,
		},
		{
			name: "not found",
			id:   id,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetInspection(mock.Anything, id).
					Return(nil, fmt.Errorf("inspection %s: %w", id, store.ErrNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "inspection not found",
		},
		{
			name:       "malformed id never reaches store",
			id:         "abc",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusNotFound,
			wantBody:   "inspection not found",
		},
		{
			name: "store error",
			id:   id,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetInspection(mock.Anything, id).Return(nil, errors.New("timeout")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "fetching inspection failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterInspectionRoutes(api, handlers.NewInspectionsHandler(ms, &stubCoster{}))

			resp := api.Get("/api/v1/inspections/" + tt.id)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestListInspections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		wantQuery  func(*testing.T, *store.InspectionQuery)
		wantStatus int
	}{
		{
			name: "no filters",
			path: "/api/v1/inspections",
			wantQuery: func(t *testing.T, q *store.InspectionQuery) {
				assert.Nil(t, q.CostKind)
				assert.Nil(t, q.Costed)
				assert.Nil(t, q.Failed)
				assert.Nil(t, q.Reference)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "all filters",
			path: "/api/v1/inspections?cost_kind=needs_replacement&costed=true&failed=false&reference=LOT&limit=10&offset=20&order_by=costed_at",
			wantQuery: func(t *testing.T, q *store.InspectionQuery) {
				require.NotNil(t, q.CostKind)
				assert.Equal(t, domain.KindNeedsReplacement, *q.CostKind)
				require.NotNil(t, q.Costed)
				assert.True(t, *q.Costed)
				require.NotNil(t, q.Failed)
				assert.False(t, *q.Failed)
				require.NotNil(t, q.Reference)
				assert.Equal(t, "LOT", *q.Reference)
				assert.Equal(t, 10, q.Limit)
				assert.Equal(t, 20, q.Offset)
				assert.Equal(t, "costed_at", q.OrderBy)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			ms.EXPECT().
				ListInspections(mock.Anything, mock.AnythingOfType("*store.InspectionQuery")).
				Run(func(_ context.Context, q *store.InspectionQuery) {
					tt.wantQuery(t, q)
				}).
				Return(nil, 0, nil).
				Once()

			_, api := humatest.New(t)
			handlers.RegisterInspectionRoutes(api, handlers.NewInspectionsHandler(ms, &stubCoster{}))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), `"inspections":[]`)
		})
	}
}

func TestListInspections_BadFilter(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	_, api := humatest.New(t)
	handlers.RegisterInspectionRoutes(api, handlers.NewInspectionsHandler(ms, &stubCoster{}))

	resp := api.Get("/api/v1/inspections?cost_kind=free")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestListInspections_StoreError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListInspections(mock.Anything, mock.Anything).Return(nil, 0, errors.New("db error")).Once()

	_, api := humatest.New(t)
	handlers.RegisterInspectionRoutes(api, handlers.NewInspectionsHandler(ms, &stubCoster{}))

	resp := api.Get("/api/v1/inspections")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "inspection query failed")
}
