package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/repair-cost/internal/api/handlers"
	"github.com/donaldgifford/repair-cost/internal/pricing"
	"github.com/donaldgifford/repair-cost/pkg/costing"
)

// mockReloader is a test double for PriceReloader.
type mockReloader struct {
	entries int
	err     error
	calls   int
}

func (m *mockReloader) ReloadPrices(_ context.Context, _ pricing.Source) (int, error) {
	m.calls++
	return m.entries, m.err
}

type nopSource struct{}

func (nopSource) Load(context.Context) (*costing.PriceTable, error) { return nil, nil }

func TestListPrices(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterPriceRoutes(api,
		handlers.NewPricesHandler(&estimatorProvider{est: testEstimator(t)}, nil, nil))

	resp := api.Get("/api/v1/prices")
	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, `"code":"L1"`)
	assert.Contains(t, body, `"code":"L43"`)
	assert.Contains(t, body, `"max_cost":60`)
}

func TestGetPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "exact code",
			path:       "/api/v1/prices/L21",
			wantStatus: http.StatusOK,
			wantBody:   `"Screen scratch"`,
		},
		{
			name:       "lowercase code",
			path:       "/api/v1/prices/l22",
			wantStatus: http.StatusOK,
			wantBody:   `"Screen crack"`,
		},
		{
			name:       "unknown code",
			path:       "/api/v1/prices/L99",
			wantStatus: http.StatusNotFound,
			wantBody:   "no price for code L99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			handlers.RegisterPriceRoutes(api,
				handlers.NewPricesHandler(&estimatorProvider{est: testEstimator(t)}, nil, nil))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestReloadPrices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		reloader   *mockReloader
		wantStatus int
		wantBody   string
	}{
		{
			name:       "reports new size",
			reloader:   &mockReloader{entries: 58},
			wantStatus: http.StatusOK,
			wantBody:   `"entries":58`,
		},
		{
			name:       "load failure",
			reloader:   &mockReloader{err: errors.New("bad price file")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "reloading prices failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			handlers.RegisterPriceRoutes(api, handlers.NewPricesHandler(
				&estimatorProvider{est: testEstimator(t)}, tt.reloader, nopSource{},
			))

			resp := api.Post("/api/v1/prices/reload")
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
			assert.Equal(t, 1, tt.reloader.calls)
		})
	}
}

func TestReloadPrices_NotRegisteredWithoutSource(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterPriceRoutes(api,
		handlers.NewPricesHandler(&estimatorProvider{est: testEstimator(t)}, &mockReloader{}, nil))

	resp := api.Post("/api/v1/prices/reload")
	assert.NotEqual(t, http.StatusOK, resp.Code)
}
