package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/repair-cost/internal/api/handlers"
	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

func TestEstimate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		codes      []string
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "family capped",
			codes:      []string{"L21", "L22", "", ""},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"display":"60"`, `"capped":true`, `"family":"Screen"`},
		},
		{
			name:       "replacement dominates",
			codes:      []string{"L9", "L1"},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"display":"NEED TO BE REPLACED"`},
		},
		{
			name:       "unknown codes reported",
			codes:      []string{"L9", "Z1"},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"display":"20"`, `"dropped":["Z1"]`},
		},
		{
			name:       "empty row costs zero",
			codes:      []string{},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"display":"0"`},
		},
		{
			name:       "missing price is unprocessable",
			codes:      []string{"L35"},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{"no price for code L35"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			handlers.RegisterEstimateRoutes(api, handlers.NewEstimateHandler(testEstimator(t)))

			resp := api.Post("/api/v1/estimate", map[string]any{"codes": tt.codes})
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}

type failingEstimator struct{}

func (failingEstimator) Estimate([]domain.Code) (*domain.Estimate, error) {
	return nil, errors.New("table unavailable")
}

func TestEstimate_InternalError(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterEstimateRoutes(api, handlers.NewEstimateHandler(failingEstimator{}))

	resp := api.Post("/api/v1/estimate", map[string]any{"codes": []string{"L1"}})
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "estimate failed")
}

func TestListFamilies(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterFamilyRoutes(api, handlers.NewFamiliesHandler(testEstimator(t).Catalog()))

	resp := api.Get("/api/v1/families")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"name":"No Power"`)
	assert.Contains(t, resp.Body.String(), `"name":"Carry Bag Damaged"`)
}
