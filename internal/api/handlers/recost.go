package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/repair-cost/internal/engine"
)

// Recoster runs batch recosts over stored inspections.
type Recoster interface {
	RecostAll(ctx context.Context) (*engine.RecostSummary, error)
	RecostPending(ctx context.Context) (*engine.RecostSummary, error)
}

// RecostHandler handles manual recost triggers.
type RecostHandler struct {
	recoster Recoster
}

// NewRecostHandler creates a new RecostHandler.
func NewRecostHandler(r Recoster) *RecostHandler {
	return &RecostHandler{recoster: r}
}

// RecostInput selects which inspections to recost.
type RecostInput struct {
	All bool `query:"all" doc:"Recost every inspection instead of only uncosted ones"`
}

// RecostOutput is the response body for a recost.
type RecostOutput struct {
	Body engine.RecostSummary
}

// Recost runs a batch recost and returns its summary.
func (h *RecostHandler) Recost(ctx context.Context, input *RecostInput) (*RecostOutput, error) {
	run := h.recoster.RecostPending
	if input.All {
		run = h.recoster.RecostAll
	}

	summary, err := run(ctx)
	if err != nil {
		if errors.Is(err, engine.ErrRecostRunning) {
			return nil, huma.Error409Conflict(err.Error())
		}
		return nil, huma.Error500InternalServerError("recost failed: " + err.Error())
	}
	return &RecostOutput{Body: *summary}, nil
}

// RegisterRecostRoutes registers the recost trigger with the Huma API.
func RegisterRecostRoutes(api huma.API, h *RecostHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "recost",
		Method:      http.MethodPost,
		Path:        "/api/v1/recost",
		Summary:     "Recost inspections",
		Description: "Recomputes stored inspection totals. Rows that fail are reported and skipped.",
		Tags:        []string{"inspections"},
		Errors:      []int{http.StatusConflict, http.StatusInternalServerError},
	}, h.Recost)
}
