package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/repair-cost/pkg/costing"
	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

// Estimator costs one row of codes.
type Estimator interface {
	Estimate(codes []domain.Code) (*domain.Estimate, error)
}

// EstimateHandler handles ad-hoc cost estimates.
type EstimateHandler struct {
	estimator Estimator
}

// NewEstimateHandler creates a new EstimateHandler.
func NewEstimateHandler(e Estimator) *EstimateHandler {
	return &EstimateHandler{estimator: e}
}

// EstimateInput is the request body for an estimate.
type EstimateInput struct {
	Body struct {
		Codes []domain.Code `json:"codes" doc:"Defect codes observed on the device; empty entries are ignored" maxItems:"64"`
	}
}

// EstimateResponse is an estimate plus its rendered total.
type EstimateResponse struct {
	domain.Estimate
	Display string `json:"display" example:"NEED TO BE REPLACED" doc:"Total as written to result sheets"`
}

// EstimateOutput is the response for an estimate.
type EstimateOutput struct {
	Body EstimateResponse
}

// Estimate groups the codes by part family and returns the row total with a
// per-family breakdown. A code with no price yields 422.
func (h *EstimateHandler) Estimate(
	_ context.Context,
	input *EstimateInput,
) (*EstimateOutput, error) {
	est, err := h.estimator.Estimate(input.Body.Codes)
	if err != nil {
		return nil, estimateError(err)
	}

	resp := &EstimateOutput{}
	resp.Body.Estimate = *est
	resp.Body.Display = est.Total.String()
	return resp, nil
}

// estimateError maps estimation failures onto HTTP errors.
func estimateError(err error) error {
	var notFound *costing.PriceNotFoundError
	if errors.As(err, &notFound) {
		return huma.Error422UnprocessableEntity(err.Error())
	}
	return huma.Error500InternalServerError("estimate failed: " + err.Error())
}

// RegisterEstimateRoutes registers the estimate endpoint with the Huma API.
func RegisterEstimateRoutes(api huma.API, h *EstimateHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "estimate",
		Method:      http.MethodPost,
		Path:        "/api/v1/estimate",
		Summary:     "Estimate repair cost",
		Description: "Groups codes by part family, caps each family at its max cost, and aggregates the row total.",
		Tags:        []string{"estimate"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.Estimate)
}
