package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/repair-cost/internal/pricing"
	"github.com/donaldgifford/repair-cost/pkg/costing"
	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

// EstimatorProvider exposes the estimator currently serving requests.
type EstimatorProvider interface {
	Estimator() *costing.Estimator
}

// PriceReloader swaps in a freshly loaded price table.
type PriceReloader interface {
	ReloadPrices(ctx context.Context, src pricing.Source) (int, error)
}

// PricesHandler serves the price table.
type PricesHandler struct {
	provider EstimatorProvider
	reloader PriceReloader
	source   pricing.Source
}

// NewPricesHandler creates a new PricesHandler. The reload endpoint is only
// registered when both reloader and source are set.
func NewPricesHandler(p EstimatorProvider, r PriceReloader, src pricing.Source) *PricesHandler {
	return &PricesHandler{provider: p, reloader: r, source: src}
}

// ListPricesOutput is the response body for the price listing.
type ListPricesOutput struct {
	Body []domain.PriceEntry
}

// GetPriceInput is the request path for a single price.
type GetPriceInput struct {
	Code string `path:"code" doc:"Defect code, matched without regard to case" example:"L21"`
}

// GetPriceOutput is the response body for a single price.
type GetPriceOutput struct {
	Body domain.PriceEntry
}

// ReloadPricesOutput is the response body for a price reload.
type ReloadPricesOutput struct {
	Body struct {
		Entries int `json:"entries" example:"58" doc:"Number of entries in the new table"`
	}
}

// ListPrices returns every price entry in load order.
func (h *PricesHandler) ListPrices(_ context.Context, _ *struct{}) (*ListPricesOutput, error) {
	return &ListPricesOutput{Body: h.provider.Estimator().Prices().Entries()}, nil
}

// GetPrice returns the entry for one code.
func (h *PricesHandler) GetPrice(_ context.Context, input *GetPriceInput) (*GetPriceOutput, error) {
	e, ok := h.provider.Estimator().Prices().Lookup(domain.Code(input.Code))
	if !ok {
		return nil, huma.Error404NotFound("no price for code " + input.Code)
	}
	return &GetPriceOutput{Body: e}, nil
}

// ReloadPrices reloads the price table from its configured source.
func (h *PricesHandler) ReloadPrices(ctx context.Context, _ *struct{}) (*ReloadPricesOutput, error) {
	n, err := h.reloader.ReloadPrices(ctx, h.source)
	if err != nil {
		return nil, huma.Error500InternalServerError("reloading prices failed: " + err.Error())
	}
	resp := &ReloadPricesOutput{}
	resp.Body.Entries = n
	return resp, nil
}

// RegisterPriceRoutes registers price table endpoints with the Huma API.
func RegisterPriceRoutes(api huma.API, h *PricesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-prices",
		Method:      http.MethodGet,
		Path:        "/api/v1/prices",
		Summary:     "List prices",
		Description: "Returns the loaded price table in load order.",
		Tags:        []string{"prices"},
	}, h.ListPrices)

	huma.Register(api, huma.Operation{
		OperationID: "get-price",
		Method:      http.MethodGet,
		Path:        "/api/v1/prices/{code}",
		Summary:     "Get a price by code",
		Description: "Returns the single cost and max cost recorded for one code.",
		Tags:        []string{"prices"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetPrice)

	if h.reloader == nil || h.source == nil {
		return
	}

	huma.Register(api, huma.Operation{
		OperationID: "reload-prices",
		Method:      http.MethodPost,
		Path:        "/api/v1/prices/reload",
		Summary:     "Reload prices",
		Description: "Reloads the price table from its configured source. The catalog is unchanged.",
		Tags:        []string{"prices"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ReloadPrices)
}
