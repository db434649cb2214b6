package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/repair-cost/pkg/costing"
)

// FamiliesHandler lists the part family catalog.
type FamiliesHandler struct {
	catalog *costing.Catalog
}

// NewFamiliesHandler creates a new FamiliesHandler.
func NewFamiliesHandler(c *costing.Catalog) *FamiliesHandler {
	return &FamiliesHandler{catalog: c}
}

// ListFamiliesOutput is the response body for the family listing.
type ListFamiliesOutput struct {
	Body []costing.FamilyDef
}

// ListFamilies returns the families in declaration order.
func (h *FamiliesHandler) ListFamilies(_ context.Context, _ *struct{}) (*ListFamiliesOutput, error) {
	return &ListFamiliesOutput{Body: h.catalog.Families()}, nil
}

// RegisterFamilyRoutes registers the catalog endpoint with the Huma API.
func RegisterFamilyRoutes(api huma.API, h *FamiliesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-families",
		Method:      http.MethodGet,
		Path:        "/api/v1/families",
		Summary:     "List part families",
		Description: "Returns every part family and the codes that belong to it.",
		Tags:        []string{"catalog"},
	}, h.ListFamilies)
}
