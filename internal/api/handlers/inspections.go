package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/donaldgifford/repair-cost/internal/store"
	"github.com/donaldgifford/repair-cost/pkg/costing"
	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

// InspectionCoster costs a stored inspection and persists the result.
type InspectionCoster interface {
	CostInspection(ctx context.Context, in *domain.Inspection) (*domain.Estimate, error)
}

// InspectionsHandler handles inspection records.
type InspectionsHandler struct {
	store  store.Store
	coster InspectionCoster
}

// NewInspectionsHandler creates a new InspectionsHandler.
func NewInspectionsHandler(s store.Store, c InspectionCoster) *InspectionsHandler {
	return &InspectionsHandler{store: s, coster: c}
}

// --- Input/Output types ---

// CreateInspectionInput is the request body for a new inspection.
type CreateInspectionInput struct {
	Body struct {
		Reference string        `json:"reference,omitempty" doc:"Caller reference such as a lot or asset tag" example:"LOT-42"`
		Codes     []domain.Code `json:"codes"               doc:"Up to four defect codes; empty entries mark empty slots"    maxItems:"4"`
	}
}

// InspectionResponse is an inspection with the estimate computed for it,
// when one could be made.
type InspectionResponse struct {
	Inspection domain.Inspection `json:"inspection"`
	Estimate   *domain.Estimate  `json:"estimate,omitempty"`
}

// CreateInspectionOutput is the response for a new inspection.
type CreateInspectionOutput struct {
	Body InspectionResponse
}

// GetInspectionInput is the request path for a single inspection.
type GetInspectionInput struct {
	ID string `path:"id" doc:"Inspection UUID"`
}

// GetInspectionOutput is the response for a single inspection.
type GetInspectionOutput struct {
	Body domain.Inspection
}

// ListInspectionsInput is the input for listing inspections with filters.
type ListInspectionsInput struct {
	CostKind  string `query:"cost_kind" doc:"Filter by result kind"            enum:"numeric,needs_replacement,not_available,"`
	Costed    string `query:"costed"    doc:"Filter by whether a total is stored" enum:"true,false,"`
	Failed    string `query:"failed"    doc:"Filter by whether costing failed"  enum:"true,false,"`
	Reference string `query:"reference" doc:"Reference prefix"`
	Limit     int    `query:"limit"     doc:"Number of results (default 50)"    minimum:"1" maximum:"500"`
	Offset    int    `query:"offset"    doc:"Pagination offset"                  minimum:"0"`
	OrderBy   string `query:"order_by"  doc:"Sort field"                         enum:"created_at,costed_at,reference,"`
}

// ListInspectionsOutput is the response for listing inspections.
type ListInspectionsOutput struct {
	Body struct {
		Inspections []domain.Inspection `json:"inspections"`
		Total       int                 `json:"total"`
		Limit       int                 `json:"limit"`
		Offset      int                 `json:"offset"`
	}
}

// --- Handlers ---

// CreateInspection stores a new inspection and costs it straight away. A
// row that cannot be costed is still created; the failure is recorded on it.
func (h *InspectionsHandler) CreateInspection(
	ctx context.Context,
	input *CreateInspectionInput,
) (*CreateInspectionOutput, error) {
	in := &domain.Inspection{
		Reference: input.Body.Reference,
		Codes:     input.Body.Codes,
	}
	if err := h.store.CreateInspection(ctx, in); err != nil {
		return nil, huma.Error500InternalServerError("creating inspection failed: " + err.Error())
	}

	resp := &CreateInspectionOutput{}
	if !in.Empty() {
		est, err := h.coster.CostInspection(ctx, in)
		var notFound *costing.PriceNotFoundError
		if err != nil && !errors.As(err, &notFound) {
			return nil, huma.Error500InternalServerError("costing inspection failed: " + err.Error())
		}
		resp.Body.Estimate = est
	}
	resp.Body.Inspection = *in
	return resp, nil
}

// GetInspection returns a single inspection by ID.
func (h *InspectionsHandler) GetInspection(
	ctx context.Context,
	input *GetInspectionInput,
) (*GetInspectionOutput, error) {
	if _, err := uuid.Parse(input.ID); err != nil {
		return nil, huma.Error404NotFound("inspection not found")
	}

	in, err := h.store.GetInspection(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("inspection not found")
		}
		return nil, huma.Error500InternalServerError("fetching inspection failed: " + err.Error())
	}
	return &GetInspectionOutput{Body: *in}, nil
}

// ListInspections returns inspections with optional filters and pagination.
func (h *InspectionsHandler) ListInspections(
	ctx context.Context,
	input *ListInspectionsInput,
) (*ListInspectionsOutput, error) {
	q := &store.InspectionQuery{
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}
	if input.CostKind != "" {
		kind := domain.CostKind(input.CostKind)
		q.CostKind = &kind
	}
	if input.Costed != "" {
		costed := input.Costed == "true"
		q.Costed = &costed
	}
	if input.Failed != "" {
		failed := input.Failed == "true"
		q.Failed = &failed
	}
	if input.Reference != "" {
		q.Reference = &input.Reference
	}

	inspections, total, err := h.store.ListInspections(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("inspection query failed: " + err.Error())
	}
	if inspections == nil {
		inspections = []domain.Inspection{}
	}

	resp := &ListInspectionsOutput{}
	resp.Body.Inspections = inspections
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

// RegisterInspectionRoutes registers inspection endpoints with the Huma API.
func RegisterInspectionRoutes(api huma.API, h *InspectionsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-inspection",
		Method:        http.MethodPost,
		Path:          "/api/v1/inspections",
		Summary:       "Create an inspection",
		Description:   "Stores an inspection row and costs it. Rows with unpriced codes are kept with the failure recorded.",
		Tags:          []string{"inspections"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusInternalServerError},
	}, h.CreateInspection)

	huma.Register(api, huma.Operation{
		OperationID: "list-inspections",
		Method:      http.MethodGet,
		Path:        "/api/v1/inspections",
		Summary:     "List inspections",
		Description: "Returns inspections with optional filters for result kind, costing state, and reference prefix.",
		Tags:        []string{"inspections"},
	}, h.ListInspections)

	huma.Register(api, huma.Operation{
		OperationID: "get-inspection",
		Method:      http.MethodGet,
		Path:        "/api/v1/inspections/{id}",
		Summary:     "Get an inspection by ID",
		Description: "Returns a single inspection by its UUID.",
		Tags:        []string{"inspections"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetInspection)
}
