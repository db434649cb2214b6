package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

// InspectionResponse is a stored inspection and, when costing succeeded,
// its estimate.
type InspectionResponse struct {
	Inspection domain.Inspection `json:"inspection"`
	Estimate   *domain.Estimate  `json:"estimate,omitempty"`
}

// InspectionsResponse wraps a paginated inspections response.
type InspectionsResponse struct {
	Inspections []domain.Inspection `json:"inspections"`
	Total       int                 `json:"total"`
	Limit       int                 `json:"limit"`
	Offset      int                 `json:"offset"`
}

// ListInspectionsParams defines query parameters for inspection queries.
type ListInspectionsParams struct {
	CostKind  domain.CostKind
	Costed    *bool
	Failed    *bool
	Reference string
	Limit     int
	Offset    int
	OrderBy   string
}

// RowFailure describes one inspection a recost could not price.
type RowFailure struct {
	InspectionID string      `json:"inspection_id"`
	Reference    string      `json:"reference,omitempty"`
	Code         domain.Code `json:"code,omitempty"`
	Error        string      `json:"error"`
}

// RecostSummary reports the outcome of a batch recost.
type RecostSummary struct {
	Costed       int          `json:"costed"`
	Replaced     int          `json:"replaced"`
	NotAvailable int          `json:"not_available"`
	Skipped      int          `json:"skipped"`
	Failed       int          `json:"failed"`
	Failures     []RowFailure `json:"failures,omitempty"`
}

// CreateInspection stores an inspection row and costs it.
func (c *Client) CreateInspection(
	ctx context.Context,
	reference string,
	codes []domain.Code,
) (*InspectionResponse, error) {
	body := struct {
		Reference string        `json:"reference,omitempty"`
		Codes     []domain.Code `json:"codes"`
	}{Reference: reference, Codes: codes}

	var resp InspectionResponse
	if err := c.post(ctx, "/api/v1/inspections", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetInspection returns a single inspection by ID.
func (c *Client) GetInspection(ctx context.Context, id string) (*domain.Inspection, error) {
	var in domain.Inspection
	if err := c.get(ctx, fmt.Sprintf("/api/v1/inspections/%s", url.PathEscape(id)), &in); err != nil {
		return nil, err
	}
	return &in, nil
}

// ListInspections returns inspections matching the given parameters.
func (c *Client) ListInspections(
	ctx context.Context,
	params *ListInspectionsParams,
) (*InspectionsResponse, error) {
	q := url.Values{}
	if params.CostKind != "" {
		q.Set("cost_kind", string(params.CostKind))
	}
	if params.Costed != nil {
		q.Set("costed", strconv.FormatBool(*params.Costed))
	}
	if params.Failed != nil {
		q.Set("failed", strconv.FormatBool(*params.Failed))
	}
	if params.Reference != "" {
		q.Set("reference", params.Reference)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/v1/inspections"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp InspectionsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Recost triggers a batch recost. With all set every stored inspection is
// recomputed; otherwise only rows without a stored total.
func (c *Client) Recost(ctx context.Context, all bool) (*RecostSummary, error) {
	path := "/api/v1/recost"
	if all {
		path += "?all=true"
	}

	var resp RecostSummary
	if err := c.post(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
