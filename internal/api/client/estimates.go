package client

import (
	"context"
	"fmt"
	"net/url"

	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

// EstimateResponse is an estimate plus its rendered total.
type EstimateResponse struct {
	domain.Estimate
	Display string `json:"display"`
}

// Family is a part family and the codes that belong to it.
type Family struct {
	Name  domain.Family `json:"name"`
	Codes []domain.Code `json:"codes"`
}

// Estimate costs a set of defect codes without storing anything.
func (c *Client) Estimate(ctx context.Context, codes []domain.Code) (*EstimateResponse, error) {
	body := map[string][]domain.Code{"codes": codes}

	var resp EstimateResponse
	if err := c.post(ctx, "/api/v1/estimate", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Families returns the part families known to the server.
func (c *Client) Families(ctx context.Context) ([]Family, error) {
	var families []Family
	if err := c.get(ctx, "/api/v1/families", &families); err != nil {
		return nil, err
	}
	return families, nil
}

// Prices returns the loaded price table.
func (c *Client) Prices(ctx context.Context) ([]domain.PriceEntry, error) {
	var entries []domain.PriceEntry
	if err := c.get(ctx, "/api/v1/prices", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Price returns the price entry for a single code.
func (c *Client) Price(ctx context.Context, code domain.Code) (*domain.PriceEntry, error) {
	var e domain.PriceEntry
	path := fmt.Sprintf("/api/v1/prices/%s", url.PathEscape(string(code)))
	if err := c.get(ctx, path, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// ReloadPrices asks the server to reload its price table and returns the
// new entry count.
func (c *Client) ReloadPrices(ctx context.Context) (int, error) {
	var resp struct {
		Entries int `json:"entries"`
	}
	if err := c.post(ctx, "/api/v1/prices/reload", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Entries, nil
}
