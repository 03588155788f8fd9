package ruangobat

import (
	"context"
	"net/http"
	"net/url"

	"ruangobat-admin/internal/domain/plans"
	"ruangobat-admin/internal/domain/users"
)

func (c *Client) ListProducts(ctx context.Context, token, productType string) ([]plans.Product, error) {
	q := url.Values{}
	if productType != "" {
		q.Set("type", productType)
	}
	var products []plans.Product
	if err := c.do(ctx, token, http.MethodGet, "/products", q, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) SearchUsers(ctx context.Context, token, query string) ([]users.User, error) {
	q := url.Values{}
	q.Set("q", query)
	var result []users.User
	if err := c.do(ctx, token, http.MethodGet, "/admin/users", q, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
