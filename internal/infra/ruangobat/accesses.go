package ruangobat

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"ruangobat-admin/internal/domain/access"
)

// ListQuery identifies one page of the access table; it is also the read-model cache key.
type ListQuery struct {
	Q      string
	Filter string
	Sort   string
	Page   int
}

func (q ListQuery) Values() url.Values {
	v := url.Values{}
	if q.Q != "" {
		v.Set("q", q.Q)
	}
	if q.Filter != "" {
		v.Set("filter", q.Filter)
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	v.Set("page", strconv.Itoa(page))
	return v
}

type AccessPage struct {
	Accesses      []access.Access `json:"accesses"`
	Page          int             `json:"page"`
	TotalAccesses int             `json:"total_accesses"`
	TotalPages    int             `json:"total_pages"`
}

type GrantRequest struct {
	UserID         string `json:"user_id"`
	ProductID      string `json:"product_id"`
	IdempotencyKey string `json:"idempotency_key"`
	TypeAccess     string `json:"type_access"`
	ProductType    string `json:"product_type"`
	DiscountAmount int64  `json:"discount_amount"`
	UserTimezone   string `json:"user_timezone"`
}

type GrantResult struct {
	AccessID string `json:"access_id"`
}

type RevokeRequest struct {
	AccessID string `json:"access_id"`
	Reason   string `json:"reason"`
}

type ChangePlanRequest struct {
	ProductID    string `json:"product_id"`
	UserTimezone string `json:"user_timezone"`
}

func (c *Client) ListVideocourseAccesses(ctx context.Context, token string, q ListQuery) (*AccessPage, error) {
	var page AccessPage
	if err := c.do(ctx, token, http.MethodGet, "/accesses/videocourse", q.Values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetAccess(ctx context.Context, token, accessID string) (*access.Access, error) {
	var a access.Access
	if err := c.do(ctx, token, http.MethodGet, "/accesses/"+url.PathEscape(accessID), nil, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) GrantAccess(ctx context.Context, token string, req GrantRequest) (*GrantResult, error) {
	var res GrantResult
	if err := c.do(ctx, token, http.MethodPost, "/accesses", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) RevokeAccess(ctx context.Context, token string, req RevokeRequest) error {
	return c.do(ctx, token, http.MethodPost, "/accesses/revoke", nil, req, nil)
}

func (c *Client) ChangePlan(ctx context.Context, token, accessID string, req ChangePlanRequest) error {
	return c.do(ctx, token, http.MethodPatch, "/accesses/"+url.PathEscape(accessID)+"/plan", nil, req, nil)
}
