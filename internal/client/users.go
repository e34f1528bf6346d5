package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/odelu/catalog/internal/catalog"
)

// ListUsers returns one page of users. Requires the credential.
func (c *Client) ListUsers(ctx context.Context, opts ListOptions) (*Page[catalog.User], error) {
	return list[catalog.User](ctx, c, EntityUsers, "/api/admin/users", "", opts)
}

// GetUser returns a user by id. Requires the credential.
func (c *Client) GetUser(ctx context.Context, id int64) (*catalog.User, error) {
	return get[catalog.User](ctx, c, EntityUsers, fmt.Sprintf("/api/admin/users/%d", id), id)
}

// CreateUser validates the draft and posts it. The password travels in the
// create payload only; the server never returns it.
func (c *Client) CreateUser(ctx context.Context, draft *catalog.User) (*catalog.User, error) {
	errs := catalog.ValidateUser(draft)
	if draft.Password == "" {
		errs["password"] = "password is required"
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}
	return create[catalog.User](ctx, c, EntityUsers, "/api/admin/users", draft)
}

// UpdateUser validates and puts the editable field set. A blank password
// is omitted from the payload and leaves the stored one untouched.
func (c *Client) UpdateUser(ctx context.Context, id int64, draft *catalog.User) (*catalog.User, error) {
	if err := catalog.ValidateUser(draft).OrNil(); err != nil {
		return nil, err
	}
	return update[catalog.User](ctx, c, EntityUsers, fmt.Sprintf("/api/admin/users/%d", id), id, draft)
}

// DeleteUser deletes a user by id. The server cascades the delete to the
// user's watch history and watchlist.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.del(ctx, EntityUsers, fmt.Sprintf("/api/admin/users/%d", id), id)
}

// VerifyKey checks a candidate credential by listing at most one user
// under it. Any failure, whatever the cause, means the key is not usable.
func (c *Client) VerifyKey(ctx context.Context, key string) error {
	params := url.Values{}
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/admin/users?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(apiKeyHeader, key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	return decodeResponse(resp, nil)
}
