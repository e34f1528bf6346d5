package client

import (
	"context"
	"fmt"

	"github.com/odelu/catalog/internal/catalog"
)

// ListShows returns one page of shows. Public: no credential required.
func (c *Client) ListShows(ctx context.Context, opts ListOptions) (*Page[catalog.Show], error) {
	return list[catalog.Show](ctx, c, EntityShows, "/api/shows", "", opts)
}

// GetShow returns a show by id. Public: no credential required.
func (c *Client) GetShow(ctx context.Context, id int64) (*catalog.Show, error) {
	return get[catalog.Show](ctx, c, EntityShows, fmt.Sprintf("/api/shows/%d", id), id)
}

// CreateShow validates the draft and posts it.
func (c *Client) CreateShow(ctx context.Context, draft *catalog.Show) (*catalog.Show, error) {
	if err := catalog.ValidateShow(draft).OrNil(); err != nil {
		return nil, err
	}
	return create[catalog.Show](ctx, c, EntityShows, "/api/admin/shows", draft)
}

// UpdateShow validates and puts the full editable field set.
func (c *Client) UpdateShow(ctx context.Context, id int64, draft *catalog.Show) (*catalog.Show, error) {
	if err := catalog.ValidateShow(draft).OrNil(); err != nil {
		return nil, err
	}
	return update[catalog.Show](ctx, c, EntityShows, fmt.Sprintf("/api/admin/shows/%d", id), id, draft)
}

// DeleteShow deletes a show by id. The server cascades the delete to the
// show's seasons and their episodes.
func (c *Client) DeleteShow(ctx context.Context, id int64) error {
	return c.del(ctx, EntityShows, fmt.Sprintf("/api/admin/shows/%d", id), id)
}
