package client

import (
	"context"
	"fmt"

	"github.com/odelu/catalog/internal/catalog"
)

// ListSeasons returns one page of seasons, optionally filtered to a show
// via opts.ParentID. Requires the credential.
func (c *Client) ListSeasons(ctx context.Context, opts ListOptions) (*Page[catalog.Season], error) {
	return list[catalog.Season](ctx, c, EntitySeasons, "/api/admin/seasons", "showId", opts)
}

// GetSeason returns a season by id. Requires the credential.
func (c *Client) GetSeason(ctx context.Context, id int64) (*catalog.Season, error) {
	return get[catalog.Season](ctx, c, EntitySeasons, fmt.Sprintf("/api/admin/seasons/%d", id), id)
}

// CreateSeason validates the draft and posts it under its show. The
// draft's ShowID must already be set; it becomes immutable on the server.
func (c *Client) CreateSeason(ctx context.Context, draft *catalog.Season) (*catalog.Season, error) {
	if err := catalog.ValidateSeason(draft).OrNil(); err != nil {
		return nil, err
	}
	return create[catalog.Season](ctx, c, EntitySeasons, fmt.Sprintf("/api/admin/shows/%d/seasons", draft.ShowID), draft)
}

// UpdateSeason validates and puts the editable field set. A ShowID in the
// payload is ignored by the server.
func (c *Client) UpdateSeason(ctx context.Context, id int64, draft *catalog.Season) (*catalog.Season, error) {
	errs := catalog.ValidateSeason(draft)
	delete(errs, "showId") // parent is immutable and not editable here
	if err := errs.OrNil(); err != nil {
		return nil, err
	}
	return update[catalog.Season](ctx, c, EntitySeasons, fmt.Sprintf("/api/admin/seasons/%d", id), id, draft)
}

// DeleteSeason deletes a season by id. The server cascades the delete to
// the season's episodes.
func (c *Client) DeleteSeason(ctx context.Context, id int64) error {
	return c.del(ctx, EntitySeasons, fmt.Sprintf("/api/admin/seasons/%d", id), id)
}
