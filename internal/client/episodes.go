package client

import (
	"context"
	"fmt"

	"github.com/odelu/catalog/internal/catalog"
)

// ListEpisodes returns one page of episodes, optionally filtered to a
// season via opts.ParentID. Requires the credential.
func (c *Client) ListEpisodes(ctx context.Context, opts ListOptions) (*Page[catalog.Episode], error) {
	return list[catalog.Episode](ctx, c, EntityEpisodes, "/api/admin/episodes", "seasonId", opts)
}

// GetEpisode returns an episode by id. Requires the credential.
func (c *Client) GetEpisode(ctx context.Context, id int64) (*catalog.Episode, error) {
	return get[catalog.Episode](ctx, c, EntityEpisodes, fmt.Sprintf("/api/admin/episodes/%d", id), id)
}

// CreateEpisode validates the draft and posts it under its season. The
// draft's SeasonID must already be set; it becomes immutable on the server.
func (c *Client) CreateEpisode(ctx context.Context, draft *catalog.Episode) (*catalog.Episode, error) {
	if err := catalog.ValidateEpisode(draft).OrNil(); err != nil {
		return nil, err
	}
	return create[catalog.Episode](ctx, c, EntityEpisodes, fmt.Sprintf("/api/admin/seasons/%d/episodes", draft.SeasonID), draft)
}

// UpdateEpisode validates and puts the editable field set. A SeasonID in
// the payload is ignored by the server.
func (c *Client) UpdateEpisode(ctx context.Context, id int64, draft *catalog.Episode) (*catalog.Episode, error) {
	errs := catalog.ValidateEpisode(draft)
	delete(errs, "seasonId") // parent is immutable and not editable here
	if err := errs.OrNil(); err != nil {
		return nil, err
	}
	return update[catalog.Episode](ctx, c, EntityEpisodes, fmt.Sprintf("/api/admin/episodes/%d", id), id, draft)
}

// DeleteEpisode deletes an episode by id.
func (c *Client) DeleteEpisode(ctx context.Context, id int64) error {
	return c.del(ctx, EntityEpisodes, fmt.Sprintf("/api/admin/episodes/%d", id), id)
}
