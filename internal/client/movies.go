package client

import (
	"context"
	"fmt"

	"github.com/odelu/catalog/internal/catalog"
)

// ListMovies returns one page of movies. Public: no credential required.
func (c *Client) ListMovies(ctx context.Context, opts ListOptions) (*Page[catalog.Movie], error) {
	return list[catalog.Movie](ctx, c, EntityMovies, "/api/movies", "", opts)
}

// GetMovie returns a movie by id. Public: no credential required.
func (c *Client) GetMovie(ctx context.Context, id int64) (*catalog.Movie, error) {
	return get[catalog.Movie](ctx, c, EntityMovies, fmt.Sprintf("/api/movies/%d", id), id)
}

// CreateMovie validates the draft and posts it. The returned movie carries
// the server-assigned id.
func (c *Client) CreateMovie(ctx context.Context, draft *catalog.Movie) (*catalog.Movie, error) {
	if err := catalog.ValidateMovie(draft).OrNil(); err != nil {
		return nil, err
	}
	return create[catalog.Movie](ctx, c, EntityMovies, "/api/admin/movies", draft)
}

// UpdateMovie validates and puts the full editable field set.
func (c *Client) UpdateMovie(ctx context.Context, id int64, draft *catalog.Movie) (*catalog.Movie, error) {
	if err := catalog.ValidateMovie(draft).OrNil(); err != nil {
		return nil, err
	}
	return update[catalog.Movie](ctx, c, EntityMovies, fmt.Sprintf("/api/admin/movies/%d", id), id, draft)
}

// DeleteMovie deletes a movie by id.
func (c *Client) DeleteMovie(ctx context.Context, id int64) error {
	return c.del(ctx, EntityMovies, fmt.Sprintf("/api/admin/movies/%d", id), id)
}
