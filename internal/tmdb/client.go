package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org/3"
const defaultImageBaseURL = "https://image.tmdb.org/t/p"
const defaultCacheTTL = 24 * time.Hour

// ErrNotFound is returned when a record doesn't exist in TMDB.
var ErrNotFound = errors.New("not found in TMDB")

// Client is a TMDB API client.
type Client struct {
	apiKey       string
	baseURL      string
	imageBaseURL string
	httpClient   *http.Client
	cache        *cache
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithImageBaseURL sets a custom image CDN base URL.
func WithImageBaseURL(url string) Option {
	return func(c *Client) {
		c.imageBaseURL = url
	}
}

// WithCacheTTL sets the detail cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = newCache(ttl)
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:       apiKey,
		baseURL:      defaultBaseURL,
		imageBaseURL: defaultImageBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: newCache(defaultCacheTTL),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TMDB API error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// SearchMovies searches TMDB for movies matching query.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*SearchPage[Movie], error) {
	params := url.Values{}
	params.Set("query", query)
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	var result SearchPage[Movie]
	if err := c.get(ctx, "/search/movie", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchShows searches TMDB for TV shows matching query.
func (c *Client) SearchShows(ctx context.Context, query string, page int) (*SearchPage[TV], error) {
	params := url.Values{}
	params.Set("query", query)
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	var result SearchPage[TV]
	if err := c.get(ctx, "/search/tv", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMovie fetches full movie metadata by TMDB ID. Search results omit
// runtime and genres, so import flows fetch the detail record.
func (c *Client) GetMovie(ctx context.Context, id int64) (*Movie, error) {
	key := fmt.Sprintf("movie/%d", id)
	if m, ok := cacheGet[Movie](c.cache, key); ok {
		return m, nil
	}

	var movie Movie
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), nil, &movie); err != nil {
		return nil, err
	}
	c.cache.set(key, &movie)
	return &movie, nil
}

// GetShow fetches full TV show metadata by TMDB ID.
func (c *Client) GetShow(ctx context.Context, id int64) (*TV, error) {
	key := fmt.Sprintf("tv/%d", id)
	if tv, ok := cacheGet[TV](c.cache, key); ok {
		return tv, nil
	}

	var show TV
	if err := c.get(ctx, fmt.Sprintf("/tv/%d", id), nil, &show); err != nil {
		return nil, err
	}
	c.cache.set(key, &show)
	return &show, nil
}

// GetSeason fetches season metadata, including its episode list.
func (c *Client) GetSeason(ctx context.Context, showID int64, seasonNumber int) (*Season, error) {
	key := fmt.Sprintf("tv/%d/season/%d", showID, seasonNumber)
	if s, ok := cacheGet[Season](c.cache, key); ok {
		return s, nil
	}

	var season Season
	if err := c.get(ctx, fmt.Sprintf("/tv/%d/season/%d", showID, seasonNumber), nil, &season); err != nil {
		return nil, err
	}
	c.cache.set(key, &season)
	return &season, nil
}
