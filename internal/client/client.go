// Package client is the typed access layer for the Odelu catalog REST API.
// It issues paginated list queries and CRUD mutations per entity type,
// attaches the admin credential where required, and keeps a small query
// cache that is invalidated on every successful write.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// apiKeyHeader carries the admin credential on every admin request.
const apiKeyHeader = "x-api-key"

// Client wraps HTTP calls to the catalog backend.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *Cache
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the admin credential attached to admin requests.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new catalog API client. baseURL is the server root,
// without the /api suffix.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: NewCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetAPIKey replaces the credential used for admin requests. The session
// manager calls this after login and logout.
func (c *Client) SetAPIKey(key string) {
	c.apiKey = key
}

// Cache exposes the query cache so a presentation layer can render stale
// results while a refetch is in flight.
func (c *Client) Cache() *Cache {
	return c.cache
}

// ListOptions are the query parameters common to all list operations.
// Page and Limit default to 1 and 20 when unset. ParentID filters seasons
// by show and episodes by season; it is ignored elsewhere.
type ListOptions struct {
	Page     int
	Limit    int
	Search   string
	ParentID int64
}

func (o ListOptions) normalize() ListOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = 20
	}
	return o
}

func (o ListOptions) query(parentParam string) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(o.Page))
	params.Set("limit", strconv.Itoa(o.Limit))
	if o.Search != "" {
		params.Set("search", o.Search)
	}
	if o.ParentID > 0 && parentParam != "" {
		params.Set(parentParam, strconv.FormatInt(o.ParentID, 10))
	}
	return params
}

// Page is one page of a list response along with the server's total count.
// The client performs no slicing of its own; Total is authoritative for
// page-count display.
type Page[T any] struct {
	Items []T
	Total int
}

// Wire envelopes.

type pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type listEnvelope[T any] struct {
	Data       []T        `json:"data"`
	Pagination pagination `json:"pagination"`
}

type itemEnvelope[T any] struct {
	Data T `json:"data"`
}

type errorBody struct {
	Message string `json:"message"`
}

// do executes a request. Admin requests carry the API key header. GETs are
// retried once on transport failure or 5xx, since reads are idempotent.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, result any, admin bool) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	attempts := 1
	if method == http.MethodGet {
		attempts = 2
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, u, reader)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if admin && c.apiKey != "" {
			req.Header.Set(apiKeyHeader, c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			continue
		}

		err = decodeResponse(resp, result)
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status >= 500 && i < attempts-1 {
			lastErr = err
			continue
		}
		return err
	}
	return lastErr
}

func decodeResponse(resp *http.Response, result any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		msg := resp.Status
		var body errorBody
		if json.Unmarshal(raw, &body) == nil && body.Message != "" {
			msg = body.Message
		} else if len(raw) > 0 {
			msg = string(raw)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// list fetches a page for an entity, consulting the query cache first.
// A fresh cache hit (no write since it was stored) is returned without a
// network call; anything else refetches and replaces the entry.
func list[T any](ctx context.Context, c *Client, ent Entity, path, parentParam string, opts ListOptions) (*Page[T], error) {
	opts = opts.normalize()
	key := listKey(ent, opts)
	if v, stale, ok := c.cache.Lookup(key); ok && !stale {
		if page, ok := v.(*Page[T]); ok {
			return page, nil
		}
	}

	var env listEnvelope[T]
	if err := c.do(ctx, http.MethodGet, path, opts.query(parentParam), nil, &env, ent.adminRead()); err != nil {
		return nil, err
	}
	page := &Page[T]{Items: env.Data, Total: env.Pagination.Total}
	c.cache.Store(key, page)
	return page, nil
}

// get fetches a single entity by id, consulting the detail cache first.
func get[T any](ctx context.Context, c *Client, ent Entity, path string, id int64) (*T, error) {
	key := itemKey(ent, id)
	if v, stale, ok := c.cache.Lookup(key); ok && !stale {
		if item, ok := v.(*T); ok {
			return item, nil
		}
	}

	var env itemEnvelope[*T]
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &env, ent.adminRead()); err != nil {
		return nil, err
	}
	c.cache.Store(key, env.Data)
	return env.Data, nil
}

// create posts a draft and invalidates the entity's cached lists once the
// server confirms, so any later list render reflects the new entity.
func create[T any](ctx context.Context, c *Client, ent Entity, path string, draft any) (*T, error) {
	var env itemEnvelope[*T]
	if err := c.do(ctx, http.MethodPost, path, nil, draft, &env, true); err != nil {
		return nil, err
	}
	c.cache.Invalidate(ent)
	return env.Data, nil
}

// update puts the full editable field set and invalidates both the
// entity's cached lists and the cached detail for this id.
func update[T any](ctx context.Context, c *Client, ent Entity, path string, id int64, draft any) (*T, error) {
	var env itemEnvelope[*T]
	if err := c.do(ctx, http.MethodPut, path, nil, draft, &env, true); err != nil {
		return nil, err
	}
	c.cache.Invalidate(ent)
	c.cache.Drop(itemKey(ent, id))
	return env.Data, nil
}

// del issues a delete and invalidates the entity's cache. Cascades are
// the server's responsibility; the client issues exactly one call.
func (c *Client) del(ctx context.Context, ent Entity, path string, id int64) error {
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil, true); err != nil {
		return err
	}
	c.cache.Invalidate(ent)
	c.cache.Drop(itemKey(ent, id))
	return nil
}
