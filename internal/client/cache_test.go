package client

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odelu/catalog/internal/catalog"
)

func TestCache_FreshHitSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			respondJSON(t, w, listBody([]catalog.Movie{{ID: 1, Title: "Heat"}}, 1))
		}).
		Build()
	defer srv.Close()

	c := NewClient(srv.URL)
	opts := ListOptions{Page: 1, Limit: 20}

	_, err := c.ListMovies(context.Background(), opts)
	require.NoError(t, err)
	_, err = c.ListMovies(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load(), "identical list calls with no writes hit the cache")
}

func TestCache_MutationInvalidatesLists(t *testing.T) {
	var listCalls atomic.Int32
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				listCalls.Add(1)
				respondJSON(t, w, listBody([]catalog.Movie{{ID: 1, Title: "Heat"}}, 1))
			case http.MethodPost:
				created := validMovieDraft()
				created.ID = 2
				w.WriteHeader(http.StatusCreated)
				respondJSON(t, w, itemBody(created))
			}
		}).
		Build()
	defer srv.Close()

	c := NewClient(srv.URL, WithAPIKey("secret"))
	opts := ListOptions{Page: 1, Limit: 20}

	_, err := c.ListMovies(context.Background(), opts)
	require.NoError(t, err)

	_, err = c.CreateMovie(context.Background(), validMovieDraft())
	require.NoError(t, err)

	// A list observed after a confirmed mutation must refetch.
	_, err = c.ListMovies(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, int32(2), listCalls.Load())
}

func TestCache_StaleEntryStillReadable(t *testing.T) {
	cache := NewCache()
	key := listKey(EntityShows, ListOptions{Page: 1, Limit: 20})
	page := &Page[catalog.Show]{Items: []catalog.Show{{ID: 1}}, Total: 1}

	cache.Store(key, page)
	v, stale, ok := cache.Lookup(key)
	require.True(t, ok)
	assert.False(t, stale)
	assert.Same(t, page, v)

	cache.Invalidate(EntityShows)
	v, stale, ok = cache.Lookup(key)
	require.True(t, ok, "stale entries stay readable for stale-while-revalidate display")
	assert.True(t, stale)
	assert.Same(t, page, v)
}

func TestCache_InvalidationIsPerEntity(t *testing.T) {
	cache := NewCache()
	movieKey := listKey(EntityMovies, ListOptions{Page: 1, Limit: 20})
	showKey := listKey(EntityShows, ListOptions{Page: 1, Limit: 20})
	cache.Store(movieKey, "movies")
	cache.Store(showKey, "shows")

	cache.Invalidate(EntityMovies)

	_, stale, _ := cache.Lookup(movieKey)
	assert.True(t, stale)
	_, stale, _ = cache.Lookup(showKey)
	assert.False(t, stale)
}

func TestCache_UpdateDropsDetailEntry(t *testing.T) {
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, r *http.Request) {
			respondJSON(t, w, itemBody(catalog.Movie{ID: 9, Title: "Updated"}))
		}).
		Build()
	defer srv.Close()

	c := NewClient(srv.URL, WithAPIKey("secret"))

	_, err := c.GetMovie(context.Background(), 9)
	require.NoError(t, err)
	_, _, ok := c.Cache().Lookup(itemKey(EntityMovies, 9))
	require.True(t, ok)

	_, err = c.UpdateMovie(context.Background(), 9, validMovieDraft())
	require.NoError(t, err)

	_, _, ok = c.Cache().Lookup(itemKey(EntityMovies, 9))
	assert.False(t, ok, "detail entry dropped after update")
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "movies/7", itemKey(EntityMovies, 7).String())
	assert.Equal(t,
		`seasons?page=2&limit=10&search="s"&parent=4`,
		listKey(EntitySeasons, ListOptions{Page: 2, Limit: 10, Search: "s", ParentID: 4}).String())
}
