package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odelu/catalog/internal/catalog"
)

func movieCreateCmd(t *testing.T, flags map[string]string) *cobra.Command {
	return testCmd(t, addMovieFlags, flags)
}

func TestMovieCreate_SendsDraft(t *testing.T) {
	isolateConfigDir(t)

	var received catalog.Movie
	srv := newMockServer(t).
		ExpectPath("/api/admin/movies").
		ExpectPOST().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			received.ID = 7
			w.WriteHeader(http.StatusCreated)
			respondJSON(t, w, itemBody(received))
		}).
		Build()
	defer srv.Close()
	defer withServerURL(srv.URL)()

	cmd := movieCreateCmd(t, map[string]string{
		"title":       "The Matrix",
		"description": "A hacker learns the truth.",
		"image":       "https://img.example/matrix.jpg",
		"cover-image": "https://img.example/matrix-cover.jpg",
		"year":        "1999",
		"rating":      "8.7",
		"tag":         "Sci-Fi",
		"link":        "Trailer=https://example.com/trailer",
	})

	require.NoError(t, runMovieCreate(cmd, nil))

	assert.Equal(t, "The Matrix", received.Title)
	require.NotNil(t, received.ReleaseYear)
	assert.Equal(t, 1999, *received.ReleaseYear)
	require.NotNil(t, received.Rating)
	assert.Equal(t, 8.7, *received.Rating)
	assert.Equal(t, []string{"Sci-Fi"}, received.Tags)
	require.Len(t, received.Links, 1)
	assert.Equal(t, "Trailer", received.Links[0].Name)
}

func TestMovieCreate_InvalidDraft(t *testing.T) {
	isolateConfigDir(t)
	defer withServerURL("http://localhost:1")()

	// Missing image URLs: validation fails before any request is made.
	cmd := movieCreateCmd(t, map[string]string{
		"title":       "The Matrix",
		"description": "A hacker learns the truth.",
	})
	err := runMovieCreate(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image")
}

func TestMovieUpdate_OnlyChangedFlags(t *testing.T) {
	isolateConfigDir(t)

	existing := catalog.Movie{
		ID:          3,
		Title:       "Old Title",
		Description: "Original synopsis.",
		Image:       "https://img.example/old.jpg",
		CoverImage:  "https://img.example/old-cover.jpg",
		Duration:    "2h 16min",
	}

	var received catalog.Movie
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				assert.Equal(t, "/api/movies/3", r.URL.Path)
				respondJSON(t, w, itemBody(existing))
			case http.MethodPut:
				assert.Equal(t, "/api/admin/movies/3", r.URL.Path)
				require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
				respondJSON(t, w, itemBody(received))
			default:
				t.Errorf("unexpected method %s", r.Method)
			}
		}).
		Build()
	defer srv.Close()
	defer withServerURL(srv.URL)()

	cmd := testCmd(t, addMovieFlags, map[string]string{"title": "New Title"})
	require.NoError(t, runMovieUpdate(cmd, []string{"3"}))

	assert.Equal(t, "New Title", received.Title)
	// Untouched fields keep their fetched values.
	assert.Equal(t, "Original synopsis.", received.Description)
	assert.Equal(t, "2h 16min", received.Duration)
}

func TestMovieList_QueryParams(t *testing.T) {
	isolateConfigDir(t)

	var query string
	srv := newMockServer(t).
		ExpectPath("/api/movies").
		ExpectGET().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.RawQuery
			respondJSON(t, w, listBody([]catalog.Movie{}, 0))
		}).
		Build()
	defer srv.Close()
	defer withServerURL(srv.URL)()

	cmd := testCmd(t, addListFlags, map[string]string{"page": "2", "limit": "5", "search": "matrix"})
	require.NoError(t, runMovieList(cmd, nil))

	assert.Contains(t, query, "page=2")
	assert.Contains(t, query, "limit=5")
	assert.Contains(t, query, "search=matrix")
}

func TestMovieDelete(t *testing.T) {
	isolateConfigDir(t)

	srv := newMockServer(t).
		ExpectPath("/api/admin/movies/9").
		ExpectDELETE().
		RespondJSON(map[string]string{"message": "movie deleted"}).
		Build()
	defer srv.Close()
	defer withServerURL(srv.URL)()

	cmd := testCmd(t, nil, nil)
	require.NoError(t, runMovieDelete(cmd, []string{"9"}))
}

func TestMovieDelete_NotFound(t *testing.T) {
	isolateConfigDir(t)

	srv := newMockServer(t).
		RespondError(http.StatusNotFound, "movie not found").
		Build()
	defer srv.Close()
	defer withServerURL(srv.URL)()

	cmd := testCmd(t, nil, nil)
	err := runMovieDelete(cmd, []string{"9"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "movie not found")
}
