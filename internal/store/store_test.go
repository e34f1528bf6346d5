package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odelu/catalog/internal/catalog"
)

func TestStore_AddMovie(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	m := testMovie("Fight Club")
	require.NoError(t, store.AddMovie(m))
	assert.NotZero(t, m.ID)

	retrieved, err := store.GetMovie(m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", retrieved.Title)
	assert.Equal(t, ptr(2020), retrieved.ReleaseYear)
	assert.Equal(t, []string{"drama"}, retrieved.Tags)
	assert.Equal(t, []catalog.Link{{Name: "Watch", URL: "https://example.com/watch"}}, retrieved.Links)
	assert.Nil(t, retrieved.HoverImage)
	assert.Nil(t, retrieved.Rating)
}

func TestStore_GetMovie_NotFound(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	_, err := store.GetMovie(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_UpdateMovie(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	m := testMovie("Original Title")
	require.NoError(t, store.AddMovie(m))

	m.Title = "Updated Title"
	m.Rating = ptr(8.4)
	m.Featured = true
	require.NoError(t, store.UpdateMovie(m))

	retrieved, err := store.GetMovie(m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated Title", retrieved.Title)
	assert.Equal(t, ptr(8.4), retrieved.Rating)
	assert.True(t, retrieved.Featured)
}

func TestStore_UpdateMovie_NotFound(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	m := testMovie("Ghost")
	m.ID = 9999
	assert.ErrorIs(t, store.UpdateMovie(m), ErrNotFound)
}

func TestStore_DeleteMovie(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	m := testMovie("Doomed")
	require.NoError(t, store.AddMovie(m))
	require.NoError(t, store.DeleteMovie(m.ID))

	_, err := store.GetMovie(m.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.DeleteMovie(m.ID), ErrNotFound)
}

func TestStore_ListMovies_Pagination(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	for _, title := range []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon"} {
		require.NoError(t, store.AddMovie(testMovie(title)))
	}

	movies, total, err := store.ListMovies(ListFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, movies, 2)
	assert.Equal(t, "Gamma", movies[0].Title)
	assert.Equal(t, "Delta", movies[1].Title)
}

func TestStore_ListMovies_Search(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	require.NoError(t, store.AddMovie(testMovie("Léon: The Professional")))
	require.NoError(t, store.AddMovie(testMovie("The Matrix")))

	// Accent-insensitive substring match.
	movies, total, err := store.ListMovies(ListFilter{Search: "leon", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, movies, 1)
	assert.Equal(t, "Léon: The Professional", movies[0].Title)

	// LIKE wildcards in the search term are literal, not wildcards.
	_, total, err = store.ListMovies(ListFilter{Search: "%", Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestStore_AddShow_StatusConstraint(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	sh := testShow("Bad Status")
	sh.Status = "Airing"
	assert.ErrorIs(t, store.AddShow(sh), ErrConstraint)
}

func TestStore_AddShow_YearOrderConstraint(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	sh := testShow("Backwards")
	sh.StartYear = ptr(2020)
	sh.EndYear = ptr(2015)
	assert.ErrorIs(t, store.AddShow(sh), ErrConstraint)
}

func TestStore_Shows_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	sh := testShow("The Expanse")
	sh.EndYear = ptr(2022)
	sh.Status = catalog.StatusEnded
	require.NoError(t, store.AddShow(sh))

	retrieved, err := store.GetShow(sh.ID)
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusEnded, retrieved.Status)
	assert.Equal(t, ptr(2018), retrieved.StartYear)
	assert.Equal(t, ptr(2022), retrieved.EndYear)
	assert.Equal(t, []string{"sci-fi"}, retrieved.Tags)
}

func TestStore_RatingRangeConstraint(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	m := testMovie("Overrated")
	m.Rating = ptr(10.5)
	assert.ErrorIs(t, store.AddMovie(m), ErrConstraint)
}
