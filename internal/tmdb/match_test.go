package tmdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestMovieMatch(t *testing.T) {
	results := []Movie{
		{ID: 1, Title: "Alien", ReleaseDate: "1979-05-25"},
		{ID: 2, Title: "Aliens", ReleaseDate: "1986-07-18"},
		{ID: 3, Title: "Alien: Resurrection", ReleaseDate: "1997-11-26"},
	}

	best := BestMovieMatch(results, "Aliens", 0)
	require.NotNil(t, best)
	assert.Equal(t, int64(2), best.ID)
}

func TestBestMovieMatch_YearBreaksTies(t *testing.T) {
	results := []Movie{
		{ID: 1, Title: "Dune", ReleaseDate: "1984-12-14"},
		{ID: 2, Title: "Dune", ReleaseDate: "2021-10-22"},
	}

	best := BestMovieMatch(results, "Dune", 2021)
	require.NotNil(t, best)
	assert.Equal(t, int64(2), best.ID)
}

func TestBestMovieMatch_NoMatchBelowThreshold(t *testing.T) {
	results := []Movie{{ID: 1, Title: "Completely Unrelated"}}
	assert.Nil(t, BestMovieMatch(results, "Zyx", 0))
	assert.Nil(t, BestMovieMatch(nil, "anything", 0))
}

func TestBestShowMatch_AccentInsensitive(t *testing.T) {
	results := []TV{{ID: 7, Name: "Léon the Professional", FirstAirDate: "1994-09-14"}}
	best := BestShowMatch(results, "leon the professional", 0)
	require.NotNil(t, best)
	assert.Equal(t, int64(7), best.ID)
}

func TestCleanTitle(t *testing.T) {
	assert.Equal(t, "leon", cleanTitle("Léon"))
	assert.Equal(t, "fast and furious", cleanTitle("Fast & Furious"))
	assert.Equal(t, "its a wonderful life", cleanTitle("It's  a  Wonderful Life!"))
}
