package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func validMovie() *Movie {
	return &Movie{
		Title:       "Inception",
		Description: "A thief who steals corporate secrets.",
		Image:       "https://image.tmdb.org/t/p/w500/poster.jpg",
		CoverImage:  "https://image.tmdb.org/t/p/original/backdrop.jpg",
		Duration:    "2h 28min",
		Rating:      floatPtr(8.3),
		Tags:        []string{"Science Fiction", "Action"},
	}
}

func TestValidateMovie_Valid(t *testing.T) {
	errs := ValidateMovie(validMovie())
	assert.Empty(t, errs)
	assert.NoError(t, errs.OrNil())
}

func TestValidateMovie_MissingRequired(t *testing.T) {
	errs := ValidateMovie(&Movie{})
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "description")
	assert.Contains(t, errs, "image")
	assert.Contains(t, errs, "coverImage")
}

func TestValidateMovie_BadURLs(t *testing.T) {
	m := validMovie()
	m.Image = "not-a-url"
	m.HoverImage = strPtr("also bad")
	m.Links = []Link{{Name: "", URL: "nope"}}

	errs := ValidateMovie(m)
	assert.Contains(t, errs, "image")
	assert.Contains(t, errs, "hoverImage")
	assert.Contains(t, errs, "links[0].name")
	assert.Contains(t, errs, "links[0].url")
}

func TestValidateMovie_RatingRange(t *testing.T) {
	m := validMovie()
	m.Rating = floatPtr(10.5)
	assert.Contains(t, ValidateMovie(m), "rating")

	m.Rating = floatPtr(-0.1)
	assert.Contains(t, ValidateMovie(m), "rating")

	m.Rating = floatPtr(0)
	assert.NotContains(t, ValidateMovie(m), "rating")

	m.Rating = floatPtr(10)
	assert.NotContains(t, ValidateMovie(m), "rating")
}

func validShow() *Show {
	return &Show{
		Title:       "Severance",
		Description: "Employees undergo a procedure splitting their memories.",
		Image:       "https://image.tmdb.org/t/p/w500/poster.jpg",
		CoverImage:  "https://image.tmdb.org/t/p/original/backdrop.jpg",
		Status:      StatusOngoing,
		StartYear:   intPtr(2022),
	}
}

func TestValidateShow_Valid(t *testing.T) {
	assert.Empty(t, ValidateShow(validShow()))
}

func TestValidateShow_YearOrdering(t *testing.T) {
	s := validShow()
	s.StartYear = intPtr(2020)
	s.EndYear = intPtr(2018)

	errs := ValidateShow(s)
	require.Contains(t, errs, "endYear")
	assert.Equal(t, "end year must be after start year", errs["endYear"])

	// Equal years are fine.
	s.EndYear = intPtr(2020)
	assert.NotContains(t, ValidateShow(s), "endYear")

	// Missing start year means no ordering check.
	s.StartYear = nil
	s.EndYear = intPtr(1990)
	assert.NotContains(t, ValidateShow(s), "endYear")
}

func TestValidateShow_Status(t *testing.T) {
	s := validShow()
	s.Status = ""
	assert.Contains(t, ValidateShow(s), "status")

	s.Status = "Paused"
	assert.Contains(t, ValidateShow(s), "status")

	for _, st := range []ShowStatus{StatusOngoing, StatusEnded, StatusCancelled, StatusUpcoming} {
		s.Status = st
		assert.NotContains(t, ValidateShow(s), "status")
	}
}

func TestValidateSeason(t *testing.T) {
	errs := ValidateSeason(&Season{})
	assert.Contains(t, errs, "showId")
	assert.Contains(t, errs, "seasonNumber")
	assert.Contains(t, errs, "title")

	errs = ValidateSeason(&Season{ShowID: 3, SeasonNumber: 1, Title: "Season 1"})
	assert.Empty(t, errs)
}

func TestValidateEpisode(t *testing.T) {
	errs := ValidateEpisode(&Episode{})
	assert.Contains(t, errs, "seasonId")
	assert.Contains(t, errs, "episodeNumber")
	assert.Contains(t, errs, "title")

	errs = ValidateEpisode(&Episode{SeasonID: 7, EpisodeNumber: 2, Title: "Pilot", Duration: "0"})
	assert.Empty(t, errs)
}

func TestValidateUser(t *testing.T) {
	errs := ValidateUser(&User{})
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "email")

	errs = ValidateUser(&User{Username: "sam", Email: "not-an-email"})
	assert.Contains(t, errs, "email")

	errs = ValidateUser(&User{Username: "sam", Email: "sam@example.com"})
	assert.Empty(t, errs)
}

func TestErrors_Error(t *testing.T) {
	errs := Errors{"b": "second", "a": "first"}
	assert.Equal(t, "a: first; b: second", errs.Error())
}
