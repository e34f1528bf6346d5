package tmdb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/odelu/catalog/internal/catalog"
)

// Image size variants used when deriving catalog image URLs.
const (
	sizePoster   = "w500"
	sizeBackdrop = "original"
	sizeHover    = "w780"
)

// Movies and shows rated above this are automatically featured.
const featuredRating = 7.5

// ImageURL builds a full CDN URL for an image path at the given size
// variant. Returns nil when the path is empty: callers must treat a nil
// image as "no image", never build a URL from it.
func (c *Client) ImageURL(path, size string) *string {
	if path == "" {
		return nil
	}
	u := c.imageBaseURL + "/" + size + path
	return &u
}

// yearOf extracts the year from an ISO date string: the substring before
// the first "-" parsed as an integer. Returns nil when the date is absent
// or malformed.
func yearOf(date string) *int {
	if date == "" {
		return nil
	}
	head, _, _ := strings.Cut(date, "-")
	year, err := strconv.Atoi(head)
	if err != nil {
		return nil
	}
	return &year
}

// formatRuntime renders minutes as "2h 5min".
func formatRuntime(minutes int) string {
	return fmt.Sprintf("%dh %dmin", minutes/60, minutes%60)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func genreNames(genres []Genre) []string {
	tags := make([]string, 0, len(genres))
	for _, g := range genres {
		tags = append(tags, g.Name)
	}
	return tags
}

// MovieFromTMDB converts a TMDB movie record into a catalog movie draft.
func (c *Client) MovieFromTMDB(m *Movie) *catalog.Movie {
	rating := m.VoteAverage
	return &catalog.Movie{
		Title:       m.Title,
		Description: m.Overview,
		ReleaseYear: yearOf(m.ReleaseDate),
		Duration:    formatRuntime(m.Runtime),
		Rating:      &rating,
		Tags:        genreNames(m.Genres),
		Image:       deref(c.ImageURL(m.PosterPath, sizePoster)),
		CoverImage:  deref(c.ImageURL(m.BackdropPath, sizeBackdrop)),
		HoverImage:  c.ImageURL(m.PosterPath, sizeHover),
		Featured:    m.VoteAverage > featuredRating,
		Links:       []catalog.Link{},
	}
}

// statusFromTMDB maps TMDB airing statuses onto the catalog enum.
// Anything unrecognized (including absence) counts as Ongoing.
func statusFromTMDB(status string) catalog.ShowStatus {
	switch status {
	case "Ended":
		return catalog.StatusEnded
	case "Canceled", "Cancelled":
		return catalog.StatusCancelled
	case "Planned", "In Production":
		return catalog.StatusUpcoming
	default:
		return catalog.StatusOngoing
	}
}

// ShowFromTMDB converts a TMDB TV record into a catalog show draft.
// The end year is set only for shows TMDB reports as ended.
func (c *Client) ShowFromTMDB(tv *TV) *catalog.Show {
	rating := tv.VoteAverage
	var endYear *int
	if tv.Status == "Ended" && tv.LastAirDate != "" {
		endYear = yearOf(tv.LastAirDate)
	}
	return &catalog.Show{
		Title:       tv.Name,
		Description: tv.Overview,
		StartYear:   yearOf(tv.FirstAirDate),
		EndYear:     endYear,
		Status:      statusFromTMDB(tv.Status),
		Rating:      &rating,
		Tags:        genreNames(tv.Genres),
		Image:       deref(c.ImageURL(tv.PosterPath, sizePoster)),
		CoverImage:  deref(c.ImageURL(tv.BackdropPath, sizeBackdrop)),
		HoverImage:  c.ImageURL(tv.PosterPath, sizeHover),
		Featured:    tv.VoteAverage > featuredRating,
	}
}

// SeasonFromTMDB converts a TMDB season record into a catalog season draft
// attached to the given show.
func (c *Client) SeasonFromTMDB(s *Season, showID int64) *catalog.Season {
	title := s.Name
	if title == "" {
		title = fmt.Sprintf("Season %d", s.SeasonNumber)
	}
	return &catalog.Season{
		ShowID:       showID,
		SeasonNumber: s.SeasonNumber,
		Title:        title,
		ReleaseYear:  yearOf(s.AirDate),
	}
}

// EpisodeFromTMDB converts a TMDB episode record into a catalog episode
// draft attached to the given season. TMDB carries no per-episode runtime,
// so the duration is "0" until edited.
func (c *Client) EpisodeFromTMDB(e *Episode, seasonID int64) *catalog.Episode {
	return &catalog.Episode{
		SeasonID:      seasonID,
		EpisodeNumber: e.EpisodeNumber,
		Title:         e.Name,
		Description:   e.Overview,
		Image:         c.ImageURL(e.StillPath, sizePoster),
		Duration:      "0",
		Links:         []catalog.Link{},
	}
}
