// Package catalog defines the entity types for the Odelu media catalog
// (movies, shows, seasons, episodes, users) and validation for them.
package catalog

import "time"

// ShowStatus is the airing status of a show.
type ShowStatus string

const (
	StatusOngoing   ShowStatus = "Ongoing"
	StatusEnded     ShowStatus = "Ended"
	StatusCancelled ShowStatus = "Cancelled"
	StatusUpcoming  ShowStatus = "Upcoming"
)

// ValidShowStatus reports whether s is one of the known show statuses.
func ValidShowStatus(s ShowStatus) bool {
	switch s {
	case StatusOngoing, StatusEnded, StatusCancelled, StatusUpcoming:
		return true
	}
	return false
}

// Link is a named external URL embedded on movies and episodes.
type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Movie is a standalone catalog entry.
type Movie struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	CoverImage  string   `json:"coverImage"`
	HoverImage  *string  `json:"hoverImage,omitempty"`
	ReleaseYear *int     `json:"releaseYear,omitempty"`
	Duration    string   `json:"duration"` // free-form, e.g. "2h 10min"
	Rating      *float64 `json:"rating,omitempty"`
	Featured    bool     `json:"featured"`
	Tags        []string `json:"tags"`
	Links       []Link   `json:"links"`
}

// Show owns zero or more seasons by reference.
type Show struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	CoverImage  string     `json:"coverImage"`
	HoverImage  *string    `json:"hoverImage,omitempty"`
	StartYear   *int       `json:"startYear,omitempty"`
	EndYear     *int       `json:"endYear,omitempty"`
	Status      ShowStatus `json:"status"`
	Rating      *float64   `json:"rating,omitempty"`
	Featured    bool       `json:"featured"`
	Tags        []string   `json:"tags"`
}

// Season belongs to a show. ShowID is set at creation and never changed.
type Season struct {
	ID           int64  `json:"id"`
	ShowID       int64  `json:"showId"`
	SeasonNumber int    `json:"seasonNumber"`
	Title        string `json:"title"`
	ReleaseYear  *int   `json:"releaseYear,omitempty"`
}

// Episode belongs to a season. SeasonID is set at creation and never changed.
type Episode struct {
	ID            int64   `json:"id"`
	SeasonID      int64   `json:"seasonId"`
	EpisodeNumber int     `json:"episodeNumber"`
	Title         string  `json:"title"`
	Description   string  `json:"description,omitempty"`
	Image         *string `json:"image,omitempty"`
	Duration      string  `json:"duration"`
	Links         []Link  `json:"links"`
}

// User is an account in the catalog's user base.
// Password is write-only: it is accepted on create/update payloads but
// never returned by the server, and a blank password on update means
// "leave unchanged".
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Avatar    *string   `json:"avatar,omitempty"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
