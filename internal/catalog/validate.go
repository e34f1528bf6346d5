package catalog

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// Errors maps field names to human-readable validation messages.
// A nil or empty Errors means the entity is valid.
type Errors map[string]string

// Error joins the field messages in a stable order.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: %s", f, e[f])
	}
	return strings.Join(parts, "; ")
}

// OrNil returns the error set as an error, or nil when empty.
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func checkURL(errs Errors, field, value, label string) {
	if !validURL(value) {
		errs[field] = label + " must be a valid URL"
	}
}

func checkOptionalURL(errs Errors, field string, value *string, label string) {
	if value != nil && *value != "" && !validURL(*value) {
		errs[field] = label + " must be a valid URL"
	}
}

func checkRating(errs Errors, rating *float64) {
	if rating != nil && (*rating < 0 || *rating > 10) {
		errs["rating"] = "rating must be between 0 and 10"
	}
}

// ValidateMovie checks a movie draft before submission.
func ValidateMovie(m *Movie) Errors {
	errs := Errors{}
	if strings.TrimSpace(m.Title) == "" {
		errs["title"] = "title is required"
	}
	if strings.TrimSpace(m.Description) == "" {
		errs["description"] = "description is required"
	}
	if m.Image == "" {
		errs["image"] = "image URL is required"
	} else {
		checkURL(errs, "image", m.Image, "image")
	}
	if m.CoverImage == "" {
		errs["coverImage"] = "cover image URL is required"
	} else {
		checkURL(errs, "coverImage", m.CoverImage, "cover image")
	}
	checkOptionalURL(errs, "hoverImage", m.HoverImage, "hover image")
	checkRating(errs, m.Rating)
	for i, l := range m.Links {
		if l.Name == "" {
			errs[fmt.Sprintf("links[%d].name", i)] = "link name is required"
		}
		if !validURL(l.URL) {
			errs[fmt.Sprintf("links[%d].url", i)] = "link URL must be a valid URL"
		}
	}
	return errs
}

// ValidateShow checks a show draft before submission. endYear, when
// present, must not precede startYear.
func ValidateShow(s *Show) Errors {
	errs := Errors{}
	if strings.TrimSpace(s.Title) == "" {
		errs["title"] = "title is required"
	}
	if strings.TrimSpace(s.Description) == "" {
		errs["description"] = "description is required"
	}
	if s.Image == "" {
		errs["image"] = "image URL is required"
	} else {
		checkURL(errs, "image", s.Image, "image")
	}
	if s.CoverImage == "" {
		errs["coverImage"] = "cover image URL is required"
	} else {
		checkURL(errs, "coverImage", s.CoverImage, "cover image")
	}
	checkOptionalURL(errs, "hoverImage", s.HoverImage, "hover image")
	if s.Status == "" {
		errs["status"] = "status is required"
	} else if !ValidShowStatus(s.Status) {
		errs["status"] = "status must be one of Ongoing, Ended, Cancelled, Upcoming"
	}
	if s.StartYear != nil && s.EndYear != nil && *s.EndYear < *s.StartYear {
		errs["endYear"] = "end year must be after start year"
	}
	checkRating(errs, s.Rating)
	return errs
}

// ValidateSeason checks a season draft. ShowID must already be set; it is
// immutable after creation.
func ValidateSeason(s *Season) Errors {
	errs := Errors{}
	if s.ShowID <= 0 {
		errs["showId"] = "show is required"
	}
	if s.SeasonNumber <= 0 {
		errs["seasonNumber"] = "season number must be a positive number"
	}
	if strings.TrimSpace(s.Title) == "" {
		errs["title"] = "title is required"
	}
	return errs
}

// ValidateEpisode checks an episode draft. SeasonID must already be set;
// it is immutable after creation.
func ValidateEpisode(e *Episode) Errors {
	errs := Errors{}
	if e.SeasonID <= 0 {
		errs["seasonId"] = "season is required"
	}
	if e.EpisodeNumber <= 0 {
		errs["episodeNumber"] = "episode number must be a positive number"
	}
	if strings.TrimSpace(e.Title) == "" {
		errs["title"] = "title is required"
	}
	checkOptionalURL(errs, "image", e.Image, "image")
	for i, l := range e.Links {
		if l.Name == "" {
			errs[fmt.Sprintf("links[%d].name", i)] = "link name is required"
		}
		if !validURL(l.URL) {
			errs[fmt.Sprintf("links[%d].url", i)] = "link URL must be a valid URL"
		}
	}
	return errs
}

// ValidateUser checks a user draft.
func ValidateUser(u *User) Errors {
	errs := Errors{}
	if strings.TrimSpace(u.Username) == "" {
		errs["username"] = "username is required"
	}
	if u.Email == "" {
		errs["email"] = "email is required"
	} else if !emailRe.MatchString(u.Email) {
		errs["email"] = "email must be a valid email address"
	}
	checkOptionalURL(errs, "avatar", u.Avatar, "avatar")
	return errs
}
