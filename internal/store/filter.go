package store

// ListFilter specifies pagination and search for list queries.
// Page and Limit are 1-based and already normalized by the API layer.
type ListFilter struct {
	Search string
	Limit  int
	Offset int
}

// SeasonFilter adds the optional parent filter for seasons.
type SeasonFilter struct {
	ListFilter
	ShowID *int64
}

// EpisodeFilter adds the optional parent filter for episodes.
type EpisodeFilter struct {
	ListFilter
	SeasonID *int64
}
