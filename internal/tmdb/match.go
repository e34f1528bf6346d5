package tmdb

import (
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Search results below this similarity are treated as no match.
const matchThreshold = 0.70

// BestMovieMatch picks the search result whose title best matches the
// query. Jaro-Winkler favors prefix matches, which suits media titles.
// A year, when known, breaks near-ties toward the right release.
// Returns nil when nothing scores above the match threshold.
func BestMovieMatch(results []Movie, title string, year int) *Movie {
	var best *Movie
	bestScore := 0.0
	for i := range results {
		m := &results[i]
		score := titleScore(title, m.Title)
		if year > 0 {
			if y := yearOf(m.ReleaseDate); y != nil && *y == year {
				score = min(score*1.05, 1.0)
			}
		}
		if score > bestScore {
			best = m
			bestScore = score
		}
	}
	if bestScore < matchThreshold {
		return nil
	}
	return best
}

// BestShowMatch is BestMovieMatch for TV search results.
func BestShowMatch(results []TV, title string, year int) *TV {
	var best *TV
	bestScore := 0.0
	for i := range results {
		tv := &results[i]
		score := titleScore(title, tv.Name)
		if year > 0 {
			if y := yearOf(tv.FirstAirDate); y != nil && *y == year {
				score = min(score*1.05, 1.0)
			}
		}
		if score > bestScore {
			best = tv
			bestScore = score
		}
	}
	if bestScore < matchThreshold {
		return nil
	}
	return best
}

func titleScore(query, candidate string) float64 {
	return float64(edlib.JaroWinklerSimilarity(cleanTitle(query), cleanTitle(candidate)))
}

// cleanTitle normalizes a title for matching: lowercase, accents folded,
// punctuation stripped, whitespace collapsed.
func cleanTitle(title string) string {
	s := strings.ToLower(title)
	s = removeAccents(s)
	s = strings.ReplaceAll(s, "&", " and ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
