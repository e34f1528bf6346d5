package store

import (
	"encoding/json"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// searchKey normalizes a title for substring search: lowercase, accents
// folded, whitespace collapsed. Stored alongside the display title so
// "Léon" matches a search for "leon".
func searchKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, _ := transform.String(t, strings.ToLower(s))
	return strings.Join(strings.Fields(folded), " ")
}

// likePattern builds the LIKE argument for a search term, escaping the
// sqlite wildcards.
func likePattern(search string) string {
	escaped := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(searchKey(search))
	return "%" + escaped + "%"
}

// jsonColumn serializes tags/links columns. A nil slice is stored as an
// empty array, never SQL NULL.
func jsonColumn[T any](v []T) (string, error) {
	if v == nil {
		v = []T{}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// fromJSONColumn deserializes a tags/links column.
func fromJSONColumn[T any](raw string) ([]T, error) {
	v := []T{}
	if raw == "" {
		return v, nil
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, err
	}
	return v, nil
}
