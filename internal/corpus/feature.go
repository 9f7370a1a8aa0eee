package corpus

import "moodrec/internal/domain"

// BuildFeature concatenates the genre text and the synopsis of m.
// Absent fields contribute the empty string.
func BuildFeature(m domain.MovieRecord) string {
	return m.GenreText + m.SynopsisText()
}

// BuildFeatures returns one feature blob per movie, in corpus order.
func BuildFeatures(movies []domain.MovieRecord) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = BuildFeature(m)
	}
	return out
}
