package domain

import (
	"fmt"
	"strings"
)

// NoRecommendations is reported when a query ran but nothing passed its constraints.
const NoRecommendations = "no suitable recommendations found"

// DefaultTopN is the number of recommendations returned when a query does not ask for a count.
const DefaultTopN = 5

// MovieRecord is a single row of the in-memory corpus. It is never modified after load.
type MovieRecord struct {
	Title string
	// GenreText is the genre field as it appeared in the source, e.g. "Action, Sci-Fi".
	GenreText string
	Genres    []string
	Synopsis  *string
	Rating    *float64
}

// SynopsisText returns the synopsis or "" when absent.
func (m MovieRecord) SynopsisText() string {
	if m.Synopsis == nil {
		return ""
	}
	return *m.Synopsis
}

// HasGenre reports whether the genre field contains genre as a case-insensitive substring.
func (m MovieRecord) HasGenre(genre string) bool {
	if m.GenreText == "" {
		return false
	}
	return strings.Contains(strings.ToLower(m.GenreText), strings.ToLower(genre))
}

// Vector is a sparse vector: Indices are strictly increasing positions with matching Values.
type Vector struct {
	Indices []int
	Values  []float64
}

// IsZero reports whether the vector has no non-zero component.
func (v Vector) IsZero() bool {
	for _, x := range v.Values {
		if x != 0 {
			return false
		}
	}
	return true
}

// Query holds the constraints of one recommendation request. Zero values mean "not given".
type Query struct {
	Genre     string
	Mood      string
	MinRating *float64
	TopN      int
}

// Recommendation is one accepted candidate with the polarity of its synopsis.
type Recommendation struct {
	Title    string
	Polarity float64
}

// Label returns the display sentiment of the recommendation.
func (r Recommendation) Label() string { return Label(r.Polarity) }

// Result is the ordered outcome of a query. An empty result is the
// "no suitable recommendations" outcome, not an error.
type Result struct {
	Recommendations []Recommendation
}

// Empty reports whether nothing matched.
func (r Result) Empty() bool { return len(r.Recommendations) == 0 }

func (r Result) String() string {
	if r.Empty() {
		return NoRecommendations
	}
	var b strings.Builder
	for i, rec := range r.Recommendations {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s (Polarity: %.2f, %s)", i+1, rec.Title, rec.Polarity, rec.Label())
	}
	return b.String()
}

// Neighbor is a movie ranked by similarity to another one.
type Neighbor struct {
	Title string
	Score float64
}

// Label names the sign of a polarity score.
func Label(polarity float64) string {
	switch {
	case polarity > 0:
		return "Positive"
	case polarity < 0:
		return "Negative"
	default:
		return "Neutral"
	}
}

// MoodAccepts applies the mood-congruence rule. Without a mood every candidate is
// accepted. With a mood a candidate is accepted when the mood is negative and the
// candidate strictly positive, or when the candidate is non-negative.
// Strictly negative candidates are therefore never accepted once a mood is given.
func MoodAccepts(hasMood bool, moodPolarity, candidatePolarity float64) bool {
	if !hasMood {
		return true
	}
	return (moodPolarity < 0 && candidatePolarity > 0) || candidatePolarity >= 0
}
