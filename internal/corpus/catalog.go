package corpus

import (
	"sort"
	"strconv"
	"strings"

	"moodrec/internal/domain"
)

// ListGenres returns every distinct genre label in the corpus, sorted lexicographically.
func ListGenres(movies []domain.MovieRecord) []string {
	seen := make(map[string]struct{})
	for _, m := range movies {
		if m.GenreText == "" {
			continue
		}
		for _, g := range SplitGenres(m.GenreText) {
			seen[g] = struct{}{}
		}
	}
	genres := make([]string, 0, len(seen))
	for g := range seen {
		genres = append(genres, g)
	}
	sort.Strings(genres)
	return genres
}

// Catalog is the sorted genre list used for menus and input validation.
type Catalog struct {
	genres []string
	index  map[string]struct{}
}

// NewCatalog derives the catalog from the corpus.
func NewCatalog(movies []domain.MovieRecord) *Catalog {
	genres := ListGenres(movies)
	index := make(map[string]struct{}, len(genres))
	for _, g := range genres {
		index[g] = struct{}{}
	}
	return &Catalog{genres: genres, index: index}
}

// Genres returns a copy of the sorted genre list.
func (c *Catalog) Genres() []string {
	out := make([]string, len(c.genres))
	copy(out, c.genres)
	return out
}

// Len returns the number of genres.
func (c *Catalog) Len() int { return len(c.genres) }

// Resolve maps user input to a genre: either a 1-based position in the sorted list
// or an exact label after trimming surrounding whitespace.
func (c *Catalog) Resolve(input string) (string, error) {
	in := strings.TrimSpace(input)
	if n, err := strconv.Atoi(in); err == nil {
		if n >= 1 && n <= len(c.genres) {
			return c.genres[n-1], nil
		}
		return "", &domain.InvalidGenreError{Input: input}
	}
	if _, ok := c.index[in]; ok && in != "" {
		return in, nil
	}
	return "", &domain.InvalidGenreError{Input: input}
}
