// Package corpus loads movie records and derives the per-movie features and the genre catalog.
package corpus

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"moodrec/internal/domain"
)

// Columns lists the accepted header names for each logical column. Matching is case-insensitive.
type Columns struct {
	Title    []string `yaml:"title" koanf:"title"`
	Genre    []string `yaml:"genre" koanf:"genre"`
	Synopsis []string `yaml:"synopsis" koanf:"synopsis"`
	Rating   []string `yaml:"rating" koanf:"rating"`
}

// DefaultColumns accepts both plain names and the IMDB top-1000 export headers.
func DefaultColumns() Columns {
	return Columns{
		Title:    []string{"title", "series_title"},
		Genre:    []string{"genre", "genres"},
		Synopsis: []string{"overview", "synopsis"},
		Rating:   []string{"rating", "imdb_rating"},
	}
}

// Load reads a CSV file with a header row into movie records.
// Any failure to open or parse the file is reported as *domain.CorpusLoadError.
func Load(path string, cols Columns) ([]domain.MovieRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.CorpusLoadError{Path: path, Err: err}
	}
	defer f.Close()

	movies, err := Read(f, cols)
	if err != nil {
		return nil, &domain.CorpusLoadError{Path: path, Err: err}
	}
	return movies, nil
}

// Read parses CSV records from r. Rows without a title are skipped.
func Read(r io.Reader, cols Columns) ([]domain.MovieRecord, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header row")
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}
	titleIdx := columnIndex(header, cols.Title)
	if titleIdx < 0 {
		return nil, fmt.Errorf("no title column (accepted: %s)", strings.Join(cols.Title, ", "))
	}
	genreIdx := columnIndex(header, cols.Genre)
	synopsisIdx := columnIndex(header, cols.Synopsis)
	ratingIdx := columnIndex(header, cols.Rating)

	var movies []domain.MovieRecord
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		title := strings.TrimSpace(field(rec, titleIdx))
		if title == "" {
			continue
		}
		m := domain.MovieRecord{Title: title}
		if g := field(rec, genreIdx); strings.TrimSpace(g) != "" {
			m.GenreText = g
			m.Genres = SplitGenres(g)
		}
		// Only an empty cell is a missing synopsis; blank text is still text.
		if s := field(rec, synopsisIdx); s != "" {
			m.Synopsis = &s
		}
		m.Rating = parseRating(field(rec, ratingIdx))
		movies = append(movies, m)
	}
	return movies, nil
}

// parseRating returns nil for empty, unparsable, NaN or infinite cells.
func parseRating(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// SplitGenres splits a comma-separated genre field into trimmed, non-empty labels.
func SplitGenres(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func columnIndex(header []string, names []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		for _, n := range names {
			if h == strings.ToLower(n) {
				return i
			}
		}
	}
	return -1
}

func field(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return rec[idx]
}
