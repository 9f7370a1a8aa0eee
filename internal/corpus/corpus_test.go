package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"moodrec/internal/domain"
)

const imdbCSV = `Series_Title,Released_Year,Genre,IMDB_Rating,Overview
Inception,2010,"Action, Adventure, Sci-Fi",8.8,A thief who steals corporate secrets.
Saw,2004,"Horror, Mystery",7.6,
,1999,Drama,8.0,No title here.
Untitled Rating,2001,Drama,,A quiet story.
Cube,1997,,7.2,Strangers wake up in a maze.
`

func TestRead(t *testing.T) {
	movies, err := Read(strings.NewReader(imdbCSV), DefaultColumns())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(movies) != 4 {
		t.Fatalf("len(movies) = %d, want 4 (titleless row skipped)", len(movies))
	}

	inception := movies[0]
	if inception.Title != "Inception" {
		t.Errorf("Title = %q", inception.Title)
	}
	if want := []string{"Action", "Adventure", "Sci-Fi"}; !reflect.DeepEqual(inception.Genres, want) {
		t.Errorf("Genres = %v, want %v", inception.Genres, want)
	}
	if inception.Rating == nil || *inception.Rating != 8.8 {
		t.Errorf("Rating = %v, want 8.8", inception.Rating)
	}
	if inception.Synopsis == nil {
		t.Error("Synopsis should be present")
	}

	if movies[1].Synopsis != nil {
		t.Error("empty overview should be absent")
	}
	if movies[2].Rating != nil {
		t.Error("empty rating should be absent")
	}
	if movies[3].GenreText != "" || movies[3].Genres != nil {
		t.Errorf("missing genre should stay empty, got %q", movies[3].GenreText)
	}
}

func TestReadRatingAndSynopsisCells(t *testing.T) {
	data := "title,genre,overview,rating\n" +
		"Good,Drama,Fine.,8.5\n" +
		"NotANumber,Drama,Fine.,NaN\n" +
		"Infinite,Drama,Fine.,+Inf\n" +
		"Garbage,Drama,Fine.,eight\n" +
		"Blank,Drama,\"   \",7.0\n"
	movies, err := Read(strings.NewReader(data), DefaultColumns())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(movies) != 5 {
		t.Fatalf("len(movies) = %d, want 5", len(movies))
	}
	if movies[0].Rating == nil || *movies[0].Rating != 8.5 {
		t.Errorf("Good rating = %v, want 8.5", movies[0].Rating)
	}
	for _, m := range movies[1:4] {
		if m.Rating != nil {
			t.Errorf("%s rating = %v, want absent", m.Title, *m.Rating)
		}
	}
	if movies[4].Synopsis == nil || *movies[4].Synopsis != "   " {
		t.Errorf("whitespace synopsis should be kept as present, got %v", movies[4].Synopsis)
	}
}

func TestReadNoTitleColumn(t *testing.T) {
	_, err := Read(strings.NewReader("name,genre\nx,Drama\n"), DefaultColumns())
	if err == nil {
		t.Fatal("expected error for missing title column")
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")
	_, err := Load(path, DefaultColumns())
	var loadErr *domain.CorpusLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error = %v, want *domain.CorpusLoadError", err)
	}
	if loadErr.Path != path {
		t.Errorf("Path = %q, want %q", loadErr.Path, path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")
	data := "title,genre,synopsis,rating\nUp,\"Animation, Adventure\",A joyful flight.,8.3\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	movies, err := Load(path, DefaultColumns())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(movies) != 1 || movies[0].Title != "Up" {
		t.Fatalf("movies = %+v", movies)
	}
}

func TestBuildFeature(t *testing.T) {
	synopsis := "A mind-bending heist."
	tests := []struct {
		name  string
		movie domain.MovieRecord
		want  string
	}{
		{"both", domain.MovieRecord{Title: "a", GenreText: "Action, Sci-Fi", Synopsis: &synopsis}, "Action, Sci-FiA mind-bending heist."},
		{"no synopsis", domain.MovieRecord{Title: "b", GenreText: "Horror"}, "Horror"},
		{"no genre", domain.MovieRecord{Title: "c", Synopsis: &synopsis}, synopsis},
		{"nothing", domain.MovieRecord{Title: "d"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildFeature(tt.movie); got != tt.want {
				t.Errorf("BuildFeature() = %q, want %q", got, tt.want)
			}
		})
	}
	if got := BuildFeatures([]domain.MovieRecord{tests[1].movie, tests[3].movie}); len(got) != 2 || got[0] != "Horror" {
		t.Errorf("BuildFeatures() = %v", got)
	}
}

func TestListGenres(t *testing.T) {
	movies := []domain.MovieRecord{
		{Title: "a", GenreText: "Drama, Action"},
		{Title: "b", GenreText: " Action ,  ,Comedy"},
		{Title: "c"},
		{Title: "d", GenreText: "Sci-Fi"},
	}
	got := ListGenres(movies)
	want := []string{"Action", "Comedy", "Drama", "Sci-Fi"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ListGenres() = %v, want %v", got, want)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Errorf("not strictly increasing at %d: %q >= %q", i, got[i-1], got[i])
		}
	}
	if got := ListGenres(nil); len(got) != 0 {
		t.Errorf("ListGenres(nil) = %v, want empty", got)
	}
}

func TestCatalogResolve(t *testing.T) {
	c := NewCatalog([]domain.MovieRecord{
		{Title: "a", GenreText: "Drama, Action"},
		{Title: "b", GenreText: "Comedy"},
	})
	tests := []struct {
		input   string
		want    string
		invalid bool
	}{
		{"1", "Action", false},
		{"3", "Drama", false},
		{" 2 ", "Comedy", false},
		{"Drama", "Drama", false},
		{"  Comedy ", "Comedy", false},
		{"0", "", true},
		{"4", "", true},
		{"drama", "", true},
		{"Horror", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := c.Resolve(tt.input)
			if tt.invalid {
				var inv *domain.InvalidGenreError
				if !errors.As(err, &inv) {
					t.Fatalf("Resolve(%q) error = %v, want InvalidGenreError", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	g := c.Genres()
	g[0] = "mutated"
	if c.Genres()[0] != "Action" {
		t.Error("Genres() must return a copy")
	}
}
