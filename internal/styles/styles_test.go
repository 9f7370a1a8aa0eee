package styles

import (
	"regexp"
	"strings"
	"testing"

	"moodrec/internal/domain"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string { return ansiRe.ReplaceAllString(s, "") }

func TestRecommendations(t *testing.T) {
	tests := []struct {
		name string
		user string
		res  domain.Result
		want []string
	}{
		{
			name: "numbered list",
			user: "Ada",
			res: domain.Result{Recommendations: []domain.Recommendation{
				{Title: "Up", Polarity: 0.4},
				{Title: "Heat", Polarity: 0},
			}},
			want: []string{
				"AI-Analyzed Movie Recommendations for Ada:",
				"1. Up (Polarity: 0.40, Positive)",
				"2. Heat (Polarity: 0.00, Neutral)",
			},
		},
		{
			name: "no match",
			res:  domain.Result{},
			want: []string{
				"AI-Analyzed Movie Recommendations:",
				domain.NoRecommendations,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Split(plain(Recommendations(tt.user, tt.res)), "\n")
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines %q, want %q", len(got), got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGenres(t *testing.T) {
	got := plain(Genres([]string{"Action", "Comedy", "Drama"}))
	if want := "1. Action  2. Comedy  3. Drama"; got != want {
		t.Errorf("Genres() = %q, want %q", got, want)
	}
	if got := Genres(nil); got != "" {
		t.Errorf("Genres(nil) = %q, want empty", got)
	}
}

func TestNeighbors(t *testing.T) {
	got := plain(Neighbors("Alien", []domain.Neighbor{{Title: "Aliens", Score: 0.5}}))
	want := "Movies similar to Alien:\n1. Aliens (similarity 0.500)"
	if got != want {
		t.Errorf("Neighbors() = %q, want %q", got, want)
	}
}

func TestLabelStyle(t *testing.T) {
	for _, label := range []string{"Positive", "Negative", "Neutral"} {
		if got := plain(LabelStyle(label).Render(label)); got != label {
			t.Errorf("LabelStyle(%q) rendered %q", label, got)
		}
	}
}
