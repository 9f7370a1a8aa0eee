package domain

import (
	"strings"
	"testing"
)

func TestMoodAccepts(t *testing.T) {
	tests := []struct {
		name      string
		hasMood   bool
		mood      float64
		candidate float64
		want      bool
	}{
		{"negative mood, positive candidate", true, -0.6, 0.4, true},
		{"negative mood, negative candidate", true, -0.6, -0.2, false},
		{"no mood, neutral candidate", false, 0, 0.0, true},
		{"no mood, negative candidate", false, 0, -0.9, true},
		{"positive mood, neutral candidate", true, 0.5, 0.0, true},
		{"positive mood, negative candidate", true, 0.5, -0.1, false},
		{"negative mood, neutral candidate", true, -0.6, 0.0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoodAccepts(tt.hasMood, tt.mood, tt.candidate); got != tt.want {
				t.Errorf("MoodAccepts(%v, %v, %v) = %v, want %v", tt.hasMood, tt.mood, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		polarity float64
		want     string
	}{
		{0.3, "Positive"},
		{-0.01, "Negative"},
		{0, "Neutral"},
	}
	for _, tt := range tests {
		if got := Label(tt.polarity); got != tt.want {
			t.Errorf("Label(%v) = %q, want %q", tt.polarity, got, tt.want)
		}
	}
}

func TestResultString(t *testing.T) {
	if got := (Result{}).String(); got != NoRecommendations {
		t.Errorf("empty result = %q, want %q", got, NoRecommendations)
	}
	res := Result{Recommendations: []Recommendation{
		{Title: "Inception", Polarity: 0},
		{Title: "Up", Polarity: 0.5},
	}}
	got := res.String()
	if !strings.Contains(got, "1. Inception (Polarity: 0.00, Neutral)") {
		t.Errorf("missing first line in %q", got)
	}
	if !strings.Contains(got, "2. Up (Polarity: 0.50, Positive)") {
		t.Errorf("missing second line in %q", got)
	}
}

func TestMovieRecordHasGenre(t *testing.T) {
	m := MovieRecord{Title: "Raiders", GenreText: "Action Adventure"}
	if !m.HasGenre("action") {
		t.Error("expected case-insensitive substring match")
	}
	if !m.HasGenre("Adv") {
		t.Error("expected substring match")
	}
	if m.HasGenre("Comedy") {
		t.Error("unexpected match")
	}
	if (MovieRecord{Title: "x"}).HasGenre("") {
		t.Error("record without genre must not match")
	}
}

func TestVectorIsZero(t *testing.T) {
	if !(Vector{}).IsZero() {
		t.Error("empty vector should be zero")
	}
	if (Vector{Indices: []int{2}, Values: []float64{0.5}}).IsZero() {
		t.Error("non-empty vector reported zero")
	}
}
