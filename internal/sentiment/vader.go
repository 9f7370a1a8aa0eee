package sentiment

import "github.com/jonreiter/govader"

// Vader scores text with the VADER rule set and lexicon.
// Polarity is the normalised compound score, already in [-1, +1].
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVader creates a scorer backed by the bundled VADER lexicon.
func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Polarity returns the compound VADER score of text.
func (v *Vader) Polarity(text string) float64 {
	return v.analyzer.PolarityScores(text).Compound
}
