// Package sentiment scores the polarity of short English texts, either through VADER
// or with a built-in word lexicon using intensifier modifiers and a negation window.
package sentiment

import (
	"math"
	"regexp"
	"strings"
)

// Config tunes the analyzer.
type Config struct {
	// NegationWindow is how many preceding words are searched for a negation.
	NegationWindow int
	// NegationFactor multiplies the polarity of a negated word.
	NegationFactor float64
}

// DefaultConfig returns the standard analyzer configuration.
func DefaultConfig() Config {
	return Config{
		NegationWindow: 3,
		NegationFactor: -0.5,
	}
}

// Analyzer is a lexicon/rule-based polarity scorer. It is safe for concurrent use.
type Analyzer struct {
	lexicon  Lexicon
	config   Config
	words    *regexp.Regexp
	splitter *regexp.Regexp
}

// NewAnalyzer creates an analyzer over lex. A nil lexicon selects the built-in one.
func NewAnalyzer(lex Lexicon, cfg Config) *Analyzer {
	if lex == nil {
		lex = DefaultLexicon()
	}
	if cfg.NegationWindow < 0 {
		cfg.NegationWindow = 0
	}
	if cfg.NegationFactor == 0 {
		cfg.NegationFactor = DefaultConfig().NegationFactor
	}
	return &Analyzer{
		lexicon:  lex,
		config:   cfg,
		words:    regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`),
		splitter: regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`),
	}
}

// Polarity returns the mean polarity of all lexicon hits in text, in [-1, +1].
// Text without lexicon words scores 0.
func (a *Analyzer) Polarity(text string) float64 {
	sum, hits := 0.0, 0
	for _, sent := range a.Sentences(text) {
		s, n := a.scoreSentence(sent)
		sum += s
		hits += n
	}
	if hits == 0 {
		return 0
	}
	return math.Max(-1, math.Min(1, sum/float64(hits)))
}

// Sentences splits text on terminal punctuation. Trailing text without punctuation
// forms its own sentence.
func (a *Analyzer) Sentences(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	locs := a.splitter.FindAllStringIndex(trimmed, -1)
	var out []string
	end := 0
	for _, loc := range locs {
		if s := strings.TrimSpace(trimmed[loc[0]:loc[1]]); s != "" {
			out = append(out, s)
		}
		end = loc[1]
	}
	if rest := strings.TrimSpace(trimmed[end:]); rest != "" {
		out = append(out, rest)
	}
	return out
}

// scoreSentence returns the summed polarity of lexicon words and how many were found.
func (a *Analyzer) scoreSentence(sentence string) (float64, int) {
	tokens := a.words.FindAllString(strings.ToLower(sentence), -1)
	sum, hits := 0.0, 0
	for i, tok := range tokens {
		p, ok := a.lexicon[tok]
		if !ok {
			continue
		}
		if i > 0 {
			if m, ok := intensifiers[tokens[i-1]]; ok {
				p *= m
			}
		}
		if a.negated(tokens, i) {
			p *= a.config.NegationFactor
		}
		sum += math.Max(-1, math.Min(1, p))
		hits++
	}
	return sum, hits
}

// negated looks back over the negation window, stopping at clause boundaries.
func (a *Analyzer) negated(tokens []string, pos int) bool {
	start := pos - a.config.NegationWindow
	if start < 0 {
		start = 0
	}
	for j := pos - 1; j >= start; j-- {
		tok := tokens[j]
		if _, ok := clauseBoundaries[tok]; ok {
			return false
		}
		if _, ok := negations[tok]; ok || strings.HasSuffix(tok, "n't") || strings.HasSuffix(tok, "n’t") {
			return true
		}
	}
	return false
}
