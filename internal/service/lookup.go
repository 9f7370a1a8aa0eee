package service

import (
	"math"
	"regexp"
	"strings"

	"moodrec/internal/embedding/tfidf"
)

var (
	titleWordRe = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*|\p{N}+`)
	stopwords   = tfidf.EnglishStopwords()
)

// lookupTitle resolves a title exactly (case-insensitive) or, failing that, picks the
// title sharing the most words with the query. It reports false when nothing overlaps.
func (e *Engine) lookupTitle(query string) (int, bool) {
	if idx, ok := e.titles[strings.ToLower(strings.TrimSpace(query))]; ok {
		return idx, true
	}
	q := titleTerms(query)
	best, bestScore := 0, 0.0
	for i, terms := range e.titleWords {
		// Ties keep the earliest title in corpus order.
		if s := ochiai(q, terms); s > bestScore {
			best, bestScore = i, s
		}
	}
	return best, bestScore > 0
}

// titleTerms returns the distinct lower-cased words of s without English stop words.
// Titles made only of stop words ("Up", "It") keep their words.
func titleTerms(s string) map[string]struct{} {
	words := titleWordRe.FindAllString(strings.ToLower(s), -1)
	terms := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, stop := stopwords[w]; !stop {
			terms[w] = struct{}{}
		}
	}
	if len(terms) == 0 {
		for _, w := range words {
			terms[w] = struct{}{}
		}
	}
	return terms
}

// ochiai is |A∩B| / sqrt(|A||B|), 0 when either set is empty.
func ochiai(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	shared := 0
	for t := range a {
		if _, ok := b[t]; ok {
			shared++
		}
	}
	return float64(shared) / math.Sqrt(float64(len(a))*float64(len(b)))
}
