package domain

// Embedder converts free text into a sparse term-weighted vector.
// Implementations require a preparation phase over the corpus.
type Embedder interface {
	Name() string
	Prepare(corpus []string) error
	Dimension() int
	Embed(text string) (Vector, error)
}

// Scorer estimates the sentiment polarity of a piece of text in [-1, +1].
type Scorer interface {
	Polarity(text string) float64
}

// Shuffler permutes a sequence of n elements in place through swap.
// *math/rand/v2.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// IdentityShuffler leaves the order untouched. Useful for reproducible queries.
type IdentityShuffler struct{}

// Shuffle does nothing.
func (IdentityShuffler) Shuffle(int, func(i, j int)) {}

// ScorerFunc adapts an ordinary function to the Scorer interface.
type ScorerFunc func(text string) float64

// Polarity calls f(text).
func (f ScorerFunc) Polarity(text string) float64 { return f(text) }
