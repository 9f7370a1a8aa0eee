package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyCorpus is returned when an index is requested over zero records.
var ErrEmptyCorpus = errors.New("empty corpus")

// CorpusLoadError reports that the corpus source could not be read.
type CorpusLoadError struct {
	Path string
	Err  error
}

func (e *CorpusLoadError) Error() string {
	return fmt.Sprintf("load corpus %q: %v", e.Path, e.Err)
}

func (e *CorpusLoadError) Unwrap() error { return e.Err }

// InvalidGenreError reports user input that is neither a catalog position nor a known genre.
// Callers are expected to ask again.
type InvalidGenreError struct {
	Input string
}

func (e *InvalidGenreError) Error() string {
	return fmt.Sprintf("invalid genre %q", e.Input)
}
