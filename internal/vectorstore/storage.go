package vectorstore

import "moodrec/internal/domain"

// Match is a stored vector position ranked by similarity to a query position.
type Match struct {
	Index int
	Score float64
}

// Storage holds one vector per movie and answers similarity lookups between them.
type Storage interface {
	Build(vectors []domain.Vector) error
	Size() int
	Similarity(i, j int) float64
	Nearest(i, topK int) ([]Match, error)
}
