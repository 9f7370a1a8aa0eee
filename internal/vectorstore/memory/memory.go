package memory

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"moodrec/internal/domain"
	"moodrec/internal/vectorstore"
)

// Storage is an in-memory vector store holding the full pairwise cosine similarity matrix.
type Storage struct {
	mu      sync.RWMutex
	vectors []domain.Vector
	matrix  [][]float64
}

func NewStorage() *Storage { return &Storage{} }

// Build replaces the stored vectors and computes the similarity matrix.
// Vectors are expected to be L2-normalised, so cosine similarity is their dot product.
func (s *Storage) Build(vectors []domain.Vector) error {
	if len(vectors) == 0 {
		return domain.ErrEmptyCorpus
	}
	n := len(vectors)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		// Self-similarity is 1 even for vectors without terms.
		matrix[i][i] = 1.0
		for j := i + 1; j < n; j++ {
			v := clamp(dot(vectors[i], vectors[j]))
			matrix[i][j] = v
			matrix[j][i] = v
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vectors = vectors
	s.matrix = matrix
	return nil
}

// Size returns the number of stored vectors.
func (s *Storage) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vectors)
}

// Similarity returns the cosine similarity between positions i and j, or 0 when out of range.
func (s *Storage) Similarity(i, j int) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || j < 0 || i >= len(s.matrix) || j >= len(s.matrix) {
		return 0
	}
	return s.matrix[i][j]
}

// Nearest returns up to topK other positions ordered by decreasing similarity to i.
// Ties keep position order.
func (s *Storage) Nearest(i, topK int) ([]vectorstore.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.matrix) == 0 {
		return nil, errors.New("storage not built")
	}
	if i < 0 || i >= len(s.matrix) {
		return nil, fmt.Errorf("position %d out of range [0,%d)", i, len(s.matrix))
	}
	if topK <= 0 {
		topK = domain.DefaultTopN
	}
	row := s.matrix[i]
	matches := make([]vectorstore.Match, 0, len(row)-1)
	for j, score := range row {
		if j == i {
			continue
		}
		matches = append(matches, vectorstore.Match{Index: j, Score: score})
	}
	sort.SliceStable(matches, func(a, b int) bool { return matches[a].Score > matches[b].Score })
	if topK > len(matches) {
		topK = len(matches)
	}
	return matches[:topK], nil
}

// dot walks both sorted index lists once.
func dot(a, b domain.Vector) float64 {
	sum := 0.0
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			sum += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
