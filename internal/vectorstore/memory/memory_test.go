package memory

import (
	"errors"
	"math"
	"testing"

	"moodrec/internal/domain"
)

func unit(pairs map[int]float64) domain.Vector {
	idx := make([]int, 0, len(pairs))
	for i := 0; i < 10; i++ {
		if _, ok := pairs[i]; ok {
			idx = append(idx, i)
		}
	}
	norm := 0.0
	for _, v := range pairs {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	vals := make([]float64, len(idx))
	for i, j := range idx {
		vals[i] = pairs[j] / norm
	}
	return domain.Vector{Indices: idx, Values: vals}
}

func TestBuildEmpty(t *testing.T) {
	if err := NewStorage().Build(nil); !errors.Is(err, domain.ErrEmptyCorpus) {
		t.Fatalf("Build(nil) error = %v, want ErrEmptyCorpus", err)
	}
}

func TestMatrixInvariants(t *testing.T) {
	s := NewStorage()
	vectors := []domain.Vector{
		unit(map[int]float64{0: 1, 1: 1}),
		unit(map[int]float64{0: 1, 2: 1}),
		unit(map[int]float64{3: 1}),
		{}, // no terms
	}
	if err := s.Build(vectors); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if s.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", s.Size())
	}
	for i := 0; i < 4; i++ {
		if math.Abs(s.Similarity(i, i)-1) > 1e-9 {
			t.Errorf("Similarity(%d,%d) = %v, want 1", i, i, s.Similarity(i, i))
		}
		for j := 0; j < 4; j++ {
			v := s.Similarity(i, j)
			if v < 0 || v > 1 {
				t.Errorf("Similarity(%d,%d) = %v outside [0,1]", i, j, v)
			}
			if v != s.Similarity(j, i) {
				t.Errorf("matrix not symmetric at (%d,%d)", i, j)
			}
		}
	}
	if got := s.Similarity(0, 1); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Similarity(0,1) = %v, want 0.5", got)
	}
	if got := s.Similarity(0, 2); got != 0 {
		t.Errorf("Similarity(0,2) = %v, want 0", got)
	}
	if got := s.Similarity(0, 99); got != 0 {
		t.Errorf("out of range similarity = %v, want 0", got)
	}
}

func TestNearest(t *testing.T) {
	s := NewStorage()
	if _, err := s.Nearest(0, 1); err == nil {
		t.Fatal("expected error before Build")
	}
	vectors := []domain.Vector{
		unit(map[int]float64{0: 1, 1: 1}),
		unit(map[int]float64{3: 1}),
		unit(map[int]float64{0: 1, 1: 1, 2: 1}),
	}
	if err := s.Build(vectors); err != nil {
		t.Fatal(err)
	}
	got, err := s.Nearest(0, 5)
	if err != nil {
		t.Fatalf("Nearest() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (self excluded)", len(got))
	}
	if got[0].Index != 2 || got[1].Index != 1 {
		t.Errorf("order = %+v, want [2 1]", got)
	}
	if _, err := s.Nearest(7, 1); err == nil {
		t.Error("expected out of range error")
	}
	one, _ := s.Nearest(0, 1)
	if len(one) != 1 {
		t.Errorf("topK not honoured: %+v", one)
	}
}
