package repository

import (
	"sync"

	"github.com/tortadestroyer/ai-resume-scanner-1/internal/model"
)

// MemoryCandidateRepository keeps candidates in an in-process slice, in
// insertion order. Contents are lost on restart. The mutex gives the
// append point a single-writer discipline and keeps reads from observing
// a partially appended record.
type MemoryCandidateRepository struct {
	mu         sync.Mutex
	candidates []model.Candidate
}

func NewMemoryCandidateRepository() *MemoryCandidateRepository {
	return &MemoryCandidateRepository{}
}

func (r *MemoryCandidateRepository) Create(candidate *model.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.candidates = append(r.candidates, *candidate)
	return nil
}

func (r *MemoryCandidateRepository) Find(filter CandidateFilter) ([]model.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]model.Candidate, 0, len(r.candidates))
	for _, c := range r.candidates {
		if filter.Matches(c) {
			result = append(result, c)
		}
	}
	return result, nil
}
