package repository

import (
	"strings"

	"github.com/tortadestroyer/ai-resume-scanner-1/internal/model"
)

// CandidateFilter narrows a listing. Zero-value fields are ignored;
// populated fields combine with AND semantics.
type CandidateFilter struct {
	CompanyID string // exact match
	Status    string // exact match
	JobTitle  string // case-insensitive substring match
}

// Matches reports whether a candidate passes every populated filter field.
func (f CandidateFilter) Matches(c model.Candidate) bool {
	if f.CompanyID != "" && c.CompanyID != f.CompanyID {
		return false
	}
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.JobTitle != "" && !strings.Contains(strings.ToLower(c.JobTitle), strings.ToLower(f.JobTitle)) {
		return false
	}
	return true
}

// CandidateRepository is the append-only candidate store. Create must be
// safe under concurrent submissions; Find must return a snapshot that
// later appends cannot mutate.
type CandidateRepository interface {
	Create(candidate *model.Candidate) error
	Find(filter CandidateFilter) ([]model.Candidate, error)
}
