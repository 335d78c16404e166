package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/tortadestroyer/ai-resume-scanner-1/internal/model"
)

// CandidateDTO is the listing projection. ResumeText and CompanyID are
// deliberately not part of it.
type CandidateDTO struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	JobTitle   string    `json:"jobTitle"`
	MatchScore int       `json:"matchScore"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CandidateSummaryDTO is what a submission returns to the caller.
type CandidateSummaryDTO struct {
	ID         uuid.UUID `json:"id"`
	MatchScore int       `json:"matchScore"`
	Status     string    `json:"status"`
}

func NewCandidateDTO(c model.Candidate) CandidateDTO {
	return CandidateDTO{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		JobTitle:   c.JobTitle,
		MatchScore: c.MatchScore,
		Status:     c.Status,
		CreatedAt:  c.CreatedAt,
	}
}

func NewCandidateSummaryDTO(c model.Candidate) CandidateSummaryDTO {
	return CandidateSummaryDTO{
		ID:         c.ID,
		MatchScore: c.MatchScore,
		Status:     c.Status,
	}
}
