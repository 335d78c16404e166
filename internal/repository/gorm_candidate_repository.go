package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/tortadestroyer/ai-resume-scanner-1/internal/model"
)

// GormCandidateRepository persists candidates in a relational database.
// It implements the same append-only contract as the in-memory store; the
// database serializes concurrent inserts.
type GormCandidateRepository struct {
	db *gorm.DB
}

func NewGormCandidateRepository(db *gorm.DB) *GormCandidateRepository {
	return &GormCandidateRepository{db}
}

func (r *GormCandidateRepository) Create(candidate *model.Candidate) error {
	return r.db.Create(candidate).Error
}

func (r *GormCandidateRepository) Find(filter CandidateFilter) ([]model.Candidate, error) {
	query := r.db.Model(&model.Candidate{})
	if filter.CompanyID != "" {
		query = query.Where("company_id = ?", filter.CompanyID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.JobTitle != "" {
		query = query.Where("LOWER(job_title) LIKE ?", "%"+strings.ToLower(filter.JobTitle)+"%")
	}

	var candidates []model.Candidate
	err := query.Order("created_at ASC").Find(&candidates).Error
	return candidates, err
}
