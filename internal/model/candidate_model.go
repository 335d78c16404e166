package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusQualified = "qualified"
	StatusRejected  = "rejected"
)

// Candidate is append-only: once created it is never updated or deleted.
type Candidate struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"size:255" json:"name"`
	Email      string    `gorm:"size:255" json:"email"`
	JobTitle   string    `gorm:"size:255" json:"jobTitle"`
	CompanyID  string    `gorm:"size:255;index" json:"companyId"`
	ResumeText string    `gorm:"type:text" json:"resumeText"`
	MatchScore int       `json:"matchScore"`
	Status     string    `gorm:"type:varchar(50);index" json:"status"` // "qualified" or "rejected"
	CreatedAt  time.Time `json:"createdAt"`
}

func (c *Candidate) TableName() string {
	return "candidates"
}
