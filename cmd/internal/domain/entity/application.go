package entity

import "github.com/google/uuid"

type ApplicationStatus string

const (
	ApplicationSubmitted ApplicationStatus = "submitted"
	ApplicationWithdrawn ApplicationStatus = "withdrawn"
)

// Application is a candidate's answer to a job posting.
type Application struct {
	Record
	JobID       uuid.UUID         `gorm:"type:uuid;not null;index"`
	CandidateID uuid.UUID         `gorm:"type:uuid;not null;index"`
	CoverLetter string            `gorm:"not null;type:text"`
	ResumeURL   string            `gorm:"not null"`
	Status      ApplicationStatus `gorm:"not null;type:varchar(16)"`
}

func (a *Application) Kind() Kind {
	return KindApplication
}

func (a *Application) Owner() (uuid.UUID, bool) {
	return a.CandidateID, true
}
