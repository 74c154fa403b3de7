package entity

import "github.com/google/uuid"

type JobStatus string

const (
	JobStatusDraft  JobStatus = "draft"
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
	EmploymentTemporary  EmploymentType = "temporary"
)

// Job is a posting published by a recruiter.
type Job struct {
	Record
	RecruiterID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title           string         `gorm:"not null"`
	Description     string         `gorm:"not null;type:text"`
	CompanyName     string         `gorm:"not null"`
	Location        string         `gorm:"not null"`
	EmploymentType  EmploymentType `gorm:"not null;type:varchar(16)"`
	ExperienceLevel string         `gorm:"not null"`
	SalaryMin       *int
	SalaryMax       *int
	IsRemote        bool      `gorm:"not null"`
	Tags            string    `gorm:"not null"`
	Status          JobStatus `gorm:"not null;type:varchar(16);index"`
}

func (j *Job) Kind() Kind {
	return KindJob
}

func (j *Job) Owner() (uuid.UUID, bool) {
	return j.RecruiterID, true
}

// AcceptsApplications reports whether candidates may currently apply.
func (j *Job) AcceptsApplications() bool {
	return j.Status == JobStatusOpen && j.IsActive && !j.IsDeleted
}
