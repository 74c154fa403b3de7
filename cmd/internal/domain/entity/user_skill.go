package entity

import "github.com/google/uuid"

type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// UserSkill attaches a catalog skill to a user's profile.
type UserSkill struct {
	Record
	UserID            uuid.UUID   `gorm:"type:uuid;not null;index"`
	SkillID           uuid.UUID   `gorm:"type:uuid;not null;index"`
	Proficiency       Proficiency `gorm:"not null;type:varchar(16)"`
	YearsOfExperience int         `gorm:"not null"`
}

func (u *UserSkill) Kind() Kind {
	return KindUserSkill
}

func (u *UserSkill) Owner() (uuid.UUID, bool) {
	return u.UserID, true
}
