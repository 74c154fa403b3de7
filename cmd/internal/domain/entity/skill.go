package entity

import "github.com/google/uuid"

// Skill is an entry of the global skill catalog. It has no owner,
// mutations are reserved to administrators.
type Skill struct {
	Record
	Name        string `gorm:"not null;uniqueIndex"`
	Category    string `gorm:"not null;index"`
	Description string `gorm:"not null"`
}

func (s *Skill) Kind() Kind {
	return KindSkill
}

func (s *Skill) Owner() (uuid.UUID, bool) {
	return uuid.Nil, false
}
