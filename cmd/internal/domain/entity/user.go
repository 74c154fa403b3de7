package entity

import "github.com/google/uuid"

// User is the general basic structure of all users across the platform.
// A user owns itself: the profile is the user's own record.
type User struct {
	Record
	Email      string `gorm:"not null;uniqueIndex"`
	Username   string `gorm:"not null"`
	Role       Role   `gorm:"not null;type:varchar(16);index"`
	IsVerified bool   `gorm:"not null"`
	FirstName  string `gorm:"not null"`
	LastName   string `gorm:"not null"`
	Phone      string `gorm:"not null"`
	Bio        string `gorm:"not null;type:text"`
	Location   string `gorm:"not null"`
}

func (u *User) Kind() Kind {
	return KindUser
}

func (u *User) Owner() (uuid.UUID, bool) {
	return u.ID, true
}
