package entity

import (
	"time"

	"github.com/google/uuid"
)

// Record holds the identity, audit timestamps and lifecycle flags shared
// by every persisted entity. It is embedded, never stored on its own.
//
// DeletedAt is non-nil if and only if IsDeleted is true.
type Record struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time  `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt time.Time  `gorm:"not null;autoUpdateTime:false"`
	IsActive  bool       `gorm:"not null"`
	IsDeleted bool       `gorm:"not null;index"`
	DeletedAt *time.Time `gorm:"index"`

	// Version backs optimistic locking, every successful update bumps it.
	Version int64 `gorm:"not null"`
}

// NewRecord returns an active, live record with a fresh random identifier.
func NewRecord(now time.Time) Record {
	return Record{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		IsActive:  true,
		Version:   1,
	}
}

// GetRecord lets embedding structs satisfy Entity.
func (r *Record) GetRecord() *Record {
	return r
}

// Touch re-stamps the update timestamp.
func (r *Record) Touch(now time.Time) {
	r.UpdatedAt = now
}

// MarkDeleted soft deletes the record. Deleting an already deleted
// record keeps its original deletion time and only re-stamps UpdatedAt.
func (r *Record) MarkDeleted(now time.Time) {
	if !r.IsDeleted {
		deletedAt := now
		r.IsDeleted = true
		r.DeletedAt = &deletedAt
	}
	r.Touch(now)
}

// Restore is the inverse of MarkDeleted and is idempotent the same way.
func (r *Record) Restore(now time.Time) {
	r.IsDeleted = false
	r.DeletedAt = nil
	r.Touch(now)
}

// Consistent reports whether the deletion flag and timestamp agree.
func (r *Record) Consistent() bool {
	return r.IsDeleted == (r.DeletedAt != nil)
}
