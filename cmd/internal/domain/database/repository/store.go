package repository

import (
	"context"
	"errors"
	"fmt"
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/domain/failure"
	"regexp"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// uniqueViolation matches the SQLite and PostgreSQL flavours of a unique
// constraint failure.
var uniqueViolation = regexp.MustCompile(`UNIQUE constraint failed|SQLSTATE 23505|duplicate key value`)

// Store is the gorm-backed persistence for one entity type.
// T is the struct, P its pointer which implements entity.Entity.
type Store[T any, P entity.Model[T]] struct {
	db          *gorm.DB
	ownerColumn string
}

// NewStore builds a store, ownerColumn is empty for ownerless entities.
func NewStore[T any, P entity.Model[T]](db *gorm.DB, ownerColumn string) *Store[T, P] {
	return &Store[T, P]{db: db, ownerColumn: ownerColumn}
}

func (s *Store[T, P]) Create(ctx context.Context, row P) error {
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return translate("create", err)
	}
	return nil
}

// FindByID returns nil without error when no row matches in the view.
func (s *Store[T, P]) FindByID(ctx context.Context, id uuid.UUID, view entity.View) (P, error) {
	var row T
	err := Visible(s.db.WithContext(ctx), view).
		Where("id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, translate("find", err)
	}
	return P(&row), nil
}

// Find returns one page of rows matching q, newest first, plus the total count.
func (s *Store[T, P]) Find(ctx context.Context, q entity.Query) ([]P, int64, error) {
	q = q.Normalize()
	tx := Visible(s.db.WithContext(ctx).Model(new(T)), q.View)

	if q.OwnerID != nil {
		if s.ownerColumn == "" {
			return nil, 0, fmt.Errorf("%w: %T has no owner column", failure.ErrInvalid, new(T))
		}
		tx = tx.Where(s.ownerColumn+" = ?", *q.OwnerID)
	}

	if len(q.Where) > 0 {
		tx = tx.Where(q.Where)
	}

	// A new session lets the same conditions back both statements.
	base := tx.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, translate("count", err)
	}

	var rows []T
	err := base.
		Order("created_at DESC").
		Order("id").
		Limit(q.PerPage).
		Offset(q.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, translate("list", err)
	}

	items := make([]P, len(rows))
	for i := range rows {
		items[i] = P(&rows[i])
	}
	return items, total, nil
}

// Exists asserts whether any row matches where in the view.
func (s *Store[T, P]) Exists(ctx context.Context, where map[string]any, view entity.View) (bool, error) {
	var count int64
	err := Visible(s.db.WithContext(ctx).Model(new(T)), view).
		Where(where).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, translate("exists", err)
	}
	return count > 0, nil
}

// Update writes every column of row in a single statement, guarded by the
// version row was loaded with. A concurrent writer that got there first
// makes Update fail with failure.ErrConflict and leaves row untouched.
func (s *Store[T, P]) Update(ctx context.Context, row P) error {
	rec := row.GetRecord()
	prev := rec.Version
	rec.Version = prev + 1

	res := s.db.WithContext(ctx).
		Where("version = ?", prev).
		Select("*").
		Omit("ID", "CreatedAt").
		Updates(row)

	if res.Error != nil {
		rec.Version = prev
		return translate("update", res.Error)
	}

	if res.RowsAffected == 0 {
		rec.Version = prev
		return fmt.Errorf("%w: %s %s changed since it was read", failure.ErrConflict, row.Kind(), rec.ID)
	}
	return nil
}

func translate(op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || uniqueViolation.MatchString(err.Error()) {
		return fmt.Errorf("%w: %w", failure.ErrExists, err)
	}
	return failure.Storage(op, err)
}
