package repository

import (
	"jobboard/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultJobRepository struct {
	*Store[entity.Job, *entity.Job]
}

func NewJobRepository(db *gorm.DB) *DefaultJobRepository {
	return &DefaultJobRepository{Store: NewStore[entity.Job, *entity.Job](db, "recruiter_id")}
}
