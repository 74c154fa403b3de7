package repository

import (
	"context"
	"jobboard/cmd/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultApplicationRepository struct {
	*Store[entity.Application, *entity.Application]
}

func NewApplicationRepository(db *gorm.DB) *DefaultApplicationRepository {
	return &DefaultApplicationRepository{Store: NewStore[entity.Application, *entity.Application](db, "candidate_id")}
}

func (r *DefaultApplicationRepository) ExistsLive(ctx context.Context, candidateID, jobID uuid.UUID) (bool, error) {
	return r.Exists(ctx, map[string]any{"candidate_id": candidateID, "job_id": jobID}, entity.DefaultView)
}
