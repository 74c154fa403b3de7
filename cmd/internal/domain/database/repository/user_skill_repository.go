package repository

import (
	"context"
	"jobboard/cmd/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultUserSkillRepository struct {
	*Store[entity.UserSkill, *entity.UserSkill]
}

func NewUserSkillRepository(db *gorm.DB) *DefaultUserSkillRepository {
	return &DefaultUserSkillRepository{Store: NewStore[entity.UserSkill, *entity.UserSkill](db, "user_id")}
}

func (r *DefaultUserSkillRepository) ExistsLive(ctx context.Context, userID, skillID uuid.UUID) (bool, error) {
	return r.Exists(ctx, map[string]any{"user_id": userID, "skill_id": skillID}, entity.DefaultView)
}
