package repository

import (
	"context"
	"jobboard/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultSkillRepository struct {
	*Store[entity.Skill, *entity.Skill]
}

func NewSkillRepository(db *gorm.DB) *DefaultSkillRepository {
	return &DefaultSkillRepository{Store: NewStore[entity.Skill, *entity.Skill](db, "")}
}

// ExistsByName includes deleted skills, the name index covers them.
func (s *DefaultSkillRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return s.Exists(ctx, map[string]any{"name": name}, entity.AllView)
}
