package service

import (
	"context"
	"fmt"
	"jobboard/cmd/internal/contract"
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/domain/failure"
	"jobboard/cmd/internal/domain/policy"
	"jobboard/cmd/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type SkillRepository interface {
	Repository[*entity.Skill]
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// SkillService maintains the global skill catalog.
type SkillService struct {
	*EntityService[entity.Skill, *entity.Skill]
	SkillRepo SkillRepository
	Validate  *validator.Validate
}

func NewSkillService(skillRepo SkillRepository, access *policy.AccessPolicy, validate *validator.Validate) *SkillService {
	return &SkillService{
		EntityService: NewEntityService[entity.Skill, *entity.Skill](skillRepo, access),
		SkillRepo:     skillRepo,
		Validate:      validate,
	}
}

func (s *SkillService) CreateSkill(ctx context.Context, actor *entity.Actor, req *contract.CreateSkillRequest) (*entity.Skill, error) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, invalid(err)
	}

	skill := &entity.Skill{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
	}

	if err := s.Create(ctx, actor, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *SkillService) UpdateSkill(ctx context.Context, actor *entity.Actor, id uuid.UUID, req *contract.UpdateSkillRequest) (*entity.Skill, error) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, invalid(err)
	}

	return s.Update(ctx, actor, id, func(skill *entity.Skill) (bool, error) {
		if req.Name != nil && *req.Name != skill.Name {
			taken, err := s.SkillRepo.ExistsByName(ctx, *req.Name)
			if err != nil {
				return false, err
			}

			if taken {
				return false, fmt.Errorf("%w: skill %q", failure.ErrExists, *req.Name)
			}
		}

		var c changeSet
		setField(&c, req.Name, &skill.Name)
		setField(&c, req.Category, &skill.Category)
		setField(&c, req.Description, &skill.Description)
		setField(&c, req.IsActive, &skill.IsActive)
		return c.result()
	})
}
