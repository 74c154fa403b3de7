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

type UserSkillRepository interface {
	Repository[*entity.UserSkill]
	ExistsLive(ctx context.Context, userID, skillID uuid.UUID) (bool, error)
}

// UserSkillService attaches catalog skills to the actor's own profile.
type UserSkillService struct {
	*EntityService[entity.UserSkill, *entity.UserSkill]
	UserSkillRepo UserSkillRepository
	SkillRepo     Repository[*entity.Skill]
	Validate      *validator.Validate
}

func NewUserSkillService(
	userSkillRepo UserSkillRepository,
	skillRepo Repository[*entity.Skill],
	access *policy.AccessPolicy,
	validate *validator.Validate,
) *UserSkillService {
	u := &UserSkillService{
		EntityService: NewEntityService[entity.UserSkill, *entity.UserSkill](userSkillRepo, access),
		UserSkillRepo: userSkillRepo,
		SkillRepo:     skillRepo,
		Validate:      validate,
	}
	u.beforeRestore = u.checkSlot
	return u
}

// checkSlot refuses to revive a profile skill that was added again meanwhile.
func (u *UserSkillService) checkSlot(ctx context.Context, row *entity.UserSkill) error {
	dup, err := u.UserSkillRepo.ExistsLive(ctx, row.UserID, row.SkillID)
	if err != nil {
		return err
	}

	if dup {
		return fmt.Errorf("%w: skill %s is already on the profile", failure.ErrExists, row.SkillID)
	}
	return nil
}

func (u *UserSkillService) AddSkill(ctx context.Context, actor *entity.Actor, req *contract.CreateUserSkillRequest) (*entity.UserSkill, error) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, invalid(err)
	}

	skillID, err := parseID("skill_id", req.SkillID)
	if err != nil {
		return nil, err
	}

	// Authorization comes first, anonymous callers learn nothing about skills.
	if !u.Access.CanCreate(actor, entity.KindUserSkill).Allowed() {
		observeDecision(entity.KindUserSkill, policy.ActionCreate, policy.Deny)
		return nil, denied(policy.ActionCreate, entity.KindUserSkill)
	}

	skill, err := u.SkillRepo.FindByID(ctx, skillID, entity.DefaultView)
	if err != nil {
		return nil, err
	}

	if skill == nil {
		return nil, fmt.Errorf("%w: skill %s", failure.ErrNotFound, skillID)
	}

	if !skill.IsActive {
		return nil, invalidf("skill %s is not active", skill.Name)
	}

	dup, err := u.UserSkillRepo.ExistsLive(ctx, actor.ID, skillID)
	if err != nil {
		return nil, err
	}

	if dup {
		return nil, fmt.Errorf("%w: skill %s is already on the profile", failure.ErrExists, skill.Name)
	}

	row := &entity.UserSkill{
		UserID:            actor.ID,
		SkillID:           skillID,
		Proficiency:       entity.Proficiency(req.Proficiency),
		YearsOfExperience: req.YearsOfExperience,
	}

	if err := u.Create(ctx, actor, row); err != nil {
		return nil, err
	}
	return row, nil
}

func (u *UserSkillService) UpdateUserSkill(ctx context.Context, actor *entity.Actor, id uuid.UUID, req *contract.UpdateUserSkillRequest) (*entity.UserSkill, error) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, invalid(err)
	}

	return u.Update(ctx, actor, id, func(row *entity.UserSkill) (bool, error) {
		var c changeSet
		setConverted(&c, req.Proficiency, &row.Proficiency)
		setField(&c, req.YearsOfExperience, &row.YearsOfExperience)
		setField(&c, req.IsActive, &row.IsActive)
		return c.result()
	})
}
