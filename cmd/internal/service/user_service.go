package service

import (
	"context"
	"fmt"
	"jobboard/cmd/internal/contract"
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/domain/failure"
	"jobboard/cmd/internal/domain/policy"
	"jobboard/cmd/internal/utils"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type UserRepository interface {
	Repository[*entity.User]
	FindByEmail(ctx context.Context, email string, view entity.View) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type UserService struct {
	*EntityService[entity.User, *entity.User]
	UserRepo   UserRepository
	Validate   *validator.Validate
	UserPolicy *policy.UserPolicy
}

func NewUserService(userRepo UserRepository, access *policy.AccessPolicy, validate *validator.Validate) *UserService {
	return &UserService{
		EntityService: NewEntityService[entity.User, *entity.User](userRepo, access),
		UserRepo:      userRepo,
		Validate:      validate,
		UserPolicy:    policy.NewUserPolicy(access),
	}
}

// Register creates an account. Candidate and recruiter accounts are open
// to anyone, emails are unique case insensitively.
func (u *UserService) Register(ctx context.Context, actor *entity.Actor, req *contract.CreateUserRequest) (*entity.User, error) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, invalid(err)
	}

	role, err := entity.ParseRole(req.Role)
	if err != nil {
		return nil, invalid(err)
	}

	if err := u.UserPolicy.CanRegister(actor, role); err != nil {
		observeDecision(entity.KindUser, policy.ActionCreate, policy.Deny)
		observeOperation(entity.KindUser, "create", err)
		return nil, err
	}
	observeDecision(entity.KindUser, policy.ActionCreate, policy.Allow)

	email := strings.ToLower(req.Email)
	found, err := u.UserRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if found {
		return nil, fmt.Errorf("%w: email %s is taken", failure.ErrExists, email)
	}

	user := &entity.User{
		Email:     email,
		Username:  req.Username,
		Role:      role,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Bio:       req.Bio,
		Location:  req.Location,
	}

	if err := u.insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserService) UpdateUser(ctx context.Context, actor *entity.Actor, id uuid.UUID, req *contract.UpdateUserRequest) (*entity.User, error) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, invalid(err)
	}

	return u.Update(ctx, actor, id, func(target *entity.User) (bool, error) {
		updater := &userUpdater{
			actor:  actor,
			target: target,
			policy: u.UserPolicy,
		}

		updater.setProfileString(req.Username, &target.Username)
		updater.setProfileString(req.FirstName, &target.FirstName)
		updater.setProfileString(req.LastName, &target.LastName)
		updater.setProfileString(req.Phone, &target.Phone)
		updater.setProfileString(req.Bio, &target.Bio)
		updater.setProfileString(req.Location, &target.Location)
		setField(&updater.changeSet, req.IsActive, &target.IsActive)
		updater.setRole(req.Role)
		updater.setVerified(req.IsVerified)

		return updater.result()
	})
}
