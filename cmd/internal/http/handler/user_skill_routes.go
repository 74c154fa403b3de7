package handler

import (
	"context"
	"jobboard/cmd/internal/contract"
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/utils"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type UserSkillService interface {
	LifecycleService[*entity.UserSkill]
	AddSkill(ctx context.Context, actor *entity.Actor, req *contract.CreateUserSkillRequest) (*entity.UserSkill, error)
	UpdateUserSkill(ctx context.Context, actor *entity.Actor, id uuid.UUID, req *contract.UpdateUserSkillRequest) (*entity.UserSkill, error)
}

type DefaultUserSkillRoute struct {
	*lifecycleRoute[*entity.UserSkill, *contract.UserSkillResponse]
	UserSkillService UserSkillService
}

func NewUserSkillDefault(userSkillService UserSkillService) *DefaultUserSkillRoute {
	return &DefaultUserSkillRoute{
		lifecycleRoute: &lifecycleRoute[*entity.UserSkill, *contract.UserSkillResponse]{
			service: userSkillService,
			render:  toUserSkillResponse,
			filters: []string{"user_id", "skill_id", "proficiency"},
		},
		UserSkillService: userSkillService,
	}
}

func (r *DefaultUserSkillRoute) CreateUserSkill(c echo.Context) error {
	actor, cerr := utils.RequireActor(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateUserSkillRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}

	row, err := r.UserSkillService.AddSkill(c.Request().Context(), actor, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, toUserSkillResponse(actor, row))
}

func (r *DefaultUserSkillRoute) UpdateUserSkill(c echo.Context) error {
	actor, cerr := utils.RequireActor(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := r.parseID(c, actor)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.UpdateUserSkillRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}

	row, err := r.UserSkillService.UpdateUserSkill(c.Request().Context(), actor, id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, toUserSkillResponse(actor, row))
}
