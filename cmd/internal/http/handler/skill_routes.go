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

type SkillService interface {
	LifecycleService[*entity.Skill]
	CreateSkill(ctx context.Context, actor *entity.Actor, req *contract.CreateSkillRequest) (*entity.Skill, error)
	UpdateSkill(ctx context.Context, actor *entity.Actor, id uuid.UUID, req *contract.UpdateSkillRequest) (*entity.Skill, error)
}

type DefaultSkillRoute struct {
	*lifecycleRoute[*entity.Skill, *contract.SkillResponse]
	SkillService SkillService
}

func NewSkillDefault(skillService SkillService) *DefaultSkillRoute {
	return &DefaultSkillRoute{
		lifecycleRoute: &lifecycleRoute[*entity.Skill, *contract.SkillResponse]{
			service: skillService,
			render:  toSkillResponse,
			filters: []string{"category", "name"},
		},
		SkillService: skillService,
	}
}

func (r *DefaultSkillRoute) CreateSkill(c echo.Context) error {
	actor, cerr := utils.RequireActor(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateSkillRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}

	row, err := r.SkillService.CreateSkill(c.Request().Context(), actor, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, toSkillResponse(actor, row))
}

func (r *DefaultSkillRoute) UpdateSkill(c echo.Context) error {
	actor, cerr := utils.RequireActor(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := r.parseID(c, actor)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.UpdateSkillRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}

	row, err := r.SkillService.UpdateSkill(c.Request().Context(), actor, id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, toSkillResponse(actor, row))
}
