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

type ApplicationService interface {
	LifecycleService[*entity.Application]
	Apply(ctx context.Context, actor *entity.Actor, req *contract.CreateApplicationRequest) (*entity.Application, error)
	UpdateApplication(ctx context.Context, actor *entity.Actor, id uuid.UUID, req *contract.UpdateApplicationRequest) (*entity.Application, error)
}

type DefaultApplicationRoute struct {
	*lifecycleRoute[*entity.Application, *contract.ApplicationResponse]
	ApplicationService ApplicationService
}

func NewApplicationDefault(applicationService ApplicationService) *DefaultApplicationRoute {
	return &DefaultApplicationRoute{
		lifecycleRoute: &lifecycleRoute[*entity.Application, *contract.ApplicationResponse]{
			service: applicationService,
			render:  toApplicationResponse,
			filters: []string{"job_id", "status"},
		},
		ApplicationService: applicationService,
	}
}

func (r *DefaultApplicationRoute) CreateApplication(c echo.Context) error {
	actor, cerr := utils.RequireActor(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateApplicationRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}

	row, err := r.ApplicationService.Apply(c.Request().Context(), actor, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, toApplicationResponse(actor, row))
}

func (r *DefaultApplicationRoute) UpdateApplication(c echo.Context) error {
	actor, cerr := utils.RequireActor(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := r.parseID(c, actor)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.UpdateApplicationRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}

	row, err := r.ApplicationService.UpdateApplication(c.Request().Context(), actor, id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, toApplicationResponse(actor, row))
}
