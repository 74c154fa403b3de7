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

type JobService interface {
	LifecycleService[*entity.Job]
	PostJob(ctx context.Context, actor *entity.Actor, req *contract.CreateJobRequest) (*entity.Job, error)
	UpdateJob(ctx context.Context, actor *entity.Actor, id uuid.UUID, req *contract.UpdateJobRequest) (*entity.Job, error)
}

type DefaultJobRoute struct {
	*lifecycleRoute[*entity.Job, *contract.JobResponse]
	JobService JobService
}

func NewJobDefault(jobService JobService) *DefaultJobRoute {
	return &DefaultJobRoute{
		lifecycleRoute: &lifecycleRoute[*entity.Job, *contract.JobResponse]{
			service: jobService,
			render:  toJobResponse,
			filters: []string{"status", "employment_type", "recruiter_id", "company_name", "location"},
		},
		JobService: jobService,
	}
}

func (r *DefaultJobRoute) CreateJob(c echo.Context) error {
	actor, cerr := utils.RequireActor(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}

	row, err := r.JobService.PostJob(c.Request().Context(), actor, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, toJobResponse(actor, row))
}

func (r *DefaultJobRoute) UpdateJob(c echo.Context) error {
	actor, cerr := utils.RequireActor(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := r.parseID(c, actor)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.UpdateJobRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}

	row, err := r.JobService.UpdateJob(c.Request().Context(), actor, id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, toJobResponse(actor, row))
}
