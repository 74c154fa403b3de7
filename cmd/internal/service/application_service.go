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

type ApplicationRepository interface {
	Repository[*entity.Application]
	ExistsLive(ctx context.Context, candidateID, jobID uuid.UUID) (bool, error)
}

type ApplicationService struct {
	*EntityService[entity.Application, *entity.Application]
	ApplicationRepo ApplicationRepository
	JobRepo         Repository[*entity.Job]
	Validate        *validator.Validate
}

func NewApplicationService(
	applicationRepo ApplicationRepository,
	jobRepo Repository[*entity.Job],
	access *policy.AccessPolicy,
	validate *validator.Validate,
) *ApplicationService {
	a := &ApplicationService{
		EntityService:   NewEntityService[entity.Application, *entity.Application](applicationRepo, access),
		ApplicationRepo: applicationRepo,
		JobRepo:         jobRepo,
		Validate:        validate,
	}
	a.beforeRestore = a.checkSlot
	return a
}

// checkSlot refuses to revive an application once the candidate has
// applied to the same job again.
func (a *ApplicationService) checkSlot(ctx context.Context, application *entity.Application) error {
	dup, err := a.ApplicationRepo.ExistsLive(ctx, application.CandidateID, application.JobID)
	if err != nil {
		return err
	}

	if dup {
		return fmt.Errorf("%w: already applied to job %s", failure.ErrExists, application.JobID)
	}
	return nil
}

// Apply files an application of the actor to an open job.
// A candidate holds at most one live application per job.
func (a *ApplicationService) Apply(ctx context.Context, actor *entity.Actor, req *contract.CreateApplicationRequest) (*entity.Application, error) {
	utils.Sanitize(req)
	if err := a.Validate.Struct(req); err != nil {
		return nil, invalid(err)
	}

	jobID, err := parseID("job_id", req.JobID)
	if err != nil {
		return nil, err
	}

	if !a.Access.CanCreate(actor, entity.KindApplication).Allowed() {
		observeDecision(entity.KindApplication, policy.ActionCreate, policy.Deny)
		return nil, denied(policy.ActionCreate, entity.KindApplication)
	}

	job, err := a.JobRepo.FindByID(ctx, jobID, entity.DefaultView)
	if err != nil {
		return nil, err
	}

	if job == nil {
		return nil, fmt.Errorf("%w: job %s", failure.ErrNotFound, jobID)
	}

	if !job.AcceptsApplications() {
		return nil, invalidf("job %s is not accepting applications", jobID)
	}

	dup, err := a.ApplicationRepo.ExistsLive(ctx, actor.ID, jobID)
	if err != nil {
		return nil, err
	}

	if dup {
		return nil, fmt.Errorf("%w: already applied to job %s", failure.ErrExists, jobID)
	}

	application := &entity.Application{
		JobID:       jobID,
		CandidateID: actor.ID,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
		Status:      entity.ApplicationSubmitted,
	}

	if err := a.Create(ctx, actor, application); err != nil {
		return nil, err
	}
	return application, nil
}

func (a *ApplicationService) UpdateApplication(ctx context.Context, actor *entity.Actor, id uuid.UUID, req *contract.UpdateApplicationRequest) (*entity.Application, error) {
	utils.Sanitize(req)
	if err := a.Validate.Struct(req); err != nil {
		return nil, invalid(err)
	}

	return a.Update(ctx, actor, id, func(application *entity.Application) (bool, error) {
		var c changeSet
		setField(&c, req.CoverLetter, &application.CoverLetter)
		setField(&c, req.ResumeURL, &application.ResumeURL)
		setConverted(&c, req.Status, &application.Status)
		return c.result()
	})
}
