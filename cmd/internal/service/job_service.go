package service

import (
	"context"
	"jobboard/cmd/internal/contract"
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/domain/policy"
	"jobboard/cmd/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type JobService struct {
	*EntityService[entity.Job, *entity.Job]
	Validate *validator.Validate
}

func NewJobService(jobRepo Repository[*entity.Job], access *policy.AccessPolicy, validate *validator.Validate) *JobService {
	return &JobService{
		EntityService: NewEntityService[entity.Job, *entity.Job](jobRepo, access),
		Validate:      validate,
	}
}

// PostJob publishes a job owned by the actor. Jobs without an explicit
// status are open right away.
func (j *JobService) PostJob(ctx context.Context, actor *entity.Actor, req *contract.CreateJobRequest) (*entity.Job, error) {
	utils.Sanitize(req)
	if err := j.Validate.Struct(req); err != nil {
		return nil, invalid(err)
	}

	status := entity.JobStatus(req.Status)
	if status == "" {
		status = entity.JobStatusOpen
	}

	job := &entity.Job{
		Title:           req.Title,
		Description:     req.Description,
		CompanyName:     req.CompanyName,
		Location:        req.Location,
		EmploymentType:  entity.EmploymentType(req.EmploymentType),
		ExperienceLevel: req.ExperienceLevel,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		IsRemote:        req.IsRemote,
		Tags:            joinTags(req.Tags),
		Status:          status,
	}

	if err := checkSalary(job); err != nil {
		return nil, err
	}

	if actor.Authenticated() {
		job.RecruiterID = actor.ID
	}

	if err := j.Create(ctx, actor, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (j *JobService) UpdateJob(ctx context.Context, actor *entity.Actor, id uuid.UUID, req *contract.UpdateJobRequest) (*entity.Job, error) {
	utils.Sanitize(req)
	if err := j.Validate.Struct(req); err != nil {
		return nil, invalid(err)
	}

	return j.Update(ctx, actor, id, func(job *entity.Job) (bool, error) {
		var c changeSet
		setField(&c, req.Title, &job.Title)
		setField(&c, req.Description, &job.Description)
		setField(&c, req.CompanyName, &job.CompanyName)
		setField(&c, req.Location, &job.Location)
		setConverted(&c, req.EmploymentType, &job.EmploymentType)
		setField(&c, req.ExperienceLevel, &job.ExperienceLevel)
		setOptional(&c, req.SalaryMin, &job.SalaryMin)
		setOptional(&c, req.SalaryMax, &job.SalaryMax)
		setField(&c, req.IsRemote, &job.IsRemote)
		setConverted(&c, req.Status, &job.Status)
		setField(&c, req.IsActive, &job.IsActive)

		if req.Tags != nil {
			tags := joinTags(req.Tags)
			setField(&c, &tags, &job.Tags)
		}

		if c.err == nil {
			c.err = checkSalary(job)
		}
		return c.result()
	})
}

func checkSalary(job *entity.Job) error {
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMax < *job.SalaryMin {
		return invalidf("salary_max must not be lower than salary_min")
	}
	return nil
}
