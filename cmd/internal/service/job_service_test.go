package service_test

import (
	"jobboard/cmd/internal/contract"
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/domain/failure"
	"jobboard/cmd/internal/service"
)

func (s *ServiceTestSuite) TestPostJob() {
	job, err := s.jobs.PostJob(s.ctx, s.recruiter, &contract.CreateJobRequest{
		Title:          " Backend developer ",
		Description:    "Build and run the APIs",
		CompanyName:    "Acme",
		EmploymentType: "part_time",
		SalaryMin:      ptr(1000),
		SalaryMax:      ptr(2000),
		Tags:           []string{"go", " postgres "},
	})
	s.Require().NoError(err)
	s.Require().Equal("Backend developer", job.Title)
	s.Require().Equal(s.recruiter.ID, job.RecruiterID)
	s.Require().Equal(entity.JobStatusOpen, job.Status)
	s.Require().Equal([]string{"go", "postgres"}, service.SplitTags(job.Tags))
	s.Require().True(job.AcceptsApplications())

	draft, err := s.jobs.PostJob(s.ctx, s.recruiter, &contract.CreateJobRequest{
		Title:          "Draft role",
		Description:    "Not published yet",
		CompanyName:    "Acme",
		EmploymentType: "internship",
		Status:         "draft",
	})
	s.Require().NoError(err)
	s.Require().Equal(entity.JobStatusDraft, draft.Status)
}

func (s *ServiceTestSuite) TestPostJobRequiresRecruiter() {
	_, err := s.jobs.PostJob(s.ctx, s.alice, &contract.CreateJobRequest{
		Title:          "Fake job",
		Description:    "Candidates cannot post",
		CompanyName:    "Acme",
		EmploymentType: "contract",
	})
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)
}

func (s *ServiceTestSuite) TestSalaryRange() {
	_, err := s.jobs.PostJob(s.ctx, s.recruiter, &contract.CreateJobRequest{
		Title:          "Backwards pay",
		Description:    "Max below min",
		CompanyName:    "Acme",
		EmploymentType: "full_time",
		SalaryMin:      ptr(5000),
		SalaryMax:      ptr(100),
	})
	s.Require().ErrorIs(err, failure.ErrInvalid)

	job := s.postJob(s.recruiter)
	_, err = s.jobs.UpdateJob(s.ctx, s.recruiter, job.ID, &contract.UpdateJobRequest{SalaryMin: ptr(3000)})
	s.Require().NoError(err)

	_, err = s.jobs.UpdateJob(s.ctx, s.recruiter, job.ID, &contract.UpdateJobRequest{SalaryMax: ptr(2000)})
	s.Require().ErrorIs(err, failure.ErrInvalid)

	found, err := s.jobs.Get(s.ctx, s.recruiter, job.ID, entity.DefaultView)
	s.Require().NoError(err)
	s.Require().Nil(found.SalaryMax)
	s.Require().Equal(3000, *found.SalaryMin)
}

func (s *ServiceTestSuite) TestUpdateJobTags() {
	job := s.postJob(s.recruiter)

	updated, err := s.jobs.UpdateJob(s.ctx, s.recruiter, job.ID, &contract.UpdateJobRequest{
		Tags: []string{"rust"},
	})
	s.Require().NoError(err)
	s.Require().Equal("rust", updated.Tags)

	_, err = s.jobs.UpdateJob(s.ctx, s.recruiter, job.ID, &contract.UpdateJobRequest{
		Tags: []string{"go", "go"},
	})
	s.Require().ErrorIs(err, failure.ErrInvalid)
}

func (s *ServiceTestSuite) TestListJobsFilters() {
	open := s.postJob(s.recruiter)
	closed := s.postJob(s.recruiter)

	_, err := s.jobs.UpdateJob(s.ctx, s.recruiter, closed.ID, &contract.UpdateJobRequest{
		Status: ptr("closed"),
	})
	s.Require().NoError(err)

	page, err := s.jobs.List(s.ctx, nil, entity.Query{
		Where: map[string]any{"status": "open"},
	})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
	s.Require().Equal(open.ID, page.Items[0].ID)
}
