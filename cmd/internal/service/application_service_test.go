package service_test

import (
	"jobboard/cmd/internal/contract"
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/domain/failure"

	"github.com/google/uuid"
)

func (s *ServiceTestSuite) TestApply() {
	job := s.postJob(s.recruiter)
	application := s.apply(s.alice, job)

	s.Require().Equal(job.ID, application.JobID)
	s.Require().Equal(s.alice.ID, application.CandidateID)
	s.Require().Equal(entity.ApplicationSubmitted, application.Status)
}

func (s *ServiceTestSuite) TestApplyTwice() {
	job := s.postJob(s.recruiter)
	first := s.apply(s.alice, job)

	_, err := s.applications.Apply(s.ctx, s.alice, &contract.CreateApplicationRequest{JobID: job.ID.String()})
	s.Require().ErrorIs(err, failure.ErrExists)

	// A withdrawn and deleted application frees the slot
	_, err = s.applications.SoftDelete(s.ctx, s.alice, first.ID)
	s.Require().NoError(err)

	second, err := s.applications.Apply(s.ctx, s.alice, &contract.CreateApplicationRequest{JobID: job.ID.String()})
	s.Require().NoError(err)
	s.Require().NotEqual(first.ID, second.ID)
}

func (s *ServiceTestSuite) TestApplyToClosedJob() {
	job := s.postJob(s.recruiter)
	_, err := s.jobs.UpdateJob(s.ctx, s.recruiter, job.ID, &contract.UpdateJobRequest{
		Status: ptr("closed"),
	})
	s.Require().NoError(err)

	_, err = s.applications.Apply(s.ctx, s.alice, &contract.CreateApplicationRequest{JobID: job.ID.String()})
	s.Require().ErrorIs(err, failure.ErrInvalid)
}

func (s *ServiceTestSuite) TestApplyToMissingJob() {
	_, err := s.applications.Apply(s.ctx, s.alice, &contract.CreateApplicationRequest{JobID: uuid.NewString()})
	s.Require().ErrorIs(err, failure.ErrNotFound)

	job := s.postJob(s.recruiter)
	_, err = s.jobs.SoftDelete(s.ctx, s.recruiter, job.ID)
	s.Require().NoError(err)

	_, err = s.applications.Apply(s.ctx, s.alice, &contract.CreateApplicationRequest{JobID: job.ID.String()})
	s.Require().ErrorIs(err, failure.ErrNotFound)
}

func (s *ServiceTestSuite) TestApplyRequiresCandidate() {
	job := s.postJob(s.recruiter)

	_, err := s.applications.Apply(s.ctx, s.recruiter, &contract.CreateApplicationRequest{JobID: job.ID.String()})
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	_, err = s.applications.Apply(s.ctx, nil, &contract.CreateApplicationRequest{JobID: job.ID.String()})
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	_, err = s.applications.Apply(s.ctx, s.alice, &contract.CreateApplicationRequest{JobID: "not-a-uuid"})
	s.Require().ErrorIs(err, failure.ErrInvalid)
}

func (s *ServiceTestSuite) TestWithdrawApplication() {
	job := s.postJob(s.recruiter)
	application := s.apply(s.alice, job)

	updated, err := s.applications.UpdateApplication(s.ctx, s.alice, application.ID, &contract.UpdateApplicationRequest{
		Status: ptr("withdrawn"),
	})
	s.Require().NoError(err)
	s.Require().Equal(entity.ApplicationWithdrawn, updated.Status)

	// The recruiter does not own the application
	_, err = s.applications.Get(s.ctx, s.recruiter, application.ID, entity.DefaultView)
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)
}

func (s *ServiceTestSuite) TestRestoreKeepsOneLiveApplication() {
	job := s.postJob(s.recruiter)
	first := s.apply(s.alice, job)

	_, err := s.applications.SoftDelete(s.ctx, s.alice, first.ID)
	s.Require().NoError(err)
	second := s.apply(s.alice, job)

	_, err = s.applications.Restore(s.ctx, s.alice, first.ID)
	s.Require().ErrorIs(err, failure.ErrExists)

	_, err = s.applications.Restore(s.ctx, s.admin, first.ID)
	s.Require().ErrorIs(err, failure.ErrExists)

	page, err := s.applications.List(s.ctx, s.alice, entity.Query{})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
	s.Require().Equal(second.ID, page.Items[0].ID)

	// Once the slot is free again the old application can come back
	_, err = s.applications.SoftDelete(s.ctx, s.alice, second.ID)
	s.Require().NoError(err)

	restored, err := s.applications.Restore(s.ctx, s.alice, first.ID)
	s.Require().NoError(err)
	s.Require().False(restored.IsDeleted)

	// Restoring a live record is not a second copy of itself
	_, err = s.applications.Restore(s.ctx, s.alice, first.ID)
	s.Require().NoError(err)
}
