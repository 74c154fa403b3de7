package service_test

import (
	"jobboard/cmd/internal/contract"
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/domain/failure"

	"github.com/google/uuid"
)

func (s *ServiceTestSuite) TestNonOwnerUpdateNotAuthorized() {
	job := s.postJob(s.recruiter)
	application := s.apply(s.alice, job)

	_, err := s.applications.UpdateApplication(s.ctx, s.bob, application.ID, &contract.UpdateApplicationRequest{
		CoverLetter: ptr("Overwritten"),
	})
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	// Nothing was written
	found, err := s.applications.Get(s.ctx, s.alice, application.ID, entity.DefaultView)
	s.Require().NoError(err)
	s.Require().Equal("I would love to join", found.CoverLetter)
	s.Require().Equal(int64(1), found.Version)
}

func (s *ServiceTestSuite) TestOwnerUpdate() {
	job := s.postJob(s.recruiter)
	application := s.apply(s.alice, job)

	updated, err := s.applications.UpdateApplication(s.ctx, s.alice, application.ID, &contract.UpdateApplicationRequest{
		CoverLetter: ptr("  Updated letter  "),
	})
	s.Require().NoError(err)
	s.Require().Equal("Updated letter", updated.CoverLetter)
	s.Require().True(updated.UpdatedAt.After(application.UpdatedAt))
	s.Require().Equal(int64(2), updated.Version)

	// An empty patch writes nothing
	same, err := s.applications.UpdateApplication(s.ctx, s.alice, application.ID, &contract.UpdateApplicationRequest{})
	s.Require().NoError(err)
	s.Require().Equal(int64(2), same.Version)
}

func (s *ServiceTestSuite) TestSoftDeleteHidesFromDefaultView() {
	job := s.postJob(s.recruiter)
	application := s.apply(s.alice, job)

	deleted, err := s.applications.SoftDelete(s.ctx, s.alice, application.ID)
	s.Require().NoError(err)
	s.Require().True(deleted.IsDeleted)
	s.Require().NotNil(deleted.DeletedAt)

	_, err = s.applications.Get(s.ctx, s.alice, application.ID, entity.DefaultView)
	s.Require().ErrorIs(err, failure.ErrNotFound)

	found, err := s.applications.Get(s.ctx, s.alice, application.ID, entity.AllView)
	s.Require().NoError(err)
	s.Require().True(found.IsDeleted)
	s.Require().True(found.Consistent())

	page, err := s.applications.List(s.ctx, s.alice, entity.Query{})
	s.Require().NoError(err)
	s.Require().Empty(page.Items)

	// Deleted records cannot be patched
	_, err = s.applications.UpdateApplication(s.ctx, s.alice, application.ID, &contract.UpdateApplicationRequest{
		CoverLetter: ptr("Too late"),
	})
	s.Require().ErrorIs(err, failure.ErrNotFound)
}

func (s *ServiceTestSuite) TestSoftDeleteIsIdempotent() {
	job := s.postJob(s.recruiter)

	once, err := s.jobs.SoftDelete(s.ctx, s.recruiter, job.ID)
	s.Require().NoError(err)

	twice, err := s.jobs.SoftDelete(s.ctx, s.recruiter, job.ID)
	s.Require().NoError(err)

	s.Require().True(twice.IsDeleted)
	s.Require().True(twice.DeletedAt.Equal(*once.DeletedAt))
	s.Require().True(twice.UpdatedAt.After(once.UpdatedAt))
	s.Require().Equal(job.Title, twice.Title)
}

func (s *ServiceTestSuite) TestAdminRestore() {
	job := s.postJob(s.recruiter)
	application := s.apply(s.alice, job)

	_, err := s.applications.SoftDelete(s.ctx, s.alice, application.ID)
	s.Require().NoError(err)

	// Strangers can neither restore nor peek at the deleted record
	_, err = s.applications.Restore(s.ctx, s.bob, application.ID)
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)
	_, err = s.applications.Get(s.ctx, s.bob, application.ID, entity.AllView)
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	restored, err := s.applications.Restore(s.ctx, s.admin, application.ID)
	s.Require().NoError(err)
	s.Require().False(restored.IsDeleted)
	s.Require().Nil(restored.DeletedAt)

	found, err := s.applications.Get(s.ctx, s.alice, application.ID, entity.DefaultView)
	s.Require().NoError(err)
	s.Require().False(found.IsDeleted)
	s.Require().Nil(found.DeletedAt)
	s.Require().Equal(application.ID, found.ID)
	s.Require().Equal(application.JobID, found.JobID)
	s.Require().Equal(application.CandidateID, found.CandidateID)
	s.Require().Equal(application.CoverLetter, found.CoverLetter)
	s.Require().Equal(application.Status, found.Status)
	s.Require().True(found.CreatedAt.Equal(application.CreatedAt))
	s.Require().True(found.UpdatedAt.After(application.UpdatedAt))
}

func (s *ServiceTestSuite) TestAnonymousMutationsDenied() {
	job := s.postJob(s.recruiter)

	_, err := s.jobs.PostJob(s.ctx, nil, &contract.CreateJobRequest{
		Title:          "Ghost job",
		Description:    "Nobody posted this one",
		CompanyName:    "Nowhere",
		EmploymentType: string(entity.EmploymentContract),
	})
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	_, err = s.jobs.UpdateJob(s.ctx, nil, job.ID, &contract.UpdateJobRequest{Title: ptr("Hijacked")})
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	_, err = s.jobs.SoftDelete(s.ctx, nil, job.ID)
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	_, err = s.jobs.Restore(s.ctx, nil, job.ID)
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	// Reads stay open
	found, err := s.jobs.Get(s.ctx, nil, job.ID, entity.DefaultView)
	s.Require().NoError(err)
	s.Require().Equal(job.ID, found.ID)
}

func (s *ServiceTestSuite) TestAdminMutatesAnyRecord() {
	job := s.postJob(s.recruiter)

	updated, err := s.jobs.UpdateJob(s.ctx, s.admin, job.ID, &contract.UpdateJobRequest{
		Status: ptr(string(entity.JobStatusClosed)),
	})
	s.Require().NoError(err)
	s.Require().Equal(entity.JobStatusClosed, updated.Status)

	// Ownership does not move to the admin
	s.Require().Equal(s.recruiter.ID, updated.RecruiterID)
}

func (s *ServiceTestSuite) TestGetUnknownRecord() {
	_, err := s.jobs.Get(s.ctx, s.admin, uuid.New(), entity.AllView)
	s.Require().ErrorIs(err, failure.ErrNotFound)

	_, err = s.jobs.SoftDelete(s.ctx, s.admin, uuid.New())
	s.Require().ErrorIs(err, failure.ErrNotFound)
}

func (s *ServiceTestSuite) TestAllViewReads() {
	job := s.postJob(s.recruiter)
	other := &entity.Actor{ID: uuid.New(), Role: entity.RoleRecruiter}

	_, err := s.jobs.Get(s.ctx, s.recruiter, job.ID, entity.AllView)
	s.Require().NoError(err)

	_, err = s.jobs.Get(s.ctx, other, job.ID, entity.AllView)
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	_, err = s.jobs.List(s.ctx, s.recruiter, entity.Query{View: entity.AllView})
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	page, err := s.jobs.List(s.ctx, s.admin, entity.Query{View: entity.AllView})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
}

func (s *ServiceTestSuite) TestSensitiveReads() {
	job := s.postJob(s.recruiter)
	mine := s.apply(s.alice, job)
	theirs := s.apply(s.bob, job)

	_, err := s.applications.Get(s.ctx, s.alice, theirs.ID, entity.DefaultView)
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	_, err = s.applications.Get(s.ctx, nil, mine.ID, entity.DefaultView)
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	// Lists of sensitive kinds only hold the caller's rows
	page, err := s.applications.List(s.ctx, s.alice, entity.Query{})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
	s.Require().Equal(mine.ID, page.Items[0].ID)

	_, err = s.applications.List(s.ctx, nil, entity.Query{})
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	page, err = s.applications.List(s.ctx, s.admin, entity.Query{})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 2)
	s.Require().Equal(int64(2), page.TotalItems)
}
