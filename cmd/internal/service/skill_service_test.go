package service_test

import (
	"jobboard/cmd/internal/contract"
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/domain/failure"

	"github.com/google/uuid"
)

func (s *ServiceTestSuite) createSkill(name string) *entity.Skill {
	skill, err := s.skills.CreateSkill(s.ctx, s.admin, &contract.CreateSkillRequest{
		Name:     name,
		Category: "language",
	})
	s.Require().NoError(err)
	return skill
}

func (s *ServiceTestSuite) TestSkillCatalogIsAdminOnly() {
	_, err := s.skills.CreateSkill(s.ctx, s.recruiter, &contract.CreateSkillRequest{
		Name:     "Go",
		Category: "language",
	})
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	skill := s.createSkill("Go")

	_, err = s.skills.UpdateSkill(s.ctx, s.alice, skill.ID, &contract.UpdateSkillRequest{Description: ptr("gopher")})
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	_, err = s.skills.SoftDelete(s.ctx, s.alice, skill.ID)
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	// Anyone may browse the catalog
	found, err := s.skills.Get(s.ctx, nil, skill.ID, entity.DefaultView)
	s.Require().NoError(err)
	s.Require().Equal("Go", found.Name)

	page, err := s.skills.List(s.ctx, nil, entity.Query{})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
}

func (s *ServiceTestSuite) TestSkillNamesAreUnique() {
	s.createSkill("Go")
	rust := s.createSkill("Rust")

	_, err := s.skills.CreateSkill(s.ctx, s.admin, &contract.CreateSkillRequest{
		Name:     "Go",
		Category: "language",
	})
	s.Require().ErrorIs(err, failure.ErrExists)

	_, err = s.skills.UpdateSkill(s.ctx, s.admin, rust.ID, &contract.UpdateSkillRequest{Name: ptr("Go")})
	s.Require().ErrorIs(err, failure.ErrExists)

	renamed, err := s.skills.UpdateSkill(s.ctx, s.admin, rust.ID, &contract.UpdateSkillRequest{Name: ptr("Zig")})
	s.Require().NoError(err)
	s.Require().Equal("Zig", renamed.Name)
}

func (s *ServiceTestSuite) TestAddSkill() {
	skill := s.createSkill("Go")

	row, err := s.userSkills.AddSkill(s.ctx, s.alice, &contract.CreateUserSkillRequest{
		SkillID:           skill.ID.String(),
		Proficiency:       "expert",
		YearsOfExperience: 7,
	})
	s.Require().NoError(err)
	s.Require().Equal(s.alice.ID, row.UserID)
	s.Require().Equal(entity.ProficiencyExpert, row.Proficiency)

	_, err = s.userSkills.AddSkill(s.ctx, s.alice, &contract.CreateUserSkillRequest{
		SkillID:     skill.ID.String(),
		Proficiency: "beginner",
	})
	s.Require().ErrorIs(err, failure.ErrExists)

	// Another profile can hold the same skill
	_, err = s.userSkills.AddSkill(s.ctx, s.bob, &contract.CreateUserSkillRequest{
		SkillID:     skill.ID.String(),
		Proficiency: "beginner",
	})
	s.Require().NoError(err)

	_, err = s.userSkills.UpdateUserSkill(s.ctx, s.bob, row.ID, &contract.UpdateUserSkillRequest{
		Proficiency: ptr("beginner"),
	})
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	updated, err := s.userSkills.UpdateUserSkill(s.ctx, s.alice, row.ID, &contract.UpdateUserSkillRequest{
		YearsOfExperience: ptr(8),
	})
	s.Require().NoError(err)
	s.Require().Equal(8, updated.YearsOfExperience)
}

func (s *ServiceTestSuite) TestAddUnavailableSkill() {
	_, err := s.userSkills.AddSkill(s.ctx, s.alice, &contract.CreateUserSkillRequest{
		SkillID:     uuid.NewString(),
		Proficiency: "beginner",
	})
	s.Require().ErrorIs(err, failure.ErrNotFound)

	skill := s.createSkill("Cobol")
	_, err = s.skills.UpdateSkill(s.ctx, s.admin, skill.ID, &contract.UpdateSkillRequest{IsActive: ptr(false)})
	s.Require().NoError(err)

	_, err = s.userSkills.AddSkill(s.ctx, s.alice, &contract.CreateUserSkillRequest{
		SkillID:     skill.ID.String(),
		Proficiency: "beginner",
	})
	s.Require().ErrorIs(err, failure.ErrInvalid)

	_, err = s.userSkills.AddSkill(s.ctx, nil, &contract.CreateUserSkillRequest{
		SkillID:     skill.ID.String(),
		Proficiency: "beginner",
	})
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)
}

func (s *ServiceTestSuite) TestRestoreKeepsOneLiveUserSkill() {
	skill := s.createSkill("Go")
	req := func() *contract.CreateUserSkillRequest {
		return &contract.CreateUserSkillRequest{SkillID: skill.ID.String(), Proficiency: "advanced"}
	}

	first, err := s.userSkills.AddSkill(s.ctx, s.alice, req())
	s.Require().NoError(err)

	_, err = s.userSkills.SoftDelete(s.ctx, s.alice, first.ID)
	s.Require().NoError(err)

	_, err = s.userSkills.AddSkill(s.ctx, s.alice, req())
	s.Require().NoError(err)

	_, err = s.userSkills.Restore(s.ctx, s.alice, first.ID)
	s.Require().ErrorIs(err, failure.ErrExists)

	found, err := s.userSkills.Get(s.ctx, s.alice, first.ID, entity.AllView)
	s.Require().NoError(err)
	s.Require().True(found.IsDeleted)

	page, err := s.userSkills.List(s.ctx, s.alice, entity.Query{Where: map[string]any{"user_id": s.alice.ID}})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
}
