package service_test

import (
	"jobboard/cmd/internal/contract"
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/domain/failure"
)

func (s *ServiceTestSuite) register(email string, role entity.Role) *entity.User {
	user, err := s.users.Register(s.ctx, nil, &contract.CreateUserRequest{
		Email:    email,
		Username: "user",
		Role:     string(role),
	})
	s.Require().NoError(err)
	return user
}

func (s *ServiceTestSuite) TestRegisterOpenRoles() {
	user, err := s.users.Register(s.ctx, nil, &contract.CreateUserRequest{
		Email:     "  Alice@Example.com ",
		Username:  "alice",
		Role:      "candidate",
		FirstName: " Alice ",
	})
	s.Require().NoError(err)
	s.Require().Equal("alice@example.com", user.Email)
	s.Require().Equal("Alice", user.FirstName)
	s.Require().Equal(entity.RoleCandidate, user.Role)
	s.Require().True(user.IsActive)
	s.Require().False(user.IsVerified)
	s.Require().Equal(int64(1), user.Version)

	recruiter := s.register("hr@example.com", entity.RoleRecruiter)
	s.Require().Equal(entity.RoleRecruiter, recruiter.Role)
}

func (s *ServiceTestSuite) TestRegisterDuplicateEmail() {
	s.register("alice@example.com", entity.RoleCandidate)

	_, err := s.users.Register(s.ctx, nil, &contract.CreateUserRequest{
		Email:    "ALICE@example.com",
		Username: "impostor",
		Role:     "candidate",
	})
	s.Require().ErrorIs(err, failure.ErrExists)
}

func (s *ServiceTestSuite) TestRegisterDeletedEmailStaysTaken() {
	user := s.register("alice@example.com", entity.RoleCandidate)

	_, err := s.users.SoftDelete(s.ctx, entity.ActorFromUser(user), user.ID)
	s.Require().NoError(err)

	_, err = s.users.Register(s.ctx, nil, &contract.CreateUserRequest{
		Email:    "alice@example.com",
		Username: "alice2",
		Role:     "candidate",
	})
	s.Require().ErrorIs(err, failure.ErrExists)
}

func (s *ServiceTestSuite) TestRegisterAdmin() {
	req := func() *contract.CreateUserRequest {
		return &contract.CreateUserRequest{
			Email:    "root@example.com",
			Username: "root",
			Role:     "admin",
		}
	}

	_, err := s.users.Register(s.ctx, nil, req())
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	_, err = s.users.Register(s.ctx, s.recruiter, req())
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	admin, err := s.users.Register(s.ctx, s.admin, req())
	s.Require().NoError(err)
	s.Require().Equal(entity.RoleAdmin, admin.Role)
}

func (s *ServiceTestSuite) TestRegisterInvalidPayload() {
	_, err := s.users.Register(s.ctx, nil, &contract.CreateUserRequest{
		Email:    "not-an-email",
		Username: "has spaces",
		Role:     "candidate",
	})
	s.Require().ErrorIs(err, failure.ErrInvalid)

	_, err = s.users.Register(s.ctx, nil, &contract.CreateUserRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Role:     "superuser",
	})
	s.Require().ErrorIs(err, failure.ErrInvalid)
}

func (s *ServiceTestSuite) TestUpdateOwnProfile() {
	user := s.register("alice@example.com", entity.RoleCandidate)
	self := entity.ActorFromUser(user)

	updated, err := s.users.UpdateUser(s.ctx, self, user.ID, &contract.UpdateUserRequest{
		Bio:      ptr("Gopher"),
		Location: ptr("Lisbon"),
	})
	s.Require().NoError(err)
	s.Require().Equal("Gopher", updated.Bio)
	s.Require().Equal("Lisbon", updated.Location)
	s.Require().Equal(int64(2), updated.Version)

	_, err = s.users.UpdateUser(s.ctx, s.bob, user.ID, &contract.UpdateUserRequest{Bio: ptr("Hacked")})
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)
}

func (s *ServiceTestSuite) TestRoleAndVerificationChanges() {
	user := s.register("alice@example.com", entity.RoleCandidate)
	self := entity.ActorFromUser(user)

	_, err := s.users.UpdateUser(s.ctx, self, user.ID, &contract.UpdateUserRequest{Role: ptr("admin")})
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	_, err = s.users.UpdateUser(s.ctx, self, user.ID, &contract.UpdateUserRequest{IsVerified: ptr(true)})
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	// Re-sending the current values is not a change
	same, err := s.users.UpdateUser(s.ctx, self, user.ID, &contract.UpdateUserRequest{
		Role:       ptr("candidate"),
		IsVerified: ptr(false),
	})
	s.Require().NoError(err)
	s.Require().Equal(int64(1), same.Version)

	promoted, err := s.users.UpdateUser(s.ctx, s.admin, user.ID, &contract.UpdateUserRequest{
		Role:       ptr("recruiter"),
		IsVerified: ptr(true),
	})
	s.Require().NoError(err)
	s.Require().Equal(entity.RoleRecruiter, promoted.Role)
	s.Require().True(promoted.IsVerified)
}

func (s *ServiceTestSuite) TestAdminCannotChangeOwnRole() {
	root, err := s.users.Register(s.ctx, s.admin, &contract.CreateUserRequest{
		Email:    "root@example.com",
		Username: "root",
		Role:     "admin",
	})
	s.Require().NoError(err)

	_, err = s.users.UpdateUser(s.ctx, entity.ActorFromUser(root), root.ID, &contract.UpdateUserRequest{
		Role: ptr("candidate"),
	})
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)
}

func (s *ServiceTestSuite) TestUserReadsArePrivate() {
	alice := s.register("alice@example.com", entity.RoleCandidate)
	s.register("bob@example.com", entity.RoleCandidate)

	_, err := s.users.Get(s.ctx, s.bob, alice.ID, entity.DefaultView)
	s.Require().ErrorIs(err, failure.ErrNotAuthorized)

	found, err := s.users.Get(s.ctx, entity.ActorFromUser(alice), alice.ID, entity.DefaultView)
	s.Require().NoError(err)
	s.Require().Equal(alice.Email, found.Email)

	page, err := s.users.List(s.ctx, entity.ActorFromUser(alice), entity.Query{})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
	s.Require().Equal(alice.ID, page.Items[0].ID)

	page, err = s.users.List(s.ctx, s.admin, entity.Query{})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 2)
}
