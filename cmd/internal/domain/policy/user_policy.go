package policy

import (
	"fmt"
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/domain/failure"
)

// UserPolicy holds the field-level rules for account changes that go
// beyond the record-level decision made by AccessPolicy.
type UserPolicy struct {
	access *AccessPolicy
}

func NewUserPolicy(access *AccessPolicy) *UserPolicy {
	return &UserPolicy{access: access}
}

// CanRegister checks whether actor may create an account holding role.
// Candidate and recruiter accounts are open to anyone, anonymous callers
// included. Any other role requires PermissionManageUsers.
func (p *UserPolicy) CanRegister(actor *entity.Actor, role entity.Role) error {
	if role == entity.RoleCandidate || role == entity.RoleRecruiter {
		return nil
	}

	if !p.access.Grants(actor, entity.PermissionManageUsers) {
		return permError(entity.PermissionManageUsers)
	}
	return nil
}

// CanChangeRole checks if 'actor' can move 'target' to 'newRole'.
func (p *UserPolicy) CanChangeRole(actor *entity.Actor, target *entity.User, newRole entity.Role) error {
	// Rule 1: Actor must have ManageUsers
	if !p.access.Grants(actor, entity.PermissionManageUsers) {
		return permError(entity.PermissionManageUsers)
	}

	// Rule 2: nobody demotes themselves, the last admin could lock the platform out
	if actor.ID == target.ID && newRole != target.Role {
		return fmt.Errorf("%w: cannot change your own role", failure.ErrNotAuthorized)
	}
	return nil
}

// CanChangeVerification checks if 'actor' can flip the verified flag of a user.
func (p *UserPolicy) CanChangeVerification(actor *entity.Actor) error {
	if !p.access.Grants(actor, entity.PermissionManageUsers) {
		return permError(entity.PermissionManageUsers)
	}
	return nil
}

func permError(perm entity.Permission) error {
	return fmt.Errorf("%w: missing permission %d", failure.ErrNotAuthorized, int64(perm))
}
