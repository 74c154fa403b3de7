package service

import (
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/domain/policy"
)

// userUpdater adds the account level rules on top of changeSet:
// role and verification changes are reserved to user managers.
type userUpdater struct {
	changeSet
	actor  *entity.Actor
	target *entity.User
	policy *policy.UserPolicy
}

// setProfileString handles standard string fields (Username, Bio, etc.)
func (u *userUpdater) setProfileString(newVal *string, targetField *string) {
	setField(&u.changeSet, newVal, targetField)
}

func (u *userUpdater) setRole(raw *string) {
	if u.err != nil || raw == nil {
		return
	}

	role, err := entity.ParseRole(*raw)
	if err != nil {
		u.err = invalid(err)
		return
	}

	if role == u.target.Role {
		return
	}

	// Policy Check
	if err := u.policy.CanChangeRole(u.actor, u.target, role); err != nil {
		u.err = err
		return
	}

	u.target.Role = role
	u.dirty = true
}

func (u *userUpdater) setVerified(newVal *bool) {
	if u.err != nil || newVal == nil || *newVal == u.target.IsVerified {
		return
	}

	if err := u.policy.CanChangeVerification(u.actor); err != nil {
		u.err = err
		return
	}

	u.target.IsVerified = *newVal
	u.dirty = true
}
