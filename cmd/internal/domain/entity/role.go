package entity

import (
	"jobboard/cmd/internal/domain/failure"
	"strings"
)

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// Roles lists every role a user can hold, in privilege order.
var Roles = []Role{RoleCandidate, RoleRecruiter, RoleAdmin}

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

// ParseRole resolves a role name, failing with *failure.UnknownRoleError.
func ParseRole(name string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(name)))
	if !role.Valid() {
		return "", &failure.UnknownRoleError{Role: name}
	}
	return role, nil
}
