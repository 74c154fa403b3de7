package policy

import (
	"errors"
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/domain/failure"
)

type requirement struct {
	kind   entity.Kind
	action Action
}

// required maps every mutating (kind, action) pair to the permission
// a role must carry. Pairs absent from the table are never granted.
var required = map[requirement]entity.Permission{
	{entity.KindUser, ActionCreate}:  entity.PermissionManageUsers,
	{entity.KindUser, ActionUpdate}:  entity.PermissionEditProfile,
	{entity.KindUser, ActionDelete}:  entity.PermissionDeleteAccount,
	{entity.KindUser, ActionRestore}: entity.PermissionDeleteAccount,

	{entity.KindSkill, ActionCreate}:  entity.PermissionManageSkills,
	{entity.KindSkill, ActionUpdate}:  entity.PermissionManageSkills,
	{entity.KindSkill, ActionDelete}:  entity.PermissionManageSkills,
	{entity.KindSkill, ActionRestore}: entity.PermissionManageSkills,

	{entity.KindUserSkill, ActionCreate}:  entity.PermissionManageOwnSkills,
	{entity.KindUserSkill, ActionUpdate}:  entity.PermissionManageOwnSkills,
	{entity.KindUserSkill, ActionDelete}:  entity.PermissionManageOwnSkills,
	{entity.KindUserSkill, ActionRestore}: entity.PermissionManageOwnSkills,

	{entity.KindJob, ActionCreate}:  entity.PermissionCreateJobs,
	{entity.KindJob, ActionUpdate}:  entity.PermissionEditJobs,
	{entity.KindJob, ActionDelete}:  entity.PermissionDeleteJobs,
	{entity.KindJob, ActionRestore}: entity.PermissionDeleteJobs,

	{entity.KindApplication, ActionCreate}:  entity.PermissionCreateApplications,
	{entity.KindApplication, ActionUpdate}:  entity.PermissionEditApplications,
	{entity.KindApplication, ActionDelete}:  entity.PermissionWithdrawApplications,
	{entity.KindApplication, ActionRestore}: entity.PermissionWithdrawApplications,
}

// DefaultGrants is the built-in role table used when no policy file is configured.
func DefaultGrants() map[entity.Role]entity.Permission {
	profile := entity.PermissionEditProfile |
		entity.PermissionDeleteAccount |
		entity.PermissionManageOwnSkills

	return map[entity.Role]entity.Permission{
		entity.RoleCandidate: profile |
			entity.PermissionCreateApplications |
			entity.PermissionEditApplications |
			entity.PermissionWithdrawApplications,
		entity.RoleRecruiter: profile |
			entity.PermissionCreateJobs |
			entity.PermissionEditJobs |
			entity.PermissionDeleteJobs,
		entity.RoleAdmin: entity.PermissionAdministrator,
	}
}

// RoleRegistry is the static table of what each role may do platform-wide,
// independent of ownership. It is immutable once built.
type RoleRegistry struct {
	grants map[entity.Role]entity.Permission
}

// NewRoleRegistry copies grants into a registry. Every role must be known,
// and the admin role must carry PermissionAdministrator.
func NewRoleRegistry(grants map[entity.Role]entity.Permission) (*RoleRegistry, error) {
	table := make(map[entity.Role]entity.Permission, len(grants))
	for role, perms := range grants {
		if !role.Valid() {
			return nil, &failure.UnknownRoleError{Role: string(role)}
		}
		table[role] = perms
	}

	if !table[entity.RoleAdmin].Has(entity.PermissionAdministrator) {
		return nil, errors.New("admin role must be granted the administrator permission")
	}
	return &RoleRegistry{grants: table}, nil
}

// DefaultRoleRegistry builds the registry from DefaultGrants.
func DefaultRoleRegistry() *RoleRegistry {
	registry, err := NewRoleRegistry(DefaultGrants())
	if err != nil {
		panic(err)
	}
	return registry
}

// Permissions returns the bitmask granted to role.
func (r *RoleRegistry) Permissions(role entity.Role) (entity.Permission, error) {
	perms, ok := r.grants[role]
	if !ok {
		return 0, &failure.UnknownRoleError{Role: string(role)}
	}
	return perms, nil
}

// Allows reports whether role intrinsically grants action on kind.
// Safe actions are open to every role.
func (r *RoleRegistry) Allows(role entity.Role, kind entity.Kind, action Action) (bool, error) {
	perms, err := r.Permissions(role)
	if err != nil {
		return false, err
	}

	if action.IsSafe() {
		return true, nil
	}

	perm, ok := required[requirement{kind, action}]
	if !ok {
		return false, nil
	}
	return perms.HasEffective(perm), nil
}

// Required exposes the permission needed for a mutating action, ok is false
// when no role other than admin can ever perform it.
func Required(kind entity.Kind, action Action) (entity.Permission, bool) {
	perm, ok := required[requirement{kind, action}]
	return perm, ok
}
