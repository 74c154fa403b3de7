package entity

import (
	"fmt"
	"strings"
)

// Permission is a custom type for bitwise flags
type Permission int64

const (
	// PermissionAdministrator grants god-mode.
	// Admins may mutate any record regardless of who owns it.
	PermissionAdministrator Permission = 1 << iota

	// PermissionEditProfile allows changing mutable fields of an owned account.
	PermissionEditProfile

	// PermissionDeleteAccount allows soft deleting (and restoring) an owned account.
	PermissionDeleteAccount

	// PermissionManageUsers allows changing roles and verification flags.
	// It is the only way to promote somebody to admin.
	PermissionManageUsers

	// PermissionManageSkills allows maintaining the global skill catalog.
	// Skills have no owner, so in practice only administrators use it.
	PermissionManageSkills

	// PermissionManageOwnSkills allows attaching skills to an owned profile.
	PermissionManageOwnSkills

	// PermissionCreateJobs allows posting new jobs.
	PermissionCreateJobs

	// PermissionEditJobs allows modifying owned jobs.
	PermissionEditJobs

	// PermissionDeleteJobs allows removing (and restoring) owned jobs.
	PermissionDeleteJobs

	// PermissionCreateApplications allows applying to jobs.
	PermissionCreateApplications

	// PermissionEditApplications allows modifying owned applications.
	PermissionEditApplications

	// PermissionWithdrawApplications allows removing (and restoring) owned applications.
	PermissionWithdrawApplications
)

var permissionNames = map[string]Permission{
	"administrator":         PermissionAdministrator,
	"edit_profile":          PermissionEditProfile,
	"delete_account":        PermissionDeleteAccount,
	"manage_users":          PermissionManageUsers,
	"manage_skills":         PermissionManageSkills,
	"manage_own_skills":     PermissionManageOwnSkills,
	"create_jobs":           PermissionCreateJobs,
	"edit_jobs":             PermissionEditJobs,
	"delete_jobs":           PermissionDeleteJobs,
	"create_applications":   PermissionCreateApplications,
	"edit_applications":     PermissionEditApplications,
	"withdraw_applications": PermissionWithdrawApplications,
}

// ParsePermission resolves the configuration name of a single permission flag.
func ParsePermission(name string) (Permission, error) {
	perm, ok := permissionNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown permission %q", name)
	}
	return perm, nil
}

// Has checks if the permission bitmask contains ALL bits
// requested in 'target'. It ignores Administrator status.
// Logic: (p & target) == target
func (p Permission) Has(target Permission) bool {
	return (p & target) == target
}

// Add appends a permission to the bitmask
func (p Permission) Add(perm Permission) Permission {
	return p | perm
}

// HasEffective checks if the permission bitmask contains the target bits
// OR if the permission includes Administrator
func (p Permission) HasEffective(target Permission) bool {
	return p.Has(PermissionAdministrator) || p.Has(target)
}
