// Package failure declares the error kinds surfaced by the entity core.
// Callers match them with errors.Is, every returned error wraps exactly one.
package failure

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a target that does not exist or is hidden by the view used.
	ErrNotFound = errors.New("not found")

	// ErrNotAuthorized marks an operation denied by the access policy.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrStorage marks a persistence failure. The core never retries it.
	ErrStorage = errors.New("storage failure")

	// ErrConflict marks a lost optimistic-lock race, it is a storage failure.
	ErrConflict = fmt.Errorf("%w: concurrent modification", ErrStorage)

	// ErrExists marks a uniqueness violation.
	ErrExists = errors.New("already exists")

	// ErrInvalid marks a malformed payload.
	ErrInvalid = errors.New("invalid")

	// ErrUnknownRole is matched by every *UnknownRoleError.
	ErrUnknownRole = errors.New("unknown role")
)

// UnknownRoleError is returned for a role outside the registry.
// Roles are static, so at runtime it indicates misconfiguration.
type UnknownRoleError struct {
	Role string
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("unknown role %q", e.Role)
}

func (e *UnknownRoleError) Is(target error) bool {
	return target == ErrUnknownRole
}

// Storage wraps a driver error into ErrStorage. The cause stays in the chain.
func Storage(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
