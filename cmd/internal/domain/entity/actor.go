package entity

import "github.com/google/uuid"

// Actor is the principal performing an operation, resolved by the
// authentication layer. A nil *Actor stands for an anonymous caller.
type Actor struct {
	ID         uuid.UUID
	Role       Role
	IsVerified bool
	Email      string
}

// ActorFromUser builds the principal for a persisted user.
func ActorFromUser(user *User) *Actor {
	return &Actor{
		ID:         user.ID,
		Role:       user.Role,
		IsVerified: user.IsVerified,
		Email:      user.Email,
	}
}

func (a *Actor) Authenticated() bool {
	return a != nil && a.ID != uuid.Nil
}

func (a *Actor) IsAdmin() bool {
	return a.Authenticated() && a.Role == RoleAdmin
}

// Owns reports whether the actor is the owner of target.
// Targets without an owner belong to nobody.
func (a *Actor) Owns(target Entity) bool {
	if !a.Authenticated() || target == nil {
		return false
	}

	owner, ok := target.Owner()
	return ok && owner == a.ID
}
