package policy

import "jobboard/cmd/internal/domain/entity"

// DefaultSensitive lists the kinds whose reads are private by default:
// profiles carry contact data and applications carry cover letters.
func DefaultSensitive() []entity.Kind {
	return []entity.Kind{entity.KindUser, entity.KindApplication}
}

// AccessPolicy decides whether an actor may perform an action on a record.
// Evaluation is pure: no I/O, no mutation, safe for concurrent use.
type AccessPolicy struct {
	registry  *RoleRegistry
	sensitive map[entity.Kind]bool
}

func NewAccessPolicy(registry *RoleRegistry, sensitive []entity.Kind) *AccessPolicy {
	set := make(map[entity.Kind]bool, len(sensitive))
	for _, kind := range sensitive {
		set[kind] = true
	}
	return &AccessPolicy{registry: registry, sensitive: set}
}

// IsSensitive reports whether reads of kind are gated by ownership.
func (p *AccessPolicy) IsSensitive(kind entity.Kind) bool {
	return p.sensitive[kind]
}

// Evaluate never fails: anything it cannot interpret is denied.
//
// Reads are open unless the kind is sensitive, in which case only the
// owner or an admin may read. Mutations require the role to grant the
// action and the actor to own the target, admins skip the ownership check.
func (p *AccessPolicy) Evaluate(actor *entity.Actor, action Action, target entity.Entity) Decision {
	if target == nil || !action.Valid() {
		return Deny
	}

	if action.IsSafe() {
		if !p.sensitive[target.Kind()] {
			return Allow
		}
		return p.ownerOrAdmin(actor, target)
	}

	if !actor.Authenticated() {
		return Deny
	}

	granted, err := p.registry.Allows(actor.Role, target.Kind(), action)
	if err != nil || !granted {
		return Deny
	}
	return p.ownerOrAdmin(actor, target)
}

// CanCreate checks role restrictions for creating a record of kind.
// Ownership does not apply: the new record belongs to the actor.
func (p *AccessPolicy) CanCreate(actor *entity.Actor, kind entity.Kind) Decision {
	if !actor.Authenticated() {
		return Deny
	}

	granted, err := p.registry.Allows(actor.Role, kind, ActionCreate)
	if err != nil || !granted {
		return Deny
	}
	return Allow
}

// CanViewAll gates AllView reads of target, reserved to its owner and admins.
func (p *AccessPolicy) CanViewAll(actor *entity.Actor, target entity.Entity) Decision {
	return p.ownerOrAdmin(actor, target)
}

// Grants reports whether the actor's role carries perm, admins carry everything.
func (p *AccessPolicy) Grants(actor *entity.Actor, perm entity.Permission) bool {
	if !actor.Authenticated() {
		return false
	}

	perms, err := p.registry.Permissions(actor.Role)
	if err != nil {
		return false
	}
	return perms.HasEffective(perm)
}

func (p *AccessPolicy) ownerOrAdmin(actor *entity.Actor, target entity.Entity) Decision {
	if actor.IsAdmin() || actor.Owns(target) {
		return Allow
	}
	return Deny
}
