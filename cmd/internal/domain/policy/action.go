package policy

// Action is an operation a principal attempts on a record.
type Action string

const (
	ActionRead    Action = "read"
	ActionList    Action = "list"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionRestore Action = "restore"
)

// Mutations lists every action that changes a record.
var Mutations = []Action{ActionCreate, ActionUpdate, ActionDelete, ActionRestore}

func (a Action) String() string {
	return string(a)
}

// IsSafe reports read-only actions.
func (a Action) IsSafe() bool {
	return a == ActionRead || a == ActionList
}

func (a Action) Valid() bool {
	switch a {
	case ActionRead, ActionList, ActionCreate, ActionUpdate, ActionDelete, ActionRestore:
		return true
	}
	return false
}

// Decision is the outcome of an access evaluation. The zero value denies.
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) Allowed() bool {
	return d == Allow
}

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}
