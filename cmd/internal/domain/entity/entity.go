package entity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind names an entity type for policy and metrics purposes.
type Kind string

const (
	KindUser        Kind = "user"
	KindSkill       Kind = "skill"
	KindUserSkill   Kind = "user_skill"
	KindJob         Kind = "job"
	KindApplication Kind = "application"
)

var Kinds = []Kind{KindUser, KindSkill, KindUserSkill, KindJob, KindApplication}

func (k Kind) String() string {
	return string(k)
}

func ParseKind(name string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(name)))
	for _, k := range Kinds {
		if k == kind {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown entity kind %q", name)
}

// Entity is implemented by every persisted type built on Record.
type Entity interface {
	GetRecord() *Record
	Kind() Kind

	// Owner returns the controlling user, ok is false for
	// ownerless (admin managed) entities.
	Owner() (id uuid.UUID, ok bool)
}

// Model constrains a type parameter to a pointer to an entity struct,
// so generic code can both allocate T and call Entity methods on *T.
type Model[T any] interface {
	*T
	Entity
}
