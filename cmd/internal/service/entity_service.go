package service

import (
	"context"
	"errors"
	"fmt"
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/domain/failure"
	"jobboard/cmd/internal/domain/policy"
	"jobboard/cmd/internal/utils"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

// Repository is the persistence an EntityService needs for one entity type.
// FindByID returns a nil row and no error when nothing matches.
type Repository[P entity.Entity] interface {
	Create(ctx context.Context, row P) error
	FindByID(ctx context.Context, id uuid.UUID, view entity.View) (P, error)
	Find(ctx context.Context, q entity.Query) ([]P, int64, error)
	Update(ctx context.Context, row P) error
}

// EntityService runs the record lifecycle of one entity type: every
// read goes through an explicit view and every mutation through the
// access policy before it reaches storage.
type EntityService[T any, P entity.Model[T]] struct {
	Repo   Repository[P]
	Access *policy.AccessPolicy
	Now    func() time.Time

	kind entity.Kind

	// beforeRestore runs on a deleted row about to come back, it lets
	// entities with uniqueness among live rows refuse the restore.
	beforeRestore func(ctx context.Context, row P) error
}

func NewEntityService[T any, P entity.Model[T]](repo Repository[P], access *policy.AccessPolicy) *EntityService[T, P] {
	return &EntityService[T, P]{
		Repo:   repo,
		Access: access,
		Now:    utils.NowUTC,
		kind:   P(new(T)).Kind(),
	}
}

func (s *EntityService[T, P]) Kind() entity.Kind {
	return s.kind
}

// Create persists row as a brand new record. The caller fills the
// payload and the owner reference, the record fields are always reset.
func (s *EntityService[T, P]) Create(ctx context.Context, actor *entity.Actor, row P) error {
	decision := s.Access.CanCreate(actor, s.kind)
	observeDecision(s.kind, policy.ActionCreate, decision)

	if !decision.Allowed() {
		err := denied(policy.ActionCreate, s.kind)
		observeOperation(s.kind, "create", err)
		return err
	}
	return s.insert(ctx, row)
}

// insert skips the role check, for entities with their own creation rules.
func (s *EntityService[T, P]) insert(ctx context.Context, row P) error {
	*row.GetRecord() = entity.NewRecord(s.Now())

	err := s.Repo.Create(ctx, row)
	observeOperation(s.kind, "create", err)
	if err != nil {
		s.logFailure("create", row.GetRecord().ID, err)
		return err
	}
	return nil
}

// Get fetches a record through view. AllView is reserved to the owner
// and admins, sensitive kinds are readable by the same people only.
func (s *EntityService[T, P]) Get(ctx context.Context, actor *entity.Actor, id uuid.UUID, view entity.View) (P, error) {
	row, err := s.get(ctx, actor, id, view)
	observeOperation(s.kind, "get", err)
	return row, err
}

func (s *EntityService[T, P]) get(ctx context.Context, actor *entity.Actor, id uuid.UUID, view entity.View) (P, error) {
	row, err := s.load(ctx, id, view)
	if err != nil {
		return nil, err
	}

	if view == entity.AllView && !s.Access.CanViewAll(actor, row).Allowed() {
		observeDecision(s.kind, policy.ActionRead, policy.Deny)
		return nil, denied(policy.ActionRead, s.kind)
	}

	if !s.decide(actor, policy.ActionRead, row) {
		return nil, denied(policy.ActionRead, s.kind)
	}
	return row, nil
}

// List returns one page of records. AllView lists are admin only, and
// lists of sensitive kinds are narrowed to the actor's own records.
func (s *EntityService[T, P]) List(ctx context.Context, actor *entity.Actor, q entity.Query) (*entity.Paged[P], error) {
	page, err := s.list(ctx, actor, q)
	observeOperation(s.kind, "list", err)
	return page, err
}

func (s *EntityService[T, P]) list(ctx context.Context, actor *entity.Actor, q entity.Query) (*entity.Paged[P], error) {
	if q.View == entity.AllView && !actor.IsAdmin() {
		observeDecision(s.kind, policy.ActionList, policy.Deny)
		return nil, denied(policy.ActionList, s.kind)
	}

	if s.Access.IsSensitive(s.kind) && !actor.IsAdmin() {
		_, owned := P(new(T)).Owner()
		if !owned || !actor.Authenticated() {
			observeDecision(s.kind, policy.ActionList, policy.Deny)
			return nil, denied(policy.ActionList, s.kind)
		}

		self := actor.ID
		q.OwnerID = &self
	}
	observeDecision(s.kind, policy.ActionList, policy.Allow)

	q = q.Normalize()
	rows, total, err := s.Repo.Find(ctx, q)
	if err != nil {
		s.logFailure("list", uuid.Nil, err)
		return nil, err
	}
	return entity.NewPaged(rows, q, total), nil
}

// Patch applies a change set to a loaded record. It reports whether
// anything changed, an error aborts the update with nothing written.
type Patch[P entity.Entity] func(row P) (changed bool, err error)

// Update loads the live record, runs patch once the actor is allowed to
// update it and persists every field in a single statement.
// A patch that changes nothing leaves the record untouched.
func (s *EntityService[T, P]) Update(ctx context.Context, actor *entity.Actor, id uuid.UUID, patch Patch[P]) (P, error) {
	row, err := s.update(ctx, actor, id, patch)
	observeOperation(s.kind, "update", err)
	return row, err
}

func (s *EntityService[T, P]) update(ctx context.Context, actor *entity.Actor, id uuid.UUID, patch Patch[P]) (P, error) {
	row, err := s.load(ctx, id, entity.DefaultView)
	if err != nil {
		return nil, err
	}

	if !s.decide(actor, policy.ActionUpdate, row) {
		return nil, denied(policy.ActionUpdate, s.kind)
	}

	changed, err := patch(row)
	if err != nil {
		return nil, err
	}

	if !changed {
		return row, nil
	}

	row.GetRecord().Touch(s.Now())
	if err = s.Repo.Update(ctx, row); err != nil {
		s.logFailure("update", id, err)
		return nil, err
	}
	return row, nil
}

// SoftDelete hides the record from the default view. Deleting a deleted
// record succeeds and only re-stamps its update time.
func (s *EntityService[T, P]) SoftDelete(ctx context.Context, actor *entity.Actor, id uuid.UUID) (P, error) {
	row, err := s.transition(ctx, actor, id, policy.ActionDelete, (*entity.Record).MarkDeleted)
	observeOperation(s.kind, "delete", err)
	return row, err
}

// Restore brings a soft deleted record back, idempotent like SoftDelete.
func (s *EntityService[T, P]) Restore(ctx context.Context, actor *entity.Actor, id uuid.UUID) (P, error) {
	row, err := s.transition(ctx, actor, id, policy.ActionRestore, (*entity.Record).Restore)
	observeOperation(s.kind, "restore", err)
	return row, err
}

func (s *EntityService[T, P]) transition(
	ctx context.Context,
	actor *entity.Actor,
	id uuid.UUID,
	action policy.Action,
	apply func(*entity.Record, time.Time),
) (P, error) {
	// Deleted records are the very targets of restore, and a repeated
	// delete must find its record too.
	row, err := s.load(ctx, id, entity.AllView)
	if err != nil {
		return nil, err
	}

	if !s.decide(actor, action, row) {
		return nil, denied(action, s.kind)
	}

	if action == policy.ActionRestore && row.GetRecord().IsDeleted && s.beforeRestore != nil {
		if err = s.beforeRestore(ctx, row); err != nil {
			s.logFailure(action.String(), id, err)
			return nil, err
		}
	}

	apply(row.GetRecord(), s.Now())
	if err = s.Repo.Update(ctx, row); err != nil {
		s.logFailure(action.String(), id, err)
		return nil, err
	}
	return row, nil
}

func (s *EntityService[T, P]) load(ctx context.Context, id uuid.UUID, view entity.View) (P, error) {
	row, err := s.Repo.FindByID(ctx, id, view)
	if err != nil {
		s.logFailure("fetch", id, err)
		return nil, err
	}

	if row == nil {
		return nil, fmt.Errorf("%w: %s %s", failure.ErrNotFound, s.kind, id)
	}
	return row, nil
}

func (s *EntityService[T, P]) decide(actor *entity.Actor, action policy.Action, row P) bool {
	decision := s.Access.Evaluate(actor, action, row)
	observeDecision(s.kind, action, decision)
	return decision.Allowed()
}

// logFailure only reports storage errors, the rest are expected outcomes.
func (s *EntityService[T, P]) logFailure(op string, id uuid.UUID, err error) {
	if errors.Is(err, failure.ErrStorage) {
		log.Errorf("failed to %s %s %s: %v", op, s.kind, id, err)
	}
}
