package service

import (
	"errors"
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/domain/failure"
	"jobboard/cmd/internal/domain/policy"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	accessDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_access_decisions_total",
			Help: "Access policy decisions by entity kind, action and result.",
		},
		[]string{"kind", "action", "decision"},
	)

	entityOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_entity_operations_total",
			Help: "Entity service operations by entity kind, operation and outcome.",
		},
		[]string{"kind", "operation", "outcome"},
	)
)

func observeDecision(kind entity.Kind, action policy.Action, decision policy.Decision) {
	accessDecisionsTotal.WithLabelValues(kind.String(), action.String(), decision.String()).Inc()
}

func observeOperation(kind entity.Kind, operation string, err error) {
	entityOperationsTotal.WithLabelValues(kind.String(), operation, Outcome(err)).Inc()
}

// Outcome buckets err into a low cardinality label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, failure.ErrNotFound):
		return "not_found"
	case errors.Is(err, failure.ErrNotAuthorized):
		return "not_authorized"
	case errors.Is(err, failure.ErrConflict):
		return "conflict"
	case errors.Is(err, failure.ErrExists):
		return "exists"
	case errors.Is(err, failure.ErrInvalid):
		return "invalid"
	case errors.Is(err, failure.ErrStorage):
		return "storage_error"
	default:
		return "error"
	}
}
