package service

import (
	"fmt"
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/domain/failure"
	"jobboard/cmd/internal/domain/policy"
	"strings"

	"github.com/google/uuid"
)

func denied(action policy.Action, kind entity.Kind) error {
	return fmt.Errorf("%w: cannot %s %s", failure.ErrNotAuthorized, action, kind)
}

// invalid keeps the validator error in the chain for field level reporting.
func invalid(err error) error {
	return fmt.Errorf("%w: %w", failure.ErrInvalid, err)
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", failure.ErrInvalid, fmt.Sprintf(format, args...))
}

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, invalidf("%s is not a valid id", field)
	}
	return id, nil
}

// joinTags stores tags space separated, they are validated to hold no spaces.
func joinTags(tags []string) string {
	return strings.Join(tags, " ")
}

// SplitTags is the inverse of joinTags.
func SplitTags(stored string) []string {
	if stored == "" {
		return []string{}
	}
	return strings.Fields(stored)
}
