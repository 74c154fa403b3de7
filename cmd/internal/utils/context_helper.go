package utils

import (
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const ActorKey = "actor"

// GetActorFromContext returns the caller resolved by the actor middleware.
// A nil actor with a nil error means an anonymous caller.
func GetActorFromContext(c echo.Context) (*entity.Actor, apierror.ErrorResponse) {
	val := c.Get(ActorKey)
	if val == nil {
		return nil, nil
	}

	actor, ok := val.(*entity.Actor)
	if !ok {
		log.Warnf("expected actor type at '%s' context key, got %T", ActorKey, val)
		return nil, apierror.InternalServerError
	}
	return actor, nil
}

// RequireActor is GetActorFromContext for routes closed to anonymous callers.
func RequireActor(c echo.Context) (*entity.Actor, apierror.ErrorResponse) {
	actor, err := GetActorFromContext(c)
	if err != nil {
		return nil, err
	}

	if !actor.Authenticated() {
		log.Warnf("route %s attempted to read nil actor from context", c.Request().URL)
		return nil, apierror.UnauthorizedError
	}
	return actor, nil
}
