package middleware

import (
	"context"
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/utils"
	"jobboard/cmd/internal/utils/apierror"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID, view entity.View) (*entity.User, error)
}

type AuthMiddlewareConfig struct {
	UserRepo UserRepository
	Verifier utils.TokenVerifier
}

// NewAuthMiddleware resolves the caller of every request into an actor.
// Requests without credentials go through as anonymous, invalid
// credentials are rejected.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := utils.BearerToken(c)
			if token == "" {
				return next(c)
			}

			tokenData, err := cfg.Verifier.ValidateToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			id, err := uuid.Parse(tokenData.Sub)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			user, err := cfg.UserRepo.FindByID(c.Request().Context(), id, entity.DefaultView)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			if user == nil {
				// User deleted in DB but still has a valid token???
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			if !user.IsActive {
				return c.JSON(http.StatusForbidden, apierror.InactiveAccountError)
			}

			c.Set(utils.ActorKey, entity.ActorFromUser(user))
			return next(c)
		}
	}
}
