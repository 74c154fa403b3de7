package handler

import (
	"context"
	"jobboard/cmd/internal/contract"
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/utils"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type UserService interface {
	LifecycleService[*entity.User]
	Register(ctx context.Context, actor *entity.Actor, req *contract.CreateUserRequest) (*entity.User, error)
	UpdateUser(ctx context.Context, actor *entity.Actor, id uuid.UUID, req *contract.UpdateUserRequest) (*entity.User, error)
}

type DefaultUserRoute struct {
	*lifecycleRoute[*entity.User, *contract.UserResponse]
	UserService UserService
}

func NewUserDefault(userService UserService) *DefaultUserRoute {
	return &DefaultUserRoute{
		lifecycleRoute: &lifecycleRoute[*entity.User, *contract.UserResponse]{
			service:   userService,
			render:    toUserResponse,
			filters:   []string{"role"},
			selfAlias: true,
		},
		UserService: userService,
	}
}

// CreateUser registers an account, anonymous callers included.
func (u *DefaultUserRoute) CreateUser(c echo.Context) error {
	actor, cerr := utils.GetActorFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}

	user, err := u.UserService.Register(c.Request().Context(), actor, &req)
	if err != nil {
		return serviceError(c, err)
	}

	// Anonymous sign-ups see their own account
	viewer := actor
	if !viewer.Authenticated() {
		viewer = entity.ActorFromUser(user)
	}
	return c.JSON(http.StatusCreated, toUserResponse(viewer, user))
}

func (u *DefaultUserRoute) UpdateUser(c echo.Context) error {
	actor, cerr := utils.RequireActor(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := u.parseID(c, actor)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}

	user, err := u.UserService.UpdateUser(c.Request().Context(), actor, id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(actor, user))
}
