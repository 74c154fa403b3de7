package handler

import (
	"context"
	"jobboard/cmd/internal/contract"
	"jobboard/cmd/internal/domain/entity"
	"jobboard/cmd/internal/utils"
	"jobboard/cmd/internal/utils/apierror"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// LifecycleService is the read and lifecycle surface shared by every entity.
type LifecycleService[P entity.Entity] interface {
	Get(ctx context.Context, actor *entity.Actor, id uuid.UUID, view entity.View) (P, error)
	List(ctx context.Context, actor *entity.Actor, q entity.Query) (*entity.Paged[P], error)
	SoftDelete(ctx context.Context, actor *entity.Actor, id uuid.UUID) (P, error)
	Restore(ctx context.Context, actor *entity.Actor, id uuid.UUID) (P, error)
}

// lifecycleRoute serves get, list, delete and restore for one entity.
// Reads render denials as 404, mutations as 403.
type lifecycleRoute[P entity.Entity, R any] struct {
	service LifecycleService[P]
	render  func(actor *entity.Actor, row P) R

	// filters are the query parameters List forwards as exact column matches.
	filters []string

	// selfAlias lets "@me" stand for the caller's own id.
	selfAlias bool
}

func (l *lifecycleRoute[P, R]) Get(c echo.Context) error {
	actor, cerr := utils.GetActorFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := l.parseID(c, actor)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	view := entity.ParseView(c.QueryParam("view"))
	row, err := l.service.Get(c.Request().Context(), actor, id, view)
	if err != nil {
		apierr := apierror.FromReadError(err)
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, l.render(actor, row))
}

func (l *lifecycleRoute[P, R]) List(c echo.Context) error {
	actor, cerr := utils.GetActorFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	q, perr := l.parseQuery(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	page, err := l.service.List(c.Request().Context(), actor, q)
	if err != nil {
		apierr := apierror.FromError(err)
		return c.JSON(apierr.Code(), apierr)
	}

	items := make([]R, len(page.Items))
	for i, row := range page.Items {
		items[i] = l.render(actor, row)
	}

	resp := &contract.PageResponse[R]{
		Items:      items,
		Page:       page.Page,
		PerPage:    page.PerPage,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
	return c.JSON(http.StatusOK, resp)
}

func (l *lifecycleRoute[P, R]) Delete(c echo.Context) error {
	return l.transition(c, l.service.SoftDelete)
}

func (l *lifecycleRoute[P, R]) Restore(c echo.Context) error {
	return l.transition(c, l.service.Restore)
}

func (l *lifecycleRoute[P, R]) transition(c echo.Context, op func(context.Context, *entity.Actor, uuid.UUID) (P, error)) error {
	actor, cerr := utils.RequireActor(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := l.parseID(c, actor)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	row, err := op(c.Request().Context(), actor, id)
	if err != nil {
		apierr := apierror.FromError(err)
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, l.render(actor, row))
}

func (l *lifecycleRoute[P, R]) parseID(c echo.Context, actor *entity.Actor) (uuid.UUID, apierror.ErrorResponse) {
	return parseID(c, actor, l.selfAlias)
}

func parseID(c echo.Context, actor *entity.Actor, selfAlias bool) (uuid.UUID, apierror.ErrorResponse) {
	raw := strings.TrimSpace(c.Param("id"))
	if selfAlias && raw == "@me" {
		if !actor.Authenticated() {
			return uuid.Nil, apierror.UnauthorizedError
		}
		return actor.ID, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apierror.InvalidIDError
	}
	return id, nil
}

func (l *lifecycleRoute[P, R]) parseQuery(c echo.Context) (entity.Query, apierror.ErrorResponse) {
	q := entity.Query{View: entity.ParseView(c.QueryParam("view"))}

	var err apierror.ErrorResponse
	if q.Page, err = intParam(c, "page"); err != nil {
		return q, err
	}

	if q.PerPage, err = intParam(c, "per_page"); err != nil {
		return q, err
	}

	for _, name := range l.filters {
		val := strings.TrimSpace(c.QueryParam(name))
		if val == "" {
			continue
		}

		if q.Where == nil {
			q.Where = make(map[string]any)
		}
		q.Where[name] = val
	}
	return q, nil
}

func intParam(c echo.Context, name string) (int, apierror.ErrorResponse) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierror.NewInvalidParamTypeError(name, "int")
	}
	return val, nil
}

// bindError renders a failed c.Bind.
func bindError(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
}

// serviceError renders an error returned by a mutation.
func serviceError(c echo.Context, err error) error {
	apierr := apierror.FromError(err)
	return c.JSON(apierr.Code(), apierr)
}
