package handler

import (
	"jobboard/cmd/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

type Routes struct {
	Users        *DefaultUserRoute
	Skills       *DefaultSkillRoute
	UserSkills   *DefaultUserSkillRoute
	Jobs         *DefaultJobRoute
	Applications *DefaultApplicationRoute
}

// Mount registers the routes of every entity under g.
func (r *Routes) Mount(g *echo.Group) {
	mount(g, "/users", r.Users.lifecycleRoute, r.Users.CreateUser, r.Users.UpdateUser)
	mount(g, "/skills", r.Skills.lifecycleRoute, r.Skills.CreateSkill, r.Skills.UpdateSkill)
	mount(g, "/user-skills", r.UserSkills.lifecycleRoute, r.UserSkills.CreateUserSkill, r.UserSkills.UpdateUserSkill)
	mount(g, "/jobs", r.Jobs.lifecycleRoute, r.Jobs.CreateJob, r.Jobs.UpdateJob)
	mount(g, "/applications", r.Applications.lifecycleRoute, r.Applications.CreateApplication, r.Applications.UpdateApplication)
}

func mount[P entity.Entity, R any](g *echo.Group, path string, l *lifecycleRoute[P, R], create, update echo.HandlerFunc) {
	g.GET(path, l.List)
	g.GET(path+"/:id", l.Get)
	g.POST(path, create)
	g.PATCH(path+"/:id", update)
	g.DELETE(path+"/:id", l.Delete)
	g.POST(path+"/:id/restore", l.Restore)
}
