// Package users provides the member directory bounded context: accounts,
// group management and the manager autocomplete.
package users

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"refuge_backend/internal/activities/audit"
	apphttp "refuge_backend/internal/http"
	"refuge_backend/internal/search"
	"refuge_backend/internal/users/handler"
	"refuge_backend/internal/users/repository"
	"refuge_backend/internal/users/service"
	"refuge_backend/platform/logger"
	"refuge_backend/platform/validator"
)

// Module is the users bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the users module.
func NewModule(pool *pgxpool.Pool, fuzzy search.Fuzzy, recorder audit.Recorder, log *logger.Logger, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, fuzzy, recorder, log)
	return &Module{handler: handler.New(svc, val), service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "users"
}

// Service returns the users service for use by adapters.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts the member directory routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/users", m.handler.Search)
	ctx.Protected.GET("/users/suggestions", m.handler.Suggest)
	ctx.Protected.GET("/users/:id", m.handler.Get)

	ctx.Admin.POST("/users", m.handler.Create)
	ctx.Admin.PUT("/users/:id", m.handler.Update)
	ctx.Admin.PUT("/users/:id/groups", m.handler.SetGroups)
	ctx.Admin.POST("/users/:id/archive", m.handler.Archive)
	ctx.Admin.POST("/users/:id/restore", m.handler.Restore)
}

var _ apphttp.Module = (*Module)(nil)
