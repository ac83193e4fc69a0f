// Package breeds provides the breed referential bounded context.
package breeds

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"refuge_backend/internal/activities/audit"
	"refuge_backend/internal/auth"
	"refuge_backend/internal/breeds/handler"
	"refuge_backend/internal/breeds/repository"
	"refuge_backend/internal/breeds/service"
	apphttp "refuge_backend/internal/http"
	"refuge_backend/internal/search"
	"refuge_backend/platform/httpkit"
	"refuge_backend/platform/logger"
	"refuge_backend/platform/validator"
)

// Module is the breeds bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the breeds module.
func NewModule(pool *pgxpool.Pool, fuzzy search.Fuzzy, recorder audit.Recorder, log *logger.Logger, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, fuzzy, recorder, log)
	return &Module{handler: handler.New(svc, val), service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "breeds"
}

// RegisterRoutes mounts the breed routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/breeds", m.handler.Search)
	ctx.Protected.GET("/breeds/suggestions", m.handler.Suggest)
	ctx.Protected.GET("/breeds/:id", m.handler.Get)

	managers := ctx.Protected.Group("")
	managers.Use(httpkit.RequireAnyGroup(auth.GroupAdmin, auth.GroupAnimalManager))
	managers.POST("/breeds", m.handler.Create)
	managers.PUT("/breeds/:id", m.handler.Update)
	managers.DELETE("/breeds/:id", m.handler.Delete)
}

var _ apphttp.Module = (*Module)(nil)
