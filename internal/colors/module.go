// Package colors provides the coat color referential bounded context.
package colors

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"refuge_backend/internal/activities/audit"
	"refuge_backend/internal/auth"
	"refuge_backend/internal/colors/handler"
	"refuge_backend/internal/colors/repository"
	"refuge_backend/internal/colors/service"
	apphttp "refuge_backend/internal/http"
	"refuge_backend/internal/search"
	"refuge_backend/platform/httpkit"
	"refuge_backend/platform/logger"
	"refuge_backend/platform/validator"
)

// Module is the colors bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the colors module.
func NewModule(pool *pgxpool.Pool, fuzzy search.Fuzzy, recorder audit.Recorder, log *logger.Logger, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, fuzzy, recorder, log)
	return &Module{handler: handler.New(svc, val), service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "colors"
}

// RegisterRoutes mounts the color routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/colors", m.handler.Search)
	ctx.Protected.GET("/colors/suggestions", m.handler.Suggest)
	ctx.Protected.GET("/colors/:id", m.handler.Get)

	managers := ctx.Protected.Group("")
	managers.Use(httpkit.RequireAnyGroup(auth.GroupAdmin, auth.GroupAnimalManager))
	managers.POST("/colors", m.handler.Create)
	managers.PUT("/colors/:id", m.handler.Update)
	managers.DELETE("/colors/:id", m.handler.Delete)
}

var _ apphttp.Module = (*Module)(nil)
