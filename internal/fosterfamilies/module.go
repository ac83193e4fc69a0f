// Package fosterfamilies provides the host family bounded context.
package fosterfamilies

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"refuge_backend/internal/activities/audit"
	"refuge_backend/internal/auth"
	"refuge_backend/internal/fosterfamilies/handler"
	"refuge_backend/internal/fosterfamilies/repository"
	"refuge_backend/internal/fosterfamilies/service"
	apphttp "refuge_backend/internal/http"
	"refuge_backend/internal/search"
	"refuge_backend/platform/httpkit"
	"refuge_backend/platform/logger"
	"refuge_backend/platform/validator"
)

// Module is the foster families bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the foster families module.
func NewModule(pool *pgxpool.Pool, fuzzy search.Fuzzy, recorder audit.Recorder, log *logger.Logger, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, fuzzy, recorder, log)
	return &Module{handler: handler.New(svc, val), service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "fosterfamilies"
}

// RegisterRoutes mounts the foster family routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/foster-families", m.handler.Search)
	ctx.Protected.GET("/foster-families/suggestions", m.handler.Suggest)
	ctx.Protected.GET("/foster-families/:id", m.handler.Get)

	managers := ctx.Protected.Group("")
	managers.Use(httpkit.RequireAnyGroup(auth.GroupAdmin, auth.GroupAnimalManager))
	managers.POST("/foster-families", m.handler.Create)
	managers.PUT("/foster-families/:id", m.handler.Update)
	managers.DELETE("/foster-families/:id", m.handler.Delete)
}

var _ apphttp.Module = (*Module)(nil)
