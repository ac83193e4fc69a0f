// Package animals provides the shelter animal bounded context: records,
// photos, list search and the pick-up location suggestion fallback.
package animals

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"refuge_backend/internal/activities/audit"
	"refuge_backend/internal/animals/handler"
	"refuge_backend/internal/animals/repository"
	"refuge_backend/internal/animals/service"
	"refuge_backend/internal/auth"
	apphttp "refuge_backend/internal/http"
	"refuge_backend/internal/search"
	"refuge_backend/platform/events"
	"refuge_backend/platform/httpkit"
	"refuge_backend/platform/logger"
	"refuge_backend/platform/validator"
)

// Module is the animals bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the animals module.
func NewModule(pool *pgxpool.Pool, fuzzy search.Fuzzy, recorder audit.Recorder, storage service.PhotoStorage, photoBucket string, takenAt service.TakenAtExtractor, bus events.Bus, log *logger.Logger, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, fuzzy, recorder, storage, photoBucket, takenAt, bus, log)
	return &Module{handler: handler.New(svc, val), service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "animals"
}

// Service returns the animals service for use by adapters.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts the animal routes. Mutations require the animal
// manager or admin group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/animals", m.handler.Search)
	ctx.Protected.GET("/animals/pick-up-locations/suggestions", m.handler.SuggestPickUpLocations)
	ctx.Protected.GET("/animals/:id", m.handler.Get)

	managers := ctx.Protected.Group("")
	managers.Use(httpkit.RequireAnyGroup(auth.GroupAdmin, auth.GroupAnimalManager))
	managers.POST("/animals", m.handler.Create)
	managers.PUT("/animals/:id", m.handler.Update)
	managers.DELETE("/animals/:id", m.handler.Delete)
	managers.POST("/animals/:id/photos", m.handler.UploadPhoto)
	managers.DELETE("/animals/:id/photos/:photoId", m.handler.DeletePhoto)
}

var _ apphttp.Module = (*Module)(nil)
