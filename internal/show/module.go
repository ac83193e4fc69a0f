// Package show provides the trade-show bounded context: exhibitor
// applications, derived exhibitors, stand sizes and partners.
package show

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"refuge_backend/internal/activities/audit"
	"refuge_backend/internal/auth"
	apphttp "refuge_backend/internal/http"
	"refuge_backend/internal/search"
	"refuge_backend/internal/show/handler"
	"refuge_backend/internal/show/repository"
	"refuge_backend/internal/show/service"
	"refuge_backend/platform/events"
	"refuge_backend/platform/httpkit"
	"refuge_backend/platform/logger"
	"refuge_backend/platform/validator"
)

// Module is the show bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the show module.
func NewModule(pool *pgxpool.Pool, fuzzy search.Fuzzy, recorder audit.Recorder, storage service.StorageFolders, bus events.Bus, cfg service.Config, log *logger.Logger, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, fuzzy, recorder, storage, bus, cfg, log)
	return &Module{handler: handler.New(svc, val), service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "show"
}

// RegisterRoutes mounts the show routes. Submission and the partner/stand
// catalogs are public; everything else is for organizers.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/show/applications", m.handler.Submit)
	ctx.V1.GET("/show/stand-sizes", m.handler.ListStandSizes)
	ctx.V1.GET("/show/partners", m.handler.SearchPartners)

	organizers := ctx.Protected.Group("")
	organizers.Use(httpkit.RequireAnyGroup(auth.GroupAdmin, auth.GroupShowOrganizer))
	organizers.GET("/show/applications", m.handler.SearchApplications)
	organizers.GET("/show/applications/:id", m.handler.GetApplication)
	organizers.PUT("/show/applications/:id/status", m.handler.UpdateStatus)

	organizers.GET("/show/exhibitors", m.handler.ListExhibitors)
	organizers.GET("/show/exhibitors/:id", m.handler.GetExhibitor)
	organizers.PUT("/show/exhibitors/:id/stand", m.handler.AssignStand)
	organizers.GET("/show/exhibitors/:id/badge", m.handler.Badge)

	organizers.GET("/show/partners/suggestions", m.handler.SuggestPartners)
	organizers.GET("/show/partners/:id", m.handler.GetPartner)
	organizers.POST("/show/partners", m.handler.CreatePartner)
	organizers.PUT("/show/partners/:id", m.handler.UpdatePartner)
	organizers.DELETE("/show/partners/:id", m.handler.DeletePartner)
}

var _ apphttp.Module = (*Module)(nil)
