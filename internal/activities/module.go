// Package activities wires the audit trail bounded context: the audit
// recorder used by mutating services and the admin-only log search.
package activities

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"refuge_backend/internal/activities/audit"
	"refuge_backend/internal/activities/handler"
	"refuge_backend/internal/activities/repository"
	"refuge_backend/internal/activities/service"
	apphttp "refuge_backend/internal/http"
	"refuge_backend/platform/logger"
)

// Module is the activity log bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the activities module.
func NewModule(pool *pgxpool.Pool, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	return &Module{handler: handler.New(svc), service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "activities"
}

// Recorder exposes the audit writer for other modules' services.
func (m *Module) Recorder() audit.Recorder {
	return m.service
}

// RegisterRoutes mounts the audit trail routes. The log is admin-only.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Admin.GET("/activities", m.handler.Search)
}

var _ apphttp.Module = (*Module)(nil)
