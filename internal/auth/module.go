package auth

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"refuge_backend/internal/auth/handler"
	"refuge_backend/internal/auth/repository"
	"refuge_backend/internal/auth/service"
	apphttp "refuge_backend/internal/http"
	"refuge_backend/platform/config"
	"refuge_backend/platform/logger"
	"refuge_backend/platform/validator"
)

// Module is the auth bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the auth module with all its dependencies.
func NewModule(pool *pgxpool.Pool, cfg config.AuthConfig, log *logger.Logger, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cfg, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// Service returns the auth service for use by adapters.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts auth routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Public sign-in with stricter rate limiting
	authGroup := ctx.V1.Group("/auth")
	authGroup.Use(ctx.AuthRateLimiter.RateLimit())
	m.handler.RegisterRoutes(authGroup)

	ctx.Protected.GET("/auth/me", m.handler.GetMe)
	ctx.Protected.POST("/auth/password", m.handler.ChangePassword)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
