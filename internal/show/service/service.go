// Package service implements the show use cases. Application status moves
// through the pure transition function in domain; this package executes the
// side-effect commands it returns.
package service

import (
	"context"

	"refuge_backend/internal/activities/audit"
	"refuge_backend/internal/search"
	"refuge_backend/internal/show/repository"
	"refuge_backend/platform/config"
	"refuge_backend/platform/events"
	"refuge_backend/platform/logger"
)

const (
	// indexApplications is the fuzzy index holding application documents.
	indexApplications = "exhibitorApplications"
	// indexPartners is the fuzzy index holding partner documents.
	indexPartners = "partners"
)

// StorageFolders provisions per-exhibitor document folders. Folder creation
// is best effort: a failure never rolls back a validation.
type StorageFolders interface {
	EnsureFolder(ctx context.Context, bucket, key string) error
}

type Config interface {
	config.ShowConfig
	GetMinioBucketShowDocuments() string
}

type Service struct {
	repo     *repository.Repository
	fuzzy    search.Fuzzy
	recorder audit.Recorder
	storage  StorageFolders
	bus      events.Bus
	cfg      Config
	log      *logger.Logger
}

func New(repo *repository.Repository, fuzzy search.Fuzzy, recorder audit.Recorder, storage StorageFolders, bus events.Bus, cfg Config, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		fuzzy:    fuzzy,
		recorder: recorder,
		storage:  storage,
		bus:      bus,
		cfg:      cfg,
		log:      log,
	}
}
