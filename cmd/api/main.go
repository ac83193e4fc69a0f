package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"refuge_backend/internal/activities"
	"refuge_backend/internal/adapters/storage"
	"refuge_backend/internal/animals"
	"refuge_backend/internal/auth"
	"refuge_backend/internal/breeds"
	"refuge_backend/internal/colors"
	"refuge_backend/internal/fosterfamilies"
	"refuge_backend/internal/globalsearch"
	apphttp "refuge_backend/internal/http"
	"refuge_backend/internal/http/router"
	"refuge_backend/internal/notification"
	"refuge_backend/internal/scheduler"
	"refuge_backend/internal/search"
	"refuge_backend/internal/show"
	"refuge_backend/internal/users"
	"refuge_backend/platform/config"
	"refuge_backend/platform/db"
	"refuge_backend/platform/events"
	"refuge_backend/platform/logger"
	"refuge_backend/platform/searchindex"
	"refuge_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

const storageBucketEnsureErrPrefix = "failed to ensure storage bucket exists: "
const storageBucketEnsureErrMsg = "failed to ensure storage bucket exists"

// ensureBucket wraps the retry logic for verifying a MinIO bucket exists.
func ensureBucket(ctx context.Context, log *logger.Logger, storageSvc *storage.MinIOService, name, bucket string) {
	if err := withRetry(ctx, log, "ensure "+name+" bucket", 5, 2*time.Second, func() error {
		return storageSvc.EnsureBucketExists(ctx, bucket)
	}); err != nil {
		log.Error(storageBucketEnsureErrMsg, "error", err, "bucket", bucket)
		panic(storageBucketEnsureErrPrefix + err.Error())
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Fuzzy ranking index. A nil client degrades text search to empty
	// results instead of failing requests.
	fuzzy := initFuzzy(cfg, log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// Storage service for animal photos and exhibitor documents (MinIO)
	storageSvc, err := storage.NewMinIOService(cfg)
	if err != nil {
		log.Error("failed to initialize storage service", "error", err)
		panic("failed to initialize storage service: " + err.Error())
	}
	ensureBucket(ctx, log, storageSvc, "animal-photos", cfg.GetMinioBucketAnimalPhotos())
	ensureBucket(ctx, log, storageSvc, "show-documents", cfg.GetMinioBucketShowDocuments())
	log.Info(
		"storage service initialized",
		"animalPhotosBucket", cfg.GetMinioBucketAnimalPhotos(),
		"showDocumentsBucket", cfg.GetMinioBucketShowDocuments(),
	)

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// Notification module subscribes to domain events and writes outbox rows
	// (not HTTP-facing). A separate worker process delivers the emails.
	notificationModule := notification.NewModule(pool, log)
	notificationModule.RegisterHandlers(eventBus)

	// The outbox dispatcher hands pending notifications to the task queue.
	if dispatcher := initOutboxDispatcher(cfg, pool, log); dispatcher != nil {
		defer func() { _ = dispatcher.Close() }()
		go dispatcher.Run(ctx)
	}

	// Activity log first: every other module records audit entries through it.
	activitiesModule := activities.NewModule(pool, log)
	recorder := activitiesModule.Recorder()

	authModule := auth.NewModule(pool, cfg, log, val)
	usersModule := users.NewModule(pool, fuzzy, recorder, log, val)
	animalsModule := animals.NewModule(pool, fuzzy, recorder, storageSvc, cfg.GetMinioBucketAnimalPhotos(), storage.ExtractTakenAt, eventBus, log, val)
	breedsModule := breeds.NewModule(pool, fuzzy, recorder, log, val)
	colorsModule := colors.NewModule(pool, fuzzy, recorder, log, val)
	fosterFamiliesModule := fosterfamilies.NewModule(pool, fuzzy, recorder, log, val)
	showModule := show.NewModule(pool, fuzzy, recorder, storageSvc, eventBus, cfg, log, val)
	globalSearchModule := globalsearch.NewModule(fuzzy, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			authModule,
			usersModule,
			animalsModule,
			breedsModule,
			colorsModule,
			fosterFamiliesModule,
			showModule,
			globalSearchModule,
			activitiesModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initFuzzy(cfg *config.Config, log *logger.Logger) search.Fuzzy {
	if !cfg.IsSearchIndexEnabled() {
		log.Warn("SEARCH_INDEX_URL not configured; text search degraded to empty results")
		return search.NewIndexFuzzy(nil)
	}

	client := searchindex.NewClient(searchindex.Config{
		BaseURL: cfg.GetSearchIndexURL(),
		APIKey:  cfg.GetSearchIndexAPIKey(),
	})
	log.Info("search index client initialized", "url", cfg.GetSearchIndexURL())
	return search.NewIndexFuzzy(client)
}

func initOutboxDispatcher(cfg config.SchedulerConfig, pool *pgxpool.Pool, log *logger.Logger) *scheduler.OutboxDispatcher {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; notification delivery disabled")
		return nil
	}

	dispatcher, err := scheduler.NewOutboxDispatcher(cfg, pool, log)
	if err != nil {
		log.Error("failed to initialize outbox dispatcher", "error", err)
		return nil
	}

	return dispatcher
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
