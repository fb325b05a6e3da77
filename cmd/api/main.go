package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-scheduler/internal/audit"
	"github.com/BruksfildServices01/gym-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/gym-scheduler/internal/db"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/gym-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/gym-scheduler/internal/logging"
	"github.com/BruksfildServices01/gym-scheduler/internal/metrics"
	"github.com/BruksfildServices01/gym-scheduler/internal/routes"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/gym-scheduler/internal/usecase/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/validators"
)

// store is what both storage drivers provide.
type store interface {
	domain.Repository
	domain.TrainerDirectory
	domain.TxManager
	trainerSeeder
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logging.New("info", "production")
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	log := logging.New(cfg.LogLevel, cfg.Env)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := validators.RegisterWithGin(); err != nil {
		log.Fatal().Err(err).Msg("failed to register validators")
	}

	// ======================================================
	// STORAGE
	// ======================================================
	var (
		db   *gorm.DB
		repo store
	)

	switch cfg.Storage {
	case "memory":
		repo = infraRepo.NewMemory()
		log.Warn().Msg("using in-memory storage, data is lost on restart")
	default:
		db, err = dbpkg.NewDB(cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open database")
		}
		repo = infraRepo.NewAppointmentGormRepository(db)
	}

	if cfg.SeedFile != "" {
		seeds, err := config.LoadSeed(cfg.SeedFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to read seed file")
		}
		if err := seedTrainers(context.Background(), repo, seeds); err != nil {
			log.Fatal().Err(err).Msg("failed to seed trainers")
		}
		log.Info().Int("trainers", len(seeds)).Msg("seeded trainers")
	}

	// ======================================================
	// CALENDAR CACHE
	// ======================================================
	var calendarCache ucAppointment.CalendarCache
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid REDIS_URL")
		}
		defer client.Close()
		calendarCache = cache.NewRedisCalendarCache(client, cfg.CalendarCacheTTL, log)
	} else {
		calendarCache = cache.NewLRUCalendarCache(cfg.CalendarCacheSize, cfg.CalendarCacheTTL)
	}

	// ======================================================
	// METRICS + AUDIT
	// ======================================================
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.New(registry, "gym_scheduler")

	var auditStore audit.Store = audit.NewLogStore(log)
	if db != nil {
		auditStore = audit.New(db)
	}
	auditDispatcher := audit.NewDispatcher(auditStore, log)

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:   cfg,
		Logger:   log,
		DB:       db,
		Gatherer: registry,
		Metrics:  collector,
		UseCases: ucAppointment.Deps{
			Repo:     repo,
			Trainers: repo,
			Tx:       repo,
			Cache:    calendarCache,
			Clock:    timezone.NewSystemClock(cfg.Timezone),
			Audit:    auditDispatcher,
			Metrics:  collector,
			Logger:   log.With().Str("component", "appointments").Logger(),
			Policy:   cfg.Scheduling.Policy(),
		},
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("storage", cfg.Storage).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdown(srv, auditDispatcher, log)
}

func shutdown(srv *http.Server, dispatcher *audit.Dispatcher, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	dispatcher.Close()
	log.Info().Msg("server stopped gracefully")
}
