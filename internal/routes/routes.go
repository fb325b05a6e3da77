package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-scheduler/internal/config"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/handlers"
	"github.com/BruksfildServices01/gym-scheduler/internal/metrics"
	"github.com/BruksfildServices01/gym-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/gym-scheduler/internal/usecase/appointment"
)

// Deps is everything the HTTP layer needs. DB is nil with in-memory storage,
// which disables the audit log listing.
type Deps struct {
	Config   *config.Config
	Logger   zerolog.Logger
	DB       *gorm.DB
	Gatherer prometheus.Gatherer
	Metrics  *metrics.Collector
	UseCases ucAppointment.Deps
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(deps.UseCases)
	availabilityHandler := handlers.NewAvailabilityHandler(deps.UseCases)

	// ======================================================
	// OPERATIONAL
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.MetricsEnabled && deps.Gatherer != nil {
		r.GET(cfg.MetricsPath, gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	member := middleware.RequireRole(domain.RoleMember)
	trainer := middleware.RequireRole(domain.RoleTrainer)
	memberOrTrainer := middleware.RequireRole(domain.RoleMember, domain.RoleTrainer)
	staff := middleware.RequireRole(domain.RoleTrainer, domain.RoleAdmin)

	// ------------------------------
	// TRAINERS
	// ------------------------------
	api.PUT("/trainers/me/availability", trainer, availabilityHandler.UpdateMine)
	api.GET("/trainers/:id/availability", availabilityHandler.Get)
	api.GET("/trainers/:id/calendar", member, availabilityHandler.Calendar)

	// ------------------------------
	// APPOINTMENTS
	// ------------------------------
	api.POST("/appointments", member, appointmentHandler.Create)
	api.GET("/appointments", appointmentHandler.List)
	api.GET("/appointments/:id", appointmentHandler.Get)
	api.PATCH("/appointments/:id/reschedule", member, appointmentHandler.Reschedule)
	api.PATCH("/appointments/:id/cancel", memberOrTrainer, appointmentHandler.Cancel)
	api.PATCH("/appointments/:id/confirm", trainer, appointmentHandler.Confirm)
	api.PATCH("/appointments/:id/complete", trainer, appointmentHandler.Complete)

	// ------------------------------
	// AUDIT
	// ------------------------------
	if deps.DB != nil {
		auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB)
		api.GET("/audit-logs", staff, auditLogsHandler.List)
	}
}
