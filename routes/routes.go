package routes

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Intelligent-Systems-Design-Lab-SRM/attendance-backend/config"
	"github.com/Intelligent-Systems-Design-Lab-SRM/attendance-backend/handlers"
	"github.com/Intelligent-Systems-Design-Lab-SRM/attendance-backend/middlewares"
	"github.com/Intelligent-Systems-Design-Lab-SRM/attendance-backend/services"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config, store handlers.EventStore, closer *services.Closer, loc *time.Location) {
	ana := handlers.NewAnalyticsHandler(store, loc)
	att := handlers.NewAttendanceHandler(store, loc)
	chk := handlers.NewCheckoutHandler(closer)

	e.GET("/health", handlers.Health)

	// ===== Analytics (read-only, derived per request) =====
	e.GET("/analytics/current", ana.Current)
	e.GET("/analytics/weekly", ana.Weekly)
	e.GET("/analytics/rush-hours", ana.RushHours)

	// ===== Raw event log =====
	e.GET("/api/attendance", att.List)

	// ===== Checkout =====
	e.POST("/force-checkout", chk.Force)

	// Scheduled entry point, guarded by the shared cron secret.
	cron := e.Group("/cron", middlewares.RequireCronToken(cfg.CronToken))
	cron.GET("/auto-checkout", chk.Auto)
}
