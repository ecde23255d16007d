package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Intelligent-Systems-Design-Lab-SRM/attendance-backend/analytics"
	"github.com/Intelligent-Systems-Design-Lab-SRM/attendance-backend/models"
)

// EventStore is the read side of the store gateway used by the handlers.
type EventStore interface {
	EventsOn(ctx context.Context, t time.Time) ([]models.AttendanceEvent, error)
	EventsBetween(ctx context.Context, from, to time.Time) ([]models.AttendanceEvent, error)
}

type AnalyticsHandler struct {
	store EventStore
	loc   *time.Location
	now   func() time.Time
}

func NewAnalyticsHandler(store EventStore, loc *time.Location) *AnalyticsHandler {
	return &AnalyticsHandler{store: store, loc: loc, now: time.Now}
}

// GET /analytics/current
// Who is in the lab right now, derived by replaying today's events.
func (h *AnalyticsHandler) Current(c echo.Context) error {
	events, err := h.store.EventsOn(c.Request().Context(), h.now())
	if err != nil {
		return storeError(c, err)
	}
	today := analytics.FilterDay(events, h.now(), h.loc)
	present := analytics.PresentSet(today)

	return c.JSON(http.StatusOK, map[string]any{
		"count": len(present),
		"users": present,
	})
}

// GET /analytics/weekly
// Distinct occupants per day over the trailing 7 days.
func (h *AnalyticsHandler) Weekly(c echo.Context) error {
	now := h.now()
	events, err := h.store.EventsBetween(c.Request().Context(), now.AddDate(0, 0, -7), now)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, analytics.WeeklyOccupancy(events, h.loc))
}

// GET /analytics/rush-hours
// Today's check-ins bucketed by hour, busiest first.
func (h *AnalyticsHandler) RushHours(c echo.Context) error {
	events, err := h.store.EventsOn(c.Request().Context(), h.now())
	if err != nil {
		return storeError(c, err)
	}
	today := analytics.FilterDay(events, h.now(), h.loc)
	return c.JSON(http.StatusOK, analytics.RushHours(today, h.loc))
}
