package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

type AttendanceHandler struct {
	store EventStore
	loc   *time.Location
}

func NewAttendanceHandler(store EventStore, loc *time.Location) *AttendanceHandler {
	return &AttendanceHandler{store: store, loc: loc}
}

// GET /api/attendance?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
// Raw event rows for an inclusive date range. Validation happens before any
// store call: missing or malformed dates are the caller's problem, not a
// store round-trip.
func (h *AttendanceHandler) List(c echo.Context) error {
	startRaw := strings.TrimSpace(c.QueryParam("start_date"))
	endRaw := strings.TrimSpace(c.QueryParam("end_date"))
	if startRaw == "" || endRaw == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_DATE_RANGE"})
	}

	start, err := time.ParseInLocation("2006-01-02", startRaw, h.loc)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}
	end, err := time.ParseInLocation("2006-01-02", endRaw, h.loc)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}
	if start.After(end) {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_RANGE"})
	}

	// end_date is inclusive, so query up to the following midnight.
	events, err := h.store.EventsBetween(c.Request().Context(), start, end.AddDate(0, 0, 1))
	if err != nil {
		return storeError(c, err)
	}
	if len(events) == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NO_RECORDS"})
	}
	return c.JSON(http.StatusOK, events)
}
