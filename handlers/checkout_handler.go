package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Intelligent-Systems-Design-Lab-SRM/attendance-backend/services"
)

type CheckoutHandler struct {
	closer *services.Closer
}

func NewCheckoutHandler(closer *services.Closer) *CheckoutHandler {
	return &CheckoutHandler{closer: closer}
}

// POST /force-checkout
// Manual closeout. Partial write failures still count as success at the
// HTTP level; the closer is best-effort by contract.
func (h *CheckoutHandler) Force(c echo.Context) error {
	report, err := h.closer.CloseOpenSessions(c.Request().Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": fmt.Sprintf("%d users force-checked out.", report.Succeeded),
	})
}

// GET /cron/auto-checkout
// Scheduled closeout entry point (token-guarded in routes). Returns the full
// per-identity report so the cron log captures partial failures.
func (h *CheckoutHandler) Auto(c echo.Context) error {
	report, err := h.closer.CloseOpenSessions(c.Request().Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}
