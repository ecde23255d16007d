package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Store reads/writes are attempted once, never retried; a failure surfaces
// to the caller with the underlying message.
func storeError(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
}
