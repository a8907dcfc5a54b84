package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	HeaderIdempotencyKey    = "Idempotency-Key"
	HeaderIdempotentReplay  = "Idempotent-Replay"
	maxIdempotencyKeyLength = 255
)

// idempotencyKey reads the optional Idempotency-Key header. Oversized keys are
// rejected before any service call.
func idempotencyKey(c echo.Context) (string, error) {
	key := strings.TrimSpace(c.Request().Header.Get(HeaderIdempotencyKey))
	if len(key) > maxIdempotencyKeyLength {
		return "", echo.NewHTTPError(http.StatusBadRequest, "idempotency key too long")
	}
	return key, nil
}

// markReplay flags responses that were served from an earlier create.
func markReplay(c echo.Context, replayed bool) {
	if replayed {
		c.Response().Header().Set(HeaderIdempotentReplay, "true")
	}
}
