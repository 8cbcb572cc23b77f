package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/bgaze-labs/bgaze/adapters/ginutil"
	"github.com/bgaze-labs/bgaze/core"
)

// respondErr maps service-layer errors onto status codes. Anything outside
// the known taxonomy is logged and surfaced as a generic 500.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrValidation):
		ginutil.BadRequest(c, "invalid_request")
	case errors.Is(err, core.ErrNoChange):
		ginutil.BadRequest(c, "no_change")
	case errors.Is(err, core.ErrDuplicateKey):
		ginutil.Conflict(c, "duplicate_id_name")
	case errors.Is(err, core.ErrNotFound):
		ginutil.NotFound(c, "not_found")
	case errors.Is(err, core.ErrDeliveryFailed):
		ginutil.ServerErrWithLog(c, "mail_delivery_failed", err, "failed to send OTP mail")
	default:
		ginutil.ServerErrWithLog(c, "internal_error", err, "unhandled upstream failure")
	}
}
