package ginutil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RateLimiter is a minimal interface used by adapters.
type RateLimiter interface {
	AllowNamed(bucket string, key string) (bool, error)
}

// Bucket names used by the OTP endpoints.
const (
	RLSendEmailOTP   = "send_email_otp"
	RLVerifyEmailOTP = "verify_email_otp"
)

// CtxSessionEmail is the gin context key under which the session middleware
// stores the verified e-mail for downstream handlers.
const CtxSessionEmail = "session.email"

// AllowNamed applies a per-IP limit using the provided bucket name.
// It fails open on limiter error.
func AllowNamed(c *gin.Context, rl RateLimiter, bucket string) bool {
	if rl == nil {
		return true
	}
	key := "bgaze:rl:" + bucket + ":ip:" + c.ClientIP()
	ok, err := rl.AllowNamed(bucket, key)
	if err != nil {
		return true
	}
	return ok
}

// Error helpers
func SendErr(c *gin.Context, status int, code string) {
	c.AbortWithStatusJSON(status, gin.H{"error": code})
}
func BadRequest(c *gin.Context, code string)   { SendErr(c, http.StatusBadRequest, code) }
func Unauthorized(c *gin.Context, code string) { SendErr(c, http.StatusUnauthorized, code) }
func Forbidden(c *gin.Context, code string)    { SendErr(c, http.StatusForbidden, code) }
func NotFound(c *gin.Context, code string)     { SendErr(c, http.StatusNotFound, code) }
func Conflict(c *gin.Context, code string)     { SendErr(c, http.StatusConflict, code) }
func TooMany(c *gin.Context)                   { SendErr(c, http.StatusTooManyRequests, "rate_limited") }
func ServerErr(c *gin.Context, code string)    { SendErr(c, http.StatusInternalServerError, code) }

// ServerErrWithLog logs the underlying error before responding with a generic
// server error, so internal detail never reaches the client.
func ServerErrWithLog(c *gin.Context, code string, err error, message string) {
	entry := log.WithContext(c.Request.Context()).WithFields(log.Fields{
		"code":   code,
		"path":   c.FullPath(),
		"method": c.Request.Method,
	})
	if err != nil {
		entry = entry.WithError(err)
	}
	if strings.TrimSpace(message) == "" {
		message = "bgaze server error"
	}
	entry.Error(message)
	ServerErr(c, code)
}

// BearerToken extracts a Bearer token from an Authorization header value.
func BearerToken(authorization string) string {
	if authorization == "" {
		return ""
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
