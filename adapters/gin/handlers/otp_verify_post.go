package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bgaze-labs/bgaze/adapters/ginutil"
	"github.com/bgaze-labs/bgaze/core"
)

// sessionCookieName mirrors bgazegin.SessionCookieName; duplicated here to
// avoid an import cycle with the mounting package.
const sessionCookieName = "bgaze_token"

// HandleVerifyEmailOTPPOST consumes the pending code. A wrong or expired
// code is a business outcome, not an HTTP error: the response is 200 with
// verified=false. On success the session token is returned in the body and
// set as an httpOnly cookie.
func HandleVerifyEmailOTPPOST(svc *core.Service, rl ginutil.RateLimiter) gin.HandlerFunc {
	type verifyReq struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	return func(c *gin.Context) {
		if !ginutil.AllowNamed(c, rl, ginutil.RLVerifyEmailOTP) {
			ginutil.TooMany(c)
			return
		}
		var req verifyReq
		if err := c.ShouldBindJSON(&req); err != nil ||
			strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.OTP) == "" {
			ginutil.BadRequest(c, "missing_fields")
			return
		}
		token, verified, err := svc.VerifyEmailOTP(c.Request.Context(), req.Email, req.OTP)
		if err != nil {
			respondErr(c, err)
			return
		}
		if !verified {
			c.JSON(http.StatusOK, gin.H{"verified": false})
			return
		}
		setSessionCookie(c, svc, token)
		c.JSON(http.StatusOK, gin.H{"verified": true, "token": token})
	}
}

func setSessionCookie(c *gin.Context, svc *core.Service, token string) {
	secure := !core.IsDevEnvironment()
	if secure {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	maxAge := int(svc.Options().SessionTTL.Seconds())
	c.SetCookie(sessionCookieName, token, maxAge, "/", "", secure, true)
}
