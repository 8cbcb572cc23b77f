package bgazegin

import (
	"github.com/gin-gonic/gin"

	"github.com/bgaze-labs/bgaze/adapters/ginutil"
	"github.com/bgaze-labs/bgaze/core"
)

// SessionCookieName is the httpOnly cookie carrying the session token.
const SessionCookieName = "bgaze_token"

// SessionRequired validates the session token from the Authorization header
// or, failing that, the bgaze_token cookie. The header takes precedence. A
// missing token is 401; a present but invalid or expired one is 403.
func SessionRequired(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ginutil.BearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = c.Cookie(SessionCookieName)
		}
		if token == "" {
			ginutil.Unauthorized(c, "missing_token")
			return
		}
		claims, err := svc.ParseSessionToken(token)
		if err != nil {
			ginutil.Forbidden(c, "invalid_token")
			return
		}
		c.Set(ginutil.CtxSessionEmail, claims.Email)
		c.Next()
	}
}

// SessionEmail returns the e-mail attached by SessionRequired, or "".
func SessionEmail(c *gin.Context) string {
	return c.GetString(ginutil.CtxSessionEmail)
}
