package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bgaze-labs/bgaze/adapters/ginutil"
	"github.com/bgaze-labs/bgaze/core"
)

// HandleAutoLoginGET resumes a session: the middleware has already validated
// the token, so this just returns the profiles tied to the token's e-mail.
func HandleAutoLoginGET(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ginutil.CtxSessionEmail)
		profiles, err := svc.ProfilesByEmail(c.Request.Context(), email)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": email, "profiles": profiles})
	}
}
