package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bgaze-labs/bgaze/adapters/ginutil"
	"github.com/bgaze-labs/bgaze/core"
)

func HandleSendEmailOTPPOST(svc *core.Service, rl ginutil.RateLimiter) gin.HandlerFunc {
	type sendReq struct {
		Email string `json:"email"`
	}
	return func(c *gin.Context) {
		if !ginutil.AllowNamed(c, rl, ginutil.RLSendEmailOTP) {
			ginutil.TooMany(c)
			return
		}
		var req sendReq
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
			ginutil.BadRequest(c, "missing_email")
			return
		}
		if err := svc.IssueEmailOTP(c.Request.Context(), req.Email); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
