package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bgaze-labs/bgaze/adapters/ginutil"
	"github.com/bgaze-labs/bgaze/core"
)

func HandleProfileUpdatePUT(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var upd core.ProfileUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			ginutil.BadRequest(c, "invalid_request")
			return
		}
		idName := c.Param("idName")
		if err := svc.UpdateProfile(c.Request.Context(), idName, upd); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
