package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bgaze-labs/bgaze/adapters/ginutil"
	"github.com/bgaze-labs/bgaze/core"
)

func HandleProfileCreatePOST(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p core.UserProfile
		if err := c.ShouldBindJSON(&p); err != nil {
			ginutil.BadRequest(c, "invalid_request")
			return
		}
		created, err := svc.CreateProfile(c.Request.Context(), p)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}
