package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bgaze-labs/bgaze/core"
)

func HandleProfileDeleteDELETE(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteProfile(c.Request.Context(), c.Param("idName")); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
