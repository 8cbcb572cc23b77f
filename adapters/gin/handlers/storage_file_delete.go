package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bgaze-labs/bgaze/core"
)

func HandleStorageFileDELETE(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteObject(c.Request.Context(), c.Param("key")); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
