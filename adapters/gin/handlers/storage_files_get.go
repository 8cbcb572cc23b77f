package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bgaze-labs/bgaze/core"
)

func HandleStorageFilesGET(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		objects, err := svc.Objects(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, objects)
	}
}
