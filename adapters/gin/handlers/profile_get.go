package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bgaze-labs/bgaze/core"
)

func HandleProfileGET(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Profile(c.Request.Context(), c.Param("idName"))
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
