package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bgaze-labs/bgaze/core"
)

func HandleProfileSearchGET(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		profiles, err := svc.SearchProfiles(c.Request.Context(), c.Query("q"))
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, profiles)
	}
}
