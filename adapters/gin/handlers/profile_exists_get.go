package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bgaze-labs/bgaze/core"
)

// HandleProfileExistsGET answers presence without bodies: 204 when the
// e-mail is in use, 404 when not. With withCount=true it returns JSON with
// the exact number of matching profiles instead.
func HandleProfileExistsGET(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		withCount, _ := strconv.ParseBool(c.Query("withCount"))
		exists, count, err := svc.EmailExists(c.Request.Context(), c.Query("email"), withCount)
		if err != nil {
			respondErr(c, err)
			return
		}
		if withCount {
			status := http.StatusOK
			if !exists {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"exists": exists, "count": count})
			return
		}
		if !exists {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
