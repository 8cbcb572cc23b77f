package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bgaze-labs/bgaze/core"
)

// HandleStorageFileURLGET returns a presigned download URL valid for one
// hour, so the bytes never pass through the API server.
func HandleStorageFileURLGET(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		url, err := svc.DownloadURL(c.Request.Context(), c.Param("key"))
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
