package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bgaze-labs/bgaze/adapters/ginutil"
	"github.com/bgaze-labs/bgaze/core"
)

// HandleStoragePresignPOST issues a short-lived presigned PUT URL for
// large-file uploads that bypass the server.
func HandleStoragePresignPOST(svc *core.Service) gin.HandlerFunc {
	type presignReq struct {
		Filename string `json:"filename"`
	}
	return func(c *gin.Context) {
		var req presignReq
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Filename) == "" {
			ginutil.BadRequest(c, "missing_filename")
			return
		}
		url, key, err := svc.PresignUpload(c.Request.Context(), req.Filename)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url, "key": key})
	}
}
