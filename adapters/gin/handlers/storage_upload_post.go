package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bgaze-labs/bgaze/adapters/ginutil"
	"github.com/bgaze-labs/bgaze/core"
)

// HandleStorageUploadPOST accepts a small multipart upload and returns the
// stored key plus a presigned download URL. Oversized files are rejected;
// clients should request a presigned PUT URL instead.
func HandleStorageUploadPOST(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile("file")
		if err != nil {
			ginutil.BadRequest(c, "missing_file")
			return
		}
		if fh.Size > svc.MaxUploadBytes() {
			ginutil.BadRequest(c, "file_too_large")
			return
		}
		f, err := fh.Open()
		if err != nil {
			respondErr(c, err)
			return
		}
		defer f.Close()

		contentType := fh.Header.Get("Content-Type")
		key, err := svc.UploadObject(c.Request.Context(), fh.Filename, contentType, f, fh.Size)
		if err != nil {
			respondErr(c, err)
			return
		}
		url, err := svc.DownloadURL(c.Request.Context(), key)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"key": key, "url": url})
	}
}
