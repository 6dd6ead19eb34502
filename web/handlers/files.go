package handlers

import (
	"bytes"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"kasira.com/kasira/infrastructure/filesystem"
	"kasira.com/kasira/web/common"
)

// ListUploadsHandler lists stored closing documents, optionally under a
// key prefix.
func ListUploadsHandler(c *gin.Context) {
	bucket := os.Getenv("ATTACHMENT_BUCKET")
	if bucket == "" {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("ATTACHMENT_BUCKET not configured"))
		return
	}

	keys, err := filesystem.ListFiles(bucket, c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	if prefix := c.Query("prefix"); prefix != "" {
		filtered := keys[:0]
		for _, k := range keys {
			if strings.HasPrefix(k, prefix) {
				filtered = append(filtered, k)
			}
		}
		keys = filtered
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"files": keys,
	}))
}

// DownloadHandler streams one stored document back to the browser. The
// bucket is private; this is the only read path.
func DownloadHandler(c *gin.Context) {
	bucket := os.Getenv("ATTACHMENT_BUCKET")
	if bucket == "" {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("ATTACHMENT_BUCKET not configured"))
		return
	}

	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("key is required"))
		return
	}

	var buf bytes.Buffer
	if err := filesystem.ReadFile(bucket, key, c.Request.Context(), &buf); err != nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(err.Error()))
		return
	}

	contentType := "application/octet-stream"
	switch strings.ToLower(path.Ext(key)) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".pdf":
		contentType = "application/pdf"
	}

	c.Data(http.StatusOK, contentType, buf.Bytes())
}
