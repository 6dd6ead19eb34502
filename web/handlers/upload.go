package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kasira.com/kasira/infrastructure/filesystem"
	"kasira.com/kasira/web/common"
)

// UploadMultipleHandler receives closing documents (vouchers, invoices) and
// stores them in the attachment bucket. It returns the stored URLs; linking
// a URL to a shift's attachment slot is a separate call on the closing API.
func UploadMultipleHandler(c *gin.Context) {
	// Parse multipart form (max 50 MB)
	if err := c.Request.ParseMultipartForm(50 << 20); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}

	bucket := os.Getenv("ATTACHMENT_BUCKET")
	if bucket == "" {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("ATTACHMENT_BUCKET not configured"))
		return
	}

	form := c.Request.MultipartForm
	files := form.File["files"] // client sends multiple files as "files[]"

	uploaded := []string{}

	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".pdf" {
			continue
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		key := fmt.Sprintf("closings/%s%s", uuid.NewString(), ext)
		url, err := filesystem.UploadFile(bucket, key, c.Request.Context(), src, file.Header.Get("Content-Type"))
		src.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		uploaded = append(uploaded, url)
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"message": fmt.Sprintf("%d files uploaded", len(uploaded)),
		"files":   uploaded,
	}))
}
