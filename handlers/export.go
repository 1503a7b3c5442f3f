package handlers

import (
	"fmt"
	"mime"
	"net/http"
	"strings"

	"branchaudit/services/report"
	"branchaudit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// exportFormat reads ?format=, defaulting to def. ok is false for unknown formats.
func exportFormat(c *gin.Context, def string) (string, bool) {
	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", def)))
	return format, format == report.FormatPDF || format == report.FormatJSON
}

// sendArtifact writes v as a downloadable PDF or JSON file.
func sendArtifact(c *gin.Context, format, branch, kind, date string, v any, renderPDF func() ([]byte, error)) {
	var (
		data        []byte
		err         error
		contentType string
	)
	switch format {
	case report.FormatPDF:
		data, err = renderPDF()
		contentType = "application/pdf"
	default:
		data, err = report.JSON(v)
		contentType = "application/json"
	}
	if err != nil {
		getLogger(c).Error("Failed to render report", zap.String("kind", kind), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to render report", err.Error())
		return
	}
	filename := report.Filename(branch, kind, date, format)
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	c.Data(http.StatusOK, contentType, data)
}

func badRequestFormat(c *gin.Context, format string) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid input", fmt.Sprintf("unsupported format %q, use pdf or json", format))
}
