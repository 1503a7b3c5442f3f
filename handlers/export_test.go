package handlers

import (
	"mime"
	"net/http"
	"net/http/httptest"
	"testing"

	"branchaudit/services/report"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendArtifact_QuotedBranchKeepsHeaderWellFormed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	sendArtifact(c, report.FormatJSON, `Joe's "Grill"`, report.KindUnitAudit, "15/03/2024",
		map[string]string{"ok": "yes"}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	disposition, params, err := mime.ParseMediaType(w.Header().Get("Content-Disposition"))
	require.NoError(t, err)
	assert.Equal(t, "attachment", disposition)
	assert.Equal(t, `Joe's_"Grill"_UnitAudit_15-03-2024.json`, params["filename"])
}
