package handlers

import (
	"net/http"

	"branchaudit/models"
	"branchaudit/services/audit"
	"branchaudit/services/report"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuditHandler serves unit audit submission, lookup and export.
type AuditHandler struct {
	Service audit.AuditService
}

func NewAuditHandler(svc audit.AuditService) *AuditHandler {
	return &AuditHandler{Service: svc}
}

// SubmitAuditHandler scores and stores a unit audit.
func (h *AuditHandler) SubmitAuditHandler(c *gin.Context) {
	var sub models.UnitAuditSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		badRequest(c, err)
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	a, err := h.Service.Submit(ctx, sub)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("Unit audit submitted", zap.String("id", a.ID), zap.String("branch", a.Branch))
	c.JSON(http.StatusCreated, a)
}

// ScoreAuditHandler previews the score of a draft without saving it.
func (h *AuditHandler) ScoreAuditHandler(c *gin.Context) {
	var sub models.UnitAuditSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Service.Preview(sub))
}

func (h *AuditHandler) ListAuditsHandler(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()
	audits, err := h.Service.List(ctx, c.Query("branch"), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	if audits == nil {
		audits = []models.UnitAudit{}
	}
	c.JSON(http.StatusOK, audits)
}

func (h *AuditHandler) AuditExistsHandler(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()
	exists, err := h.Service.Exists(ctx, c.Query("branch"), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

func (h *AuditHandler) LatestAuditHandler(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()
	a, err := h.Service.Latest(ctx, c.Query("branch"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AuditHandler) GetAuditHandler(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()
	a, err := h.Service.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// AuditSummaryHandler returns the branch summary as JSON, or as a file when
// format is given.
func (h *AuditHandler) AuditSummaryHandler(c *gin.Context) {
	format, ok := exportFormat(c, "")
	if c.Query("format") != "" && !ok {
		badRequestFormat(c, format)
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	summary, err := h.Service.Summary(ctx, c.Query("branch"), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	if c.Query("format") == "" {
		c.JSON(http.StatusOK, summary)
		return
	}
	sendArtifact(c, format, summary.Branch, report.KindAuditSummary, report.RangeLabel(summary.From, summary.To), summary,
		func() ([]byte, error) { return report.AuditSummaryPDF(summary) })
}

func (h *AuditHandler) ExportAuditHandler(c *gin.Context) {
	format, ok := exportFormat(c, report.FormatPDF)
	if !ok {
		badRequestFormat(c, format)
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	a, err := h.Service.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	sendArtifact(c, format, a.Branch, report.KindUnitAudit, a.Date, a,
		func() ([]byte, error) { return report.UnitAuditPDF(a) })
}
