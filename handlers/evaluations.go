package handlers

import (
	"net/http"

	"branchaudit/models"
	"branchaudit/services/evaluation"
	"branchaudit/services/report"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EvaluationHandler serves staff evaluations and branch staff reports.
type EvaluationHandler struct {
	Service evaluation.EvaluationService
}

func NewEvaluationHandler(svc evaluation.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{Service: svc}
}

func (h *EvaluationHandler) SubmitEvaluationHandler(c *gin.Context) {
	var sub models.StaffEvaluationSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		badRequest(c, err)
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	e, err := h.Service.Submit(ctx, sub)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("Staff evaluation submitted", zap.String("id", e.ID), zap.String("staff", e.StaffName))
	c.JSON(http.StatusCreated, e)
}

// ScoreEvaluationHandler previews the score for a set of ratings.
func (h *EvaluationHandler) ScoreEvaluationHandler(c *gin.Context) {
	var input struct {
		Ratings map[string]string `json:"ratings"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Service.Preview(input.Ratings))
}

func (h *EvaluationHandler) ListEvaluationsHandler(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()
	evals, err := h.Service.ListByBranch(ctx, c.Query("branch"), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(evals))
}

func (h *EvaluationHandler) EvaluationExistsHandler(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()
	exists, err := h.Service.Exists(ctx, c.Query("empCode"), c.Query("name"), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

func (h *EvaluationHandler) EmployeeHistoryHandler(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()
	evals, err := h.Service.EmployeeHistory(ctx, c.Query("empCode"), c.Query("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(evals))
}

func (h *EvaluationHandler) LatestEvaluationHandler(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()
	e, err := h.Service.Latest(ctx, c.Query("empCode"), c.Query("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *EvaluationHandler) GetEvaluationHandler(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()
	e, err := h.Service.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// BranchReportHandler returns the aggregated staff report for a branch.
func (h *EvaluationHandler) BranchReportHandler(c *gin.Context) {
	format, ok := exportFormat(c, "")
	if c.Query("format") != "" && !ok {
		badRequestFormat(c, format)
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	r, err := h.Service.BranchReport(ctx, c.Query("branch"), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	if c.Query("format") == "" {
		c.JSON(http.StatusOK, r)
		return
	}
	sendArtifact(c, format, r.Branch, report.KindBranchReport, report.RangeLabel(r.From, r.To), r,
		func() ([]byte, error) { return report.BranchReportPDF(r) })
}

func (h *EvaluationHandler) ExportEvaluationHandler(c *gin.Context) {
	format, ok := exportFormat(c, report.FormatPDF)
	if !ok {
		badRequestFormat(c, format)
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	e, err := h.Service.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	sendArtifact(c, format, e.Selection.Branch, report.KindStaffEvaluation, e.Selection.Date, e,
		func() ([]byte, error) { return report.StaffEvaluationPDF(e) })
}

func nonNil(evals []models.StaffEvaluation) []models.StaffEvaluation {
	if evals == nil {
		return []models.StaffEvaluation{}
	}
	return evals
}
