package report

import (
	"encoding/json"
	"strings"
	"testing"

	"branchaudit/models"
	"branchaudit/services/aggregate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		branch, kind, date, ext string
		want                    string
	}{
		{"Koramangala", KindUnitAudit, "15/03/2024", FormatPDF, "Koramangala_UnitAudit_15-03-2024.pdf"},
		{"MG Road  East", KindStaffEvaluation, "01/02/2024", FormatJSON, "MG_Road__East_StaffEvaluation_01-02-2024.json"},
		{" HSR ", KindBranchReport, RangeLabel("01/03/2024", "31/03/2024"), FormatPDF, "HSR_StaffReport_01-03-2024_to_31-03-2024.pdf"},
		{"", KindAuditSummary, "", FormatPDF, "unknown_AuditSummary_unknown.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Filename(tt.branch, tt.kind, tt.date, tt.ext))
	}
}

func TestRangeLabel(t *testing.T) {
	assert.Equal(t, "all", RangeLabel("", ""))
	assert.Equal(t, "from_01/03/2024", RangeLabel("01/03/2024", ""))
	assert.Equal(t, "until_31/03/2024", RangeLabel("", "31/03/2024"))
}

func TestJSON(t *testing.T) {
	out, err := JSON(map[string]int{"scoreOutOf100": 76})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"scoreOutOf100\": 76\n}\n", string(out))
}

func sampleAudit() *models.UnitAudit {
	return &models.UnitAudit{
		ID: "a1", Branch: "Koramangala", City: "Bengaluru", Auditor: "Priya", Date: "15/03/2024",
		Kitchen:       map[string]string{"Cooking area clean": "Yes", "Retired item": "No"},
		Hygiene:       map[string]string{},
		Observations:  "Pest activity noticed",
		ScoreOutOf100: 40,
	}
}

func TestPDFRenderers(t *testing.T) {
	score := 76
	eval := &models.StaffEvaluation{
		StaffName: "Asha", EmpCode: "E01", Designation: "Steward",
		Ratings:    map[string]string{"Punctuality": "Excellent", "Punctuality_remarks": "Always early – never late"},
		TotalMarks: "76", Grade: "B", ScoreOutOf100: &score,
		Selection: models.Selection{Branch: "Koramangala", Date: "15/03/2024"},
	}
	branch := aggregate.BuildBranchReport("Koramangala", "", "", []models.StaffEvaluation{*eval})
	summary := aggregate.SummarizeAudits("Koramangala", "", "", []models.UnitAudit{*sampleAudit()})

	renders := map[string]func() ([]byte, error){
		"unit audit":       func() ([]byte, error) { return UnitAuditPDF(sampleAudit()) },
		"staff evaluation": func() ([]byte, error) { return StaffEvaluationPDF(eval) },
		"branch report":    func() ([]byte, error) { return BranchReportPDF(&branch) },
		"audit summary":    func() ([]byte, error) { return AuditSummaryPDF(&summary) },
	}
	for name, render := range renders {
		t.Run(name, func(t *testing.T) {
			out, err := render()
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(out), "%PDF-"))
		})
	}
}

func TestPDF_PaginatesLongReports(t *testing.T) {
	var audits []models.UnitAudit
	for i := 0; i < 120; i++ {
		a := *sampleAudit()
		a.ID = string(rune('a'+i%26)) + strings.Repeat("x", i/26)
		audits = append(audits, a)
	}
	summary := aggregate.SummarizeAudits("Koramangala", "", "", audits)
	out, err := AuditSummaryPDF(&summary)
	require.NoError(t, err)
	assert.Greater(t, strings.Count(string(out), "/Type /Page\n"), 1)

	raw, err := JSON(summary)
	require.NoError(t, err)
	var decoded aggregate.AuditSummary
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, 120, decoded.Count)
}
