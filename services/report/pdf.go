package report

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"branchaudit/models"
	"branchaudit/services/aggregate"
	"branchaudit/services/scoring"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin = 15.0
	lineHeight = 7.0
	labelWidth = 60.0
)

type document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newDocument(title string) *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(title, true)
	pdf.AliasNbPages("")
	d := &document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pageMargin)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, d.tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	return d
}

func (d *document) section(title string) {
	d.pdf.Ln(3)
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.SetFillColor(230, 230, 230)
	d.pdf.CellFormat(0, lineHeight+1, d.tr(title), "", 1, "L", true, 0, "")
}

func (d *document) field(label, value string) {
	d.pdf.SetFont("Helvetica", "B", 10)
	d.pdf.CellFormat(labelWidth, lineHeight, d.tr(label), "", 0, "L", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 10)
	if value == "" {
		value = "-"
	}
	d.pdf.MultiCell(0, lineHeight, d.tr(value), "", "L", false)
}

// table draws a bordered grid; widths are in mm.
func (d *document) table(widths []float64, header []string, rows [][]string) {
	d.pdf.SetFont("Helvetica", "B", 9)
	for i, h := range header {
		d.pdf.CellFormat(widths[i], lineHeight, d.tr(h), "1", 0, "C", true, 0, "")
	}
	d.pdf.Ln(-1)
	d.pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		for i, cell := range row {
			d.pdf.CellFormat(widths[i], lineHeight, d.tr(cell), "1", 0, "L", false, 0, "")
		}
		d.pdf.Ln(-1)
	}
}

func (d *document) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var categoryTitles = map[string]string{
	scoring.CategoryKitchen:    "Kitchen",
	scoring.CategoryHygiene:    "Hygiene",
	scoring.CategoryFoodSafety: "Food Safety",
}

func UnitAuditPDF(a *models.UnitAudit) ([]byte, error) {
	d := newDocument("Unit Audit - " + a.Branch)
	d.field("Branch", a.Branch)
	d.field("City", a.City)
	d.field("Auditor", a.Auditor)
	d.field("Date", a.Date)
	d.field("Score", fmt.Sprintf("%d / %d", a.ScoreOutOf100, scoring.MaxScore))

	for _, category := range scoring.Categories {
		d.section(categoryTitles[category])
		d.table([]float64{140, 40}, []string{"Item", "Answer"}, checklistRows(category, auditAnswers(a, category)))
	}

	d.section("Remarks")
	d.field("Observations", a.Observations)
	d.field("Maintenance", a.Maintenance)
	d.field("Action plan", a.ActionPlan)

	d.section("Score breakdown")
	b := a.ScoreBreakdown
	d.field("Checklist", fmt.Sprintf("%d / %d", b.Checklist, b.MaxChecklist))
	d.field("Observations", strconv.Itoa(b.Observations))
	d.field("Maintenance", strconv.Itoa(b.Maintenance))
	d.field("Total before clamp", strconv.Itoa(b.TotalBeforeClamp))
	return d.bytes()
}

func StaffEvaluationPDF(e *models.StaffEvaluation) ([]byte, error) {
	d := newDocument("Staff Evaluation - " + e.StaffName)
	d.field("Staff name", e.StaffName)
	d.field("Employee code", e.EmpCode)
	d.field("Designation", e.Designation)
	d.field("Branch", e.Selection.Branch)
	d.field("City", e.Selection.City)
	d.field("Auditor", e.Selection.Auditor)
	d.field("Date", e.Selection.Date)

	d.section("Ratings")
	rows := make([][]string, 0, len(scoring.StaffParameters))
	for _, p := range scoring.StaffParameters {
		rows = append(rows, []string{p, e.Ratings[p], e.Ratings[p+models.RemarksSuffix]})
	}
	d.table([]float64{55, 30, 95}, []string{"Parameter", "Rating", "Remarks"}, rows)

	d.section("Result")
	d.field("Total marks", e.TotalMarks)
	d.field("Grade", e.Grade)
	return d.bytes()
}

func BranchReportPDF(r *aggregate.BranchReport) ([]byte, error) {
	d := newDocument("Staff Report - " + r.Branch)
	d.field("Period", RangeLabel(r.From, r.To))
	d.field("Evaluations", strconv.Itoa(r.TotalRecords))
	d.field("Average score", strconv.FormatFloat(r.AverageScore, 'f', 2, 64))

	d.section("Employees")
	rows := make([][]string, 0, len(r.Employees))
	for _, e := range r.Employees {
		rows = append(rows, []string{
			e.StaffName, e.EmpCode, e.Designation, strconv.Itoa(e.Count),
			strconv.FormatFloat(e.AvgScore, 'f', 2, 64), e.Label, e.LatestDate,
		})
	}
	d.table([]float64{40, 20, 30, 15, 20, 25, 30},
		[]string{"Name", "Code", "Designation", "Count", "Avg", "Label", "Latest"}, rows)

	d.section("Parameters")
	header := append([]string{"Parameter"}, models.RatingLevels...)
	header = append(header, "Total")
	rows = make([][]string, 0, len(r.Parameters))
	for _, p := range r.Parameters {
		row := []string{p.Parameter}
		for _, level := range models.RatingLevels {
			row = append(row, strconv.Itoa(p.Counts[level]))
		}
		rows = append(rows, append(row, strconv.Itoa(p.Total)))
	}
	d.table([]float64{50, 25, 25, 25, 25, 30}, header, rows)
	return d.bytes()
}

func AuditSummaryPDF(s *aggregate.AuditSummary) ([]byte, error) {
	d := newDocument("Audit Summary - " + s.Branch)
	d.field("Period", RangeLabel(s.From, s.To))
	d.field("Audits", strconv.Itoa(s.Count))
	d.field("Average score", strconv.FormatFloat(s.AverageScore, 'f', 2, 64))
	d.field("Highest / lowest", fmt.Sprintf("%d / %d", s.Highest, s.Lowest))

	d.section("Audits")
	rows := make([][]string, 0, len(s.Audits))
	for _, a := range s.Audits {
		rows = append(rows, []string{a.Date, a.Auditor, strconv.Itoa(a.Score)})
	}
	d.table([]float64{50, 90, 40}, []string{"Date", "Auditor", "Score"}, rows)
	return d.bytes()
}

func auditAnswers(a *models.UnitAudit, category string) map[string]string {
	switch category {
	case scoring.CategoryKitchen:
		return a.Kitchen
	case scoring.CategoryHygiene:
		return a.Hygiene
	}
	return a.FoodSafety
}

// checklistRows lists catalog items in order, then any stored items the
// catalog no longer has.
func checklistRows(category string, answers map[string]string) [][]string {
	rows := [][]string{}
	known := map[string]bool{}
	for _, item := range scoring.ChecklistItems[category] {
		known[item] = true
		rows = append(rows, []string{item, answers[item]})
	}
	var extra []string
	for item := range answers {
		if !known[item] {
			extra = append(extra, item)
		}
	}
	sort.Strings(extra)
	for _, item := range extra {
		rows = append(rows, []string{item, answers[item]})
	}
	return rows
}
