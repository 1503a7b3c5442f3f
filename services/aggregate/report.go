package aggregate

import (
	"sort"

	"branchaudit/models"
	"branchaudit/utils/dates"
)

// BranchReport is the aggregate bundle for one branch and date range.
type BranchReport struct {
	Branch       string               `json:"branch"`
	From         string               `json:"from,omitempty"`
	To           string               `json:"to,omitempty"`
	TotalRecords int                  `json:"totalRecords"`
	AverageScore float64              `json:"averageScore"`
	Employees    []EmployeeAggregate  `json:"employees"`
	Parameters   []ParameterAggregate `json:"parameters"`
}

// BuildBranchReport dedupes, range-filters and aggregates records.
// Bounds are normalized to DD/MM/YYYY in the result.
func BuildBranchReport(branch, from, to string, records []models.StaffEvaluation) BranchReport {
	from, to = dates.Normalize(from), dates.Normalize(to)
	kept := FilterRange(Dedupe(records), from, to)

	sum, scored := 0.0, 0
	for _, r := range kept {
		if s, ok := RecordScore(r); ok {
			sum += s
			scored++
		}
	}
	report := BranchReport{
		Branch:       branch,
		From:         from,
		To:           to,
		TotalRecords: len(kept),
		Employees:    ByEmployee(kept),
		Parameters:   ByParameter(kept),
	}
	if scored > 0 {
		report.AverageScore = round2(sum / float64(scored))
	}
	return report
}

// AuditDigest is one line of an AuditSummary.
type AuditDigest struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Auditor string `json:"auditor"`
	Score   int    `json:"scoreOutOf100"`
}

// AuditSummary aggregates a branch's unit audits over a date range.
type AuditSummary struct {
	Branch       string        `json:"branch"`
	From         string        `json:"from,omitempty"`
	To           string        `json:"to,omitempty"`
	Count        int           `json:"count"`
	AverageScore float64       `json:"averageScore"`
	Highest      int           `json:"highest"`
	Lowest       int           `json:"lowest"`
	Audits       []AuditDigest `json:"audits"`
}

// SummarizeAudits filters audits to [from, to] and orders them oldest first.
func SummarizeAudits(branch, from, to string, audits []models.UnitAudit) AuditSummary {
	from, to = dates.Normalize(from), dates.Normalize(to)
	summary := AuditSummary{Branch: branch, From: from, To: to, Audits: []AuditDigest{}}

	seen := map[string]bool{}
	var kept []models.UnitAudit
	for _, a := range audits {
		if a.ID != "" && seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		if dates.InRange(a.Date, from, to) {
			kept = append(kept, a)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		di, _ := dates.Parse(kept[i].Date)
		dj, _ := dates.Parse(kept[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return kept[i].Timestamp.Before(kept[j].Timestamp)
	})

	sum := 0
	for i, a := range kept {
		sum += a.ScoreOutOf100
		if i == 0 || a.ScoreOutOf100 > summary.Highest {
			summary.Highest = a.ScoreOutOf100
		}
		if i == 0 || a.ScoreOutOf100 < summary.Lowest {
			summary.Lowest = a.ScoreOutOf100
		}
		summary.Audits = append(summary.Audits, AuditDigest{
			ID: a.ID, Date: dates.Normalize(a.Date), Auditor: a.Auditor, Score: a.ScoreOutOf100,
		})
	}
	summary.Count = len(kept)
	if summary.Count > 0 {
		summary.AverageScore = round2(float64(sum) / float64(summary.Count))
	}
	return summary
}
