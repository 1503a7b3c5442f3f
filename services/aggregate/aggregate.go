// Package aggregate turns raw staff evaluations and unit audits into the
// per-employee, per-parameter and per-branch summaries used by reports.
// Everything here is pure and deterministic for a given input order.
package aggregate

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"branchaudit/models"
	"branchaudit/services/scoring"
	"branchaudit/utils/dates"
)

// EmployeeAggregate summarizes one employee's evaluations.
type EmployeeAggregate struct {
	Key         string  `json:"key"`
	EmpCode     string  `json:"empCode"`
	StaffName   string  `json:"staffName"`
	Designation string  `json:"designation"`
	Count       int     `json:"count"`
	ScoredCount int     `json:"scoredCount"`
	AvgScore    float64 `json:"avgScore"`
	// Label is "-" when none of the records carried a score.
	Label        string `json:"label"`
	LatestBranch string `json:"latestBranch"`
	LatestCity   string `json:"latestCity"`
	LatestDate   string `json:"latestDate"`
}

// ParameterAggregate counts rating levels for one parameter.
type ParameterAggregate struct {
	Parameter string         `json:"parameter"`
	Counts    map[string]int `json:"counts"`
	Total     int            `json:"total"`
}

// EmployeeKey is the case-insensitive grouping key: employee code, else name.
func EmployeeKey(r models.StaffEvaluation) string {
	if code := strings.TrimSpace(r.EmpCode); code != "" {
		return strings.ToLower(code)
	}
	return strings.ToLower(strings.TrimSpace(r.StaffName))
}

// RecordScore reads a record's numeric score, falling back to totalMarks.
func RecordScore(r models.StaffEvaluation) (float64, bool) {
	if r.ScoreOutOf100 != nil {
		return float64(*r.ScoreOutOf100), true
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(r.TotalMarks), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Dedupe drops repeated record ids, keeping the first occurrence. Records
// without an id cannot be matched and are always kept.
func Dedupe(records []models.StaffEvaluation) []models.StaffEvaluation {
	seen := make(map[string]bool, len(records))
	out := make([]models.StaffEvaluation, 0, len(records))
	for _, r := range records {
		if r.ID != "" {
			if seen[r.ID] {
				continue
			}
			seen[r.ID] = true
		}
		out = append(out, r)
	}
	return out
}

// FilterRange keeps records whose selection date lies within [from, to].
func FilterRange(records []models.StaffEvaluation, from, to string) []models.StaffEvaluation {
	out := make([]models.StaffEvaluation, 0, len(records))
	for _, r := range records {
		if dates.InRange(r.Selection.Date, from, to) {
			out = append(out, r)
		}
	}
	return out
}

type employeeAcc struct {
	agg    EmployeeAggregate
	sum    float64
	latest *models.StaffEvaluation
}

// ByEmployee groups records per employee, sorted by name then key.
func ByEmployee(records []models.StaffEvaluation) []EmployeeAggregate {
	groups := map[string]*employeeAcc{}
	var order []string

	for i := range records {
		r := &records[i]
		key := EmployeeKey(*r)
		acc, ok := groups[key]
		if !ok {
			acc = &employeeAcc{agg: EmployeeAggregate{Key: key}}
			groups[key] = acc
			order = append(order, key)
		}
		acc.agg.Count++
		if s, ok := RecordScore(*r); ok {
			acc.sum += s
			acc.agg.ScoredCount++
		}
		if acc.latest == nil || r.CreatedAt.After(acc.latest.CreatedAt) {
			acc.latest = r
		}
	}

	out := make([]EmployeeAggregate, 0, len(order))
	for _, key := range order {
		acc := groups[key]
		a := acc.agg
		a.Label = "-"
		if a.ScoredCount > 0 {
			a.AvgScore = round2(acc.sum / float64(a.ScoredCount))
			a.Label = scoring.Label(acc.sum / float64(a.ScoredCount))
		}
		a.EmpCode = strings.TrimSpace(acc.latest.EmpCode)
		a.StaffName = strings.TrimSpace(acc.latest.StaffName)
		a.Designation = acc.latest.Designation
		a.LatestBranch = acc.latest.Selection.Branch
		a.LatestCity = acc.latest.Selection.City
		a.LatestDate = dates.Normalize(acc.latest.Selection.Date)
		out = append(out, a)
	}

	sort.SliceStable(out, func(i, j int) bool {
		ni, nj := strings.ToLower(out[i].StaffName), strings.ToLower(out[j].StaffName)
		if ni != nj {
			return ni < nj
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// ByParameter counts rating levels per parameter across records. Remark keys
// are skipped; values outside the four levels are ignored.
func ByParameter(records []models.StaffEvaluation) []ParameterAggregate {
	params := map[string]*ParameterAggregate{}
	for _, r := range records {
		for key, level := range r.Ratings {
			if scoring.IsRemarksKey(key) {
				continue
			}
			p, ok := params[key]
			if !ok {
				p = &ParameterAggregate{Parameter: key, Counts: newLevelCounts()}
				params[key] = p
			}
			level = strings.TrimSpace(level)
			if _, known := p.Counts[level]; known {
				p.Counts[level]++
				p.Total++
			}
		}
	}

	out := make([]ParameterAggregate, 0, len(params))
	for _, p := range params {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Parameter < out[j].Parameter })
	return out
}

func newLevelCounts() map[string]int {
	counts := make(map[string]int, len(models.RatingLevels))
	for _, level := range models.RatingLevels {
		counts[level] = 0
	}
	return counts
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
