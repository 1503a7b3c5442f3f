package scoring

import (
	"strings"

	"branchaudit/models"
)

const (
	// PointsPerItem is awarded per checklist item answered "Yes".
	PointsPerItem = 6
	// RemarkPoints is the magnitude of the observation/maintenance adjustment.
	RemarkPoints = 11
	// MaxScore caps both scoring policies.
	MaxScore = 100
)

const noIssuePhrase = "no issue"

// MaxChecklist is the checklist ceiling for the configured item set.
func MaxChecklist() int {
	n := 0
	for _, items := range ChecklistItems {
		n += len(items)
	}
	return n * PointsPerItem
}

// ResolveRemark maps a raw (preset, manual) pair onto the Remark variant.
// Unknown presets resolve to RemarkPreset; validation rejects them separately.
func ResolveRemark(opts RemarkOptions, in models.RemarkInput) models.Remark {
	preset := strings.TrimSpace(in.Preset)
	manual := strings.TrimSpace(in.Manual)
	switch preset {
	case "", SelectPrompt:
		return models.Remark{Kind: models.RemarkUnset, Manual: manual}
	case opts.NoIssue:
		return models.Remark{Kind: models.RemarkNoIssue, Preset: preset}
	case OtherManual:
		return models.Remark{Kind: models.RemarkOther, Preset: preset, Manual: manual}
	}
	return models.Remark{Kind: models.RemarkPreset, Preset: preset}
}

// ChecklistScore awards PointsPerItem for every "Yes" across the categories.
func ChecklistScore(categories ...map[string]string) int {
	yes := 0
	for _, answers := range categories {
		for _, a := range answers {
			if strings.EqualFold(strings.TrimSpace(a), models.AnswerYes) {
				yes++
			}
		}
	}
	return yes * PointsPerItem
}

// RemarkScore is +RemarkPoints for a "no issue" remark, 0 when nothing was
// selected, and -RemarkPoints otherwise.
func RemarkScore(r models.Remark) int {
	switch r.Kind {
	case models.RemarkUnset:
		return 0
	case models.RemarkNoIssue:
		return RemarkPoints
	case models.RemarkOther:
		if strings.Contains(strings.ToLower(r.Manual), noIssuePhrase) {
			return RemarkPoints
		}
	}
	return -RemarkPoints
}

// Clamp bounds a raw score to [0, MaxScore].
func Clamp(raw int) int {
	if raw < 0 {
		return 0
	}
	if raw > MaxScore {
		return MaxScore
	}
	return raw
}

// ScoreUnitAudit returns the clamped score and its breakdown.
func ScoreUnitAudit(kitchen, hygiene, foodSafety map[string]string, observations, maintenance models.Remark) (int, models.ScoreBreakdown) {
	b := models.ScoreBreakdown{
		Checklist:    ChecklistScore(kitchen, hygiene, foodSafety),
		Observations: RemarkScore(observations),
		Maintenance:  RemarkScore(maintenance),
		MaxChecklist: MaxChecklist(),
	}
	b.TotalBeforeClamp = b.Checklist + b.Observations + b.Maintenance
	return Clamp(b.TotalBeforeClamp), b
}
