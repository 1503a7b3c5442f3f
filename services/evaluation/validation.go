package evaluation

import (
	"strings"

	"branchaudit/models"
	"branchaudit/services/errs"
	"branchaudit/services/scoring"
)

func validate(sub models.StaffEvaluationSubmission) error {
	var v errs.Validation
	v.Require("staffName", sub.StaffName)
	v.Require("designation", sub.Designation)
	v.Require("branch", sub.Selection.Branch)
	v.Require("city", sub.Selection.City)
	v.Require("auditor", sub.Selection.Auditor)
	v.Date("date", sub.Selection.Date)

	known := map[string]bool{}
	for _, param := range scoring.StaffParameters {
		known[param] = true
		level := strings.TrimSpace(sub.Ratings[param])
		if level == "" {
			v.Add("%q must be rated", param)
			continue
		}
		if _, ok := scoring.RatingValue(level); !ok {
			v.Add("%q has unknown rating %q", param, level)
		}
	}
	for key := range sub.Ratings {
		if scoring.IsRemarksKey(key) {
			key = strings.TrimSuffix(key, models.RemarksSuffix)
		}
		if !known[key] {
			v.Add("unknown parameter %q", key)
		}
	}
	return v.Err()
}
