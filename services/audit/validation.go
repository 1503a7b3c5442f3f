package audit

import (
	"strings"

	"branchaudit/models"
	"branchaudit/services/errs"
	"branchaudit/services/scoring"
)

var categoryLabels = map[string]string{
	scoring.CategoryKitchen:    "Kitchen",
	scoring.CategoryHygiene:    "Hygiene",
	scoring.CategoryFoodSafety: "Food safety",
}

func answersFor(sub models.UnitAuditSubmission, category string) map[string]string {
	switch category {
	case scoring.CategoryKitchen:
		return sub.Kitchen
	case scoring.CategoryHygiene:
		return sub.Hygiene
	}
	return sub.FoodSafety
}

// validate reports every problem with sub; nothing is resolved or stored here.
func validate(sub models.UnitAuditSubmission) error {
	var v errs.Validation
	v.Require("branch", sub.Branch)
	v.Require("city", sub.City)
	v.Require("auditor", sub.Auditor)
	v.Date("date", sub.Date)

	for _, category := range scoring.Categories {
		answers := answersFor(sub, category)
		label := categoryLabels[category]
		known := map[string]bool{}
		for _, item := range scoring.ChecklistItems[category] {
			known[item] = true
			switch strings.TrimSpace(answers[item]) {
			case models.AnswerYes, models.AnswerNo:
			case "":
				v.Add("%s: %q must be answered", label, item)
			default:
				v.Add("%s: %q must be Yes or No", label, item)
			}
		}
		for item := range answers {
			if !known[item] {
				v.Add("%s: unknown checklist item %q", label, item)
			}
		}
	}

	validateRemark(&v, "Observations", scoring.ObservationOptions, sub.Observations)
	validateRemark(&v, "Maintenance", scoring.MaintenanceOptions, sub.Maintenance)
	validateRemark(&v, "Action plan", scoring.ActionPlanOptions, sub.ActionPlan)
	return v.Err()
}

func validateRemark(v *errs.Validation, label string, opts scoring.RemarkOptions, in models.RemarkInput) {
	r := scoring.ResolveRemark(opts, in)
	switch r.Kind {
	case models.RemarkUnset:
		if r.Manual == "" {
			v.Add("%s: select an option or enter details", label)
		}
	case models.RemarkOther:
		if r.Manual == "" {
			v.Add("%s: details are required when %q is selected", label, scoring.OtherManual)
		}
	case models.RemarkPreset:
		if !opts.Contains(r.Preset) {
			v.Add("%s: unknown option %q", label, r.Preset)
		}
	}
}
