// Package session holds the in-progress state of an audit or evaluation form.
// State only changes through Apply, which returns a new FormSession.
package session

import (
	"maps"
	"strings"
	"time"

	"branchaudit/models"
	"branchaudit/services/errs"
	"branchaudit/services/scoring"
	"branchaudit/utils/dates"

	"github.com/google/uuid"
)

type Kind string

const (
	KindUnitAudit       Kind = "unitAudit"
	KindStaffEvaluation Kind = "staffEvaluation"
)

func (k Kind) Valid() bool {
	return k == KindUnitAudit || k == KindStaffEvaluation
}

// StaffDraft is the employee part of an evaluation form.
type StaffDraft struct {
	StaffName   string `json:"staffName"`
	EmpCode     string `json:"empCode"`
	Designation string `json:"designation"`
}

// Filter is the query state of the history and report views.
type Filter struct {
	Branch    string `json:"branch,omitempty"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	EmpCode   string `json:"empCode,omitempty"`
	StaffName string `json:"staffName,omitempty"`
}

type FormSession struct {
	ID            string                        `json:"id"`
	Kind          Kind                          `json:"kind"`
	Selection     models.Selection              `json:"selection"`
	Checklist     map[string]map[string]string  `json:"checklist"`
	Remarks       map[string]models.RemarkInput `json:"remarks"`
	Staff         StaffDraft                    `json:"staff"`
	Ratings       map[string]string             `json:"ratings"`
	Filter        Filter                        `json:"filter"`
	CreatedAt     time.Time                     `json:"createdAt"`
	LastUpdatedAt time.Time                     `json:"lastUpdatedAt"`
}

// New starts an empty session of the given kind.
func New(kind Kind, now time.Time) FormSession {
	return FormSession{
		ID:            uuid.New().String(),
		Kind:          kind,
		Checklist:     map[string]map[string]string{},
		Remarks:       map[string]models.RemarkInput{},
		Ratings:       map[string]string{},
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
}

// Action types accepted by Apply.
const (
	ActionSelectBranch    = "selectBranch"
	ActionSetCity         = "setCity"
	ActionSetAuditor      = "setAuditor"
	ActionSetDate         = "setDate"
	ActionSetChecklist    = "setChecklist"
	ActionSetRemark       = "setRemark"
	ActionSetStaff        = "setStaff"
	ActionSetRating       = "setRating"
	ActionSetRatingRemark = "setRatingRemark"
	ActionSetFilter       = "setFilter"
	ActionReset           = "reset"
)

// Action is one user edit. Which fields matter depends on Type:
// Category/Item address a checklist answer, Field names a remark, staff or
// filter field, Item names a rated parameter.
type Action struct {
	Type     string `json:"type"`
	Category string `json:"category,omitempty"`
	Item     string `json:"item,omitempty"`
	Field    string `json:"field,omitempty"`
	Value    string `json:"value,omitempty"`
	Preset   string `json:"preset,omitempty"`
	Manual   string `json:"manual,omitempty"`
}

func (s FormSession) clone() FormSession {
	out := s
	out.Checklist = make(map[string]map[string]string, len(s.Checklist))
	for category, answers := range s.Checklist {
		out.Checklist[category] = maps.Clone(answers)
	}
	out.Remarks = maps.Clone(s.Remarks)
	if out.Remarks == nil {
		out.Remarks = map[string]models.RemarkInput{}
	}
	out.Ratings = maps.Clone(s.Ratings)
	if out.Ratings == nil {
		out.Ratings = map[string]string{}
	}
	return out
}

func isChecklistItem(category, item string) bool {
	for _, it := range scoring.ChecklistItems[category] {
		if it == item {
			return true
		}
	}
	return false
}

func isParameter(name string) bool {
	for _, p := range scoring.StaffParameters {
		if p == name {
			return true
		}
	}
	return false
}

func invalid(format string, args ...any) error {
	var v errs.Validation
	v.Add(format, args...)
	return v.Err()
}

// Apply returns s with a applied. s itself is never modified; on error the
// zero FormSession is returned.
func Apply(s FormSession, a Action) (FormSession, error) {
	next := s.clone()
	value := strings.TrimSpace(a.Value)

	switch a.Type {
	case ActionSelectBranch:
		next.Selection.Branch = value
	case ActionSetCity:
		next.Selection.City = value
	case ActionSetAuditor:
		next.Selection.Auditor = value
	case ActionSetDate:
		if value != "" && !dates.Valid(value) {
			return FormSession{}, invalid("date %q is invalid", a.Value)
		}
		next.Selection.Date = dates.Normalize(value)

	case ActionSetChecklist:
		if !isChecklistItem(a.Category, a.Item) {
			return FormSession{}, invalid("unknown checklist item %q in %q", a.Item, a.Category)
		}
		answers := next.Checklist[a.Category]
		if answers == nil {
			answers = map[string]string{}
			next.Checklist[a.Category] = answers
		}
		switch value {
		case models.AnswerYes, models.AnswerNo:
			answers[a.Item] = value
		case "":
			delete(answers, a.Item)
		default:
			return FormSession{}, invalid("answer for %q must be Yes or No", a.Item)
		}

	case ActionSetRemark:
		switch a.Field {
		case scoring.ObservationOptions.Field, scoring.MaintenanceOptions.Field, scoring.ActionPlanOptions.Field:
			next.Remarks[a.Field] = models.RemarkInput{Preset: strings.TrimSpace(a.Preset), Manual: a.Manual}
		default:
			return FormSession{}, invalid("unknown remark field %q", a.Field)
		}

	case ActionSetStaff:
		switch a.Field {
		case "staffName":
			next.Staff.StaffName = value
		case "empCode":
			next.Staff.EmpCode = value
		case "designation":
			next.Staff.Designation = value
		default:
			return FormSession{}, invalid("unknown staff field %q", a.Field)
		}

	case ActionSetRating:
		if !isParameter(a.Item) {
			return FormSession{}, invalid("unknown parameter %q", a.Item)
		}
		if value == "" {
			delete(next.Ratings, a.Item)
			break
		}
		if _, ok := scoring.RatingValue(value); !ok {
			return FormSession{}, invalid("unknown rating %q", a.Value)
		}
		next.Ratings[a.Item] = value

	case ActionSetRatingRemark:
		if !isParameter(a.Item) {
			return FormSession{}, invalid("unknown parameter %q", a.Item)
		}
		key := a.Item + models.RemarksSuffix
		if value == "" {
			delete(next.Ratings, key)
		} else {
			next.Ratings[key] = value
		}

	case ActionSetFilter:
		switch a.Field {
		case "branch":
			next.Filter.Branch = value
		case "from", "to":
			if value != "" && !dates.Valid(value) {
				return FormSession{}, invalid("%s date %q is invalid", a.Field, a.Value)
			}
			if a.Field == "from" {
				next.Filter.From = dates.Normalize(value)
			} else {
				next.Filter.To = dates.Normalize(value)
			}
		case "empCode":
			next.Filter.EmpCode = value
		case "staffName":
			next.Filter.StaffName = value
		default:
			return FormSession{}, invalid("unknown filter field %q", a.Field)
		}

	case ActionReset:
		next = New(s.Kind, s.CreatedAt)
		next.ID = s.ID

	default:
		return FormSession{}, invalid("unknown action %q", a.Type)
	}
	return next, nil
}

// ApplyAll applies actions in order and stops at the first error.
func ApplyAll(s FormSession, actions []Action) (FormSession, error) {
	for _, a := range actions {
		next, err := Apply(s, a)
		if err != nil {
			return FormSession{}, err
		}
		s = next
	}
	return s, nil
}

func (s FormSession) ToUnitAuditSubmission() models.UnitAuditSubmission {
	return models.UnitAuditSubmission{
		Branch:       s.Selection.Branch,
		City:         s.Selection.City,
		Auditor:      s.Selection.Auditor,
		Date:         s.Selection.Date,
		Kitchen:      maps.Clone(s.Checklist[scoring.CategoryKitchen]),
		Hygiene:      maps.Clone(s.Checklist[scoring.CategoryHygiene]),
		FoodSafety:   maps.Clone(s.Checklist[scoring.CategoryFoodSafety]),
		Observations: s.Remarks[scoring.ObservationOptions.Field],
		Maintenance:  s.Remarks[scoring.MaintenanceOptions.Field],
		ActionPlan:   s.Remarks[scoring.ActionPlanOptions.Field],
	}
}

func (s FormSession) ToStaffEvaluationSubmission() models.StaffEvaluationSubmission {
	return models.StaffEvaluationSubmission{
		StaffName:   s.Staff.StaffName,
		EmpCode:     s.Staff.EmpCode,
		Designation: s.Staff.Designation,
		Ratings:     maps.Clone(s.Ratings),
		Selection:   s.Selection,
	}
}
