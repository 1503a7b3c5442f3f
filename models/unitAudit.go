// File: models/unitAudit.go
package models

import "time"

// Answer values for checklist items.
const (
	AnswerYes = "Yes"
	AnswerNo  = "No"
)

// ScoreBreakdown is the additive decomposition of a unit audit score.
type ScoreBreakdown struct {
	Checklist        int `bson:"checklist" json:"checklist" firestore:"checklist"`
	Observations     int `bson:"observations" json:"observations" firestore:"observations"`
	Maintenance      int `bson:"maintenance" json:"maintenance" firestore:"maintenance"`
	TotalBeforeClamp int `bson:"totalBeforeClamp" json:"totalBeforeClamp" firestore:"totalBeforeClamp"`
	MaxChecklist     int `bson:"maxChecklist" json:"maxChecklist" firestore:"maxChecklist"`
}

// UnitAudit is one health-and-safety audit of a branch on a given day.
type UnitAudit struct {
	ID             string            `bson:"id" json:"id" firestore:"id"`
	Branch         string            `bson:"branch" json:"branch" firestore:"branch"`
	City           string            `bson:"city" json:"city" firestore:"city"`
	Auditor        string            `bson:"auditor" json:"auditor" firestore:"auditor"`
	Date           string            `bson:"date" json:"date" firestore:"date"` // DD/MM/YYYY
	Kitchen        map[string]string `bson:"kitchen" json:"kitchen" firestore:"kitchen"`
	Hygiene        map[string]string `bson:"hygiene" json:"hygiene" firestore:"hygiene"`
	FoodSafety     map[string]string `bson:"foodSafety" json:"foodSafety" firestore:"foodSafety"`
	Observations   string            `bson:"observations" json:"observations" firestore:"observations"`
	Maintenance    string            `bson:"maintenance" json:"maintenance" firestore:"maintenance"`
	ActionPlan     string            `bson:"actionPlan" json:"actionPlan" firestore:"actionPlan"`
	ScoreOutOf100  int               `bson:"scoreOutOf100" json:"scoreOutOf100" firestore:"scoreOutOf100"`
	ScoreBreakdown ScoreBreakdown    `bson:"scoreBreakdown" json:"scoreBreakdown" firestore:"scoreBreakdown"`
	Timestamp      time.Time         `bson:"timestamp" json:"timestamp" firestore:"timestamp"`
}

// UnitAuditSubmission is what a client posts to create a UnitAudit.
type UnitAuditSubmission struct {
	Branch       string            `json:"branch"`
	City         string            `json:"city"`
	Auditor      string            `json:"auditor"`
	Date         string            `json:"date"`
	Kitchen      map[string]string `json:"kitchen"`
	Hygiene      map[string]string `json:"hygiene"`
	FoodSafety   map[string]string `json:"foodSafety"`
	Observations RemarkInput       `json:"observations"`
	Maintenance  RemarkInput       `json:"maintenance"`
	ActionPlan   RemarkInput       `json:"actionPlan"`
}
