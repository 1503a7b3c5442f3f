// File: models/staffEvaluation.go
package models

import "time"

// Rating levels for staff evaluation parameters.
const (
	RatingExcellent = "Excellent"
	RatingGood      = "Good"
	RatingAverage   = "Average"
	RatingPoor      = "Poor"
)

// RatingLevels lists the levels best first.
var RatingLevels = []string{RatingExcellent, RatingGood, RatingAverage, RatingPoor}

// RemarksSuffix marks a ratings key holding free text for a parameter.
const RemarksSuffix = "_remarks"

// Selection is the branch/auditor context captured when an evaluation is made.
type Selection struct {
	Branch  string `bson:"branch" json:"branch" firestore:"branch"`
	City    string `bson:"city" json:"city" firestore:"city"`
	Auditor string `bson:"auditor" json:"auditor" firestore:"auditor"`
	Date    string `bson:"date" json:"date" firestore:"date"` // DD/MM/YYYY
}

// StaffEvaluation is one performance evaluation of an employee on a given day.
type StaffEvaluation struct {
	ID          string            `bson:"id" json:"id" firestore:"id"`
	StaffName   string            `bson:"staffName" json:"staffName" firestore:"staffName"`
	EmpCode     string            `bson:"empCode" json:"empCode" firestore:"empCode"`
	Designation string            `bson:"designation" json:"designation" firestore:"designation"`
	Ratings     map[string]string `bson:"ratings" json:"ratings" firestore:"ratings"`
	TotalMarks  string            `bson:"totalMarks" json:"totalMarks" firestore:"totalMarks"`
	Grade       string            `bson:"grade" json:"grade" firestore:"grade"`
	// Nil for legacy documents written without a numeric score.
	ScoreOutOf100 *int      `bson:"scoreOutOf100,omitempty" json:"scoreOutOf100,omitempty" firestore:"scoreOutOf100,omitempty"`
	Selection     Selection `bson:"selection" json:"selection" firestore:"selection"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt" firestore:"createdAt"`
}

// StaffEvaluationSubmission is what a client posts to create a StaffEvaluation.
type StaffEvaluationSubmission struct {
	StaffName   string            `json:"staffName"`
	EmpCode     string            `json:"empCode"`
	Designation string            `json:"designation"`
	Ratings     map[string]string `json:"ratings"`
	Selection   Selection         `json:"selection"`
}
