package config

// Collection names in the record store.
const (
	UnitAuditsCollection       = "unitAudits"
	StaffEvaluationsCollection = "staffEvaluations"
)
