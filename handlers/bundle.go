package handlers

import (
	"branchaudit/services/identity"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Audits      *AuditHandler
	Evaluations *EvaluationHandler
	Sessions    *SessionHandler
	Catalog     *CatalogHandler
	Identity    *IdentityHandler
	Health      *HealthHandler

	// IdentityProvider backs the optional identity middleware; it may be nil.
	IdentityProvider identity.Provider
}
