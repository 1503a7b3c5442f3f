package routes

import (
	"time"

	"branchaudit/config"
	"branchaudit/handlers"
	"branchaudit/middleware"
	"branchaudit/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuditRoutes registers unit audit endpoints.
func RegisterAuditRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/audits")
	{
		api.POST("", hb.Audits.SubmitAuditHandler)
		api.GET("", hb.Audits.ListAuditsHandler)
		api.POST("/score", hb.Audits.ScoreAuditHandler)
		api.GET("/exists", hb.Audits.AuditExistsHandler)
		api.GET("/latest", hb.Audits.LatestAuditHandler)
		api.GET("/summary", hb.Audits.AuditSummaryHandler)
		api.GET("/:id", hb.Audits.GetAuditHandler)
		api.GET("/:id/export", hb.Audits.ExportAuditHandler)
	}
}

// RegisterEvaluationRoutes registers staff evaluation endpoints.
func RegisterEvaluationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/evaluations")
	{
		api.POST("", hb.Evaluations.SubmitEvaluationHandler)
		api.GET("", hb.Evaluations.ListEvaluationsHandler)
		api.POST("/score", hb.Evaluations.ScoreEvaluationHandler)
		api.GET("/exists", hb.Evaluations.EvaluationExistsHandler)
		api.GET("/employee", hb.Evaluations.EmployeeHistoryHandler)
		api.GET("/latest", hb.Evaluations.LatestEvaluationHandler)
		api.GET("/report", hb.Evaluations.BranchReportHandler)
		api.GET("/:id", hb.Evaluations.GetEvaluationHandler)
		api.GET("/:id/export", hb.Evaluations.ExportEvaluationHandler)
	}
}

// RegisterSessionRoutes registers form session endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.POST("", hb.Sessions.CreateSessionHandler)
		api.GET("/:id", hb.Sessions.GetSessionHandler)
		api.PATCH("/:id", hb.Sessions.UpdateSessionHandler)
		api.DELETE("/:id", hb.Sessions.DeleteSessionHandler)
		api.POST("/:id/submit", hb.Sessions.SubmitSessionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health.HealthCheckHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(utils.ErrorHandler())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)

	// Everything under /api is rate limited and carries the caller's
	// anonymous uid when a valid token is sent.
	r.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	r.Use(middleware.OptionalIdentity(hb.IdentityProvider))

	r.GET("/api/catalog", hb.Catalog.GetCatalogHandler)
	r.POST("/api/identity/anonymous", hb.Identity.AnonymousSignInHandler)
	RegisterAuditRoutes(r, hb)
	RegisterEvaluationRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
}
