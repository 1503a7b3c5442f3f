package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"branchaudit/config"
	"branchaudit/database"
	auditsRepo "branchaudit/database/repository/audits"
	evaluationsRepo "branchaudit/database/repository/evaluations"
	"branchaudit/handlers"
	"branchaudit/routes"
	"branchaudit/services/audit"
	"branchaudit/services/evaluation"
	"branchaudit/services/guard"
	"branchaudit/services/identity"
	"branchaudit/services/session"
	"branchaudit/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// newIdentityProvider is best effort: on failure the service runs without
// anonymous identities.
func newIdentityProvider(ctx context.Context, logger *zap.Logger) identity.Provider {
	switch config.AppConfig.IdentityProvider {
	case "firebase":
		app, err := utils.FirebaseInit(ctx)
		if err != nil {
			logger.Warn("main: firebase identity unavailable, continuing without identity", zap.Error(err))
			return nil
		}
		p, err := identity.NewFirebaseProvider(ctx, app)
		if err != nil {
			logger.Warn("main: firebase auth unavailable, continuing without identity", zap.Error(err))
			return nil
		}
		return p
	case "", "jwt":
		if config.AppConfig.JWTSecret == "" {
			logger.Warn("main: JWT_SECRET not set, anonymous tokens will not survive a restart")
		}
		return identity.NewJWTProvider(config.AppConfig.JWTSecret, 24*time.Hour)
	}
	logger.Warn("main: unknown IDENTITY_PROVIDER, continuing without identity",
		zap.String("provider", config.AppConfig.IdentityProvider))
	return nil
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	store, err := database.InitStore(rootCtx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize record store: %v", err)
	}
	defer store.Close(context.Background())

	cacheClient := utils.GetCacheClient()
	sessionClient := utils.GetSessionClient()

	idProvider := newIdentityProvider(rootCtx, logger)
	if idProvider != nil {
		// One startup sign-in confirms the provider works; failure is only logged.
		signInCtx, cancel := context.WithTimeout(rootCtx, 5*time.Second)
		if _, err := idProvider.SignInAnonymously(signInCtx); err != nil {
			logger.Warn("main: anonymous sign-in failed, continuing without identity", zap.Error(err))
		} else {
			logger.Info("main: anonymous identity provider ready", zap.String("provider", config.AppConfig.IdentityProvider))
		}
		cancel()
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger())

	// repositories.
	auditRepo := auditsRepo.NewUnitAuditRepo(rootCtx, store)
	evalRepo := evaluationsRepo.NewStaffEvaluationRepo(rootCtx, store)

	// services.
	uniqueness := guard.New(store, logger.Named("guard"))
	auditService := audit.NewDefaultAuditService(auditRepo, uniqueness, logger.Named("audit"))
	evaluationService := evaluation.NewDefaultEvaluationService(
		evalRepo,
		uniqueness,
		evaluation.NewRedisReportCache(cacheClient, config.AppConfig.ReportCacheTTL),
		logger.Named("evaluation"),
	)
	sessionManager := session.NewManager(
		session.NewRedisStore(sessionClient, config.AppConfig.SessionTTL),
		auditService,
		evaluationService,
		logger.Named("session"),
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Audits:           handlers.NewAuditHandler(auditService),
		Evaluations:      handlers.NewEvaluationHandler(evaluationService),
		Sessions:         handlers.NewSessionHandler(sessionManager),
		Catalog:          handlers.NewCatalogHandler(),
		Identity:         handlers.NewIdentityHandler(idProvider),
		Health:           &handlers.HealthHandler{},
		IdentityProvider: idProvider,
	}

	routes.RegisterRoutes(router, handlerBundle)
	utils.StartHealthMonitor(rootCtx, []*redis.Client{cacheClient, sessionClient}, store)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	cacheClient.Close()
	sessionClient.Close()

	logger.Sugar().Info("main: server stopped gracefully")
}
