package handlers

import (
	"context"
	"time"

	"branchaudit/middleware"
	"branchaudit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// storeTimeout bounds every record store round trip made for a request.
const storeTimeout = 10 * time.Second

// getLogger returns the request logger: the one stored on the context, or
// the global logger tagged with the request path and caller uid.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	logger := utils.GetLogger().With(zap.String("path", c.FullPath()))
	if uid := middleware.UID(c); uid != "" {
		logger = logger.With(zap.String("uid", uid))
	}
	return logger
}

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), storeTimeout)
}
