package handlers

import (
	"net/http"

	"branchaudit/services/identity"
	"branchaudit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IdentityHandler struct {
	Provider identity.Provider
}

func NewIdentityHandler(p identity.Provider) *IdentityHandler {
	return &IdentityHandler{Provider: p}
}

// AnonymousSignInHandler issues an anonymous identity. Clients treat a
// failure as "continue without identity".
func (h *IdentityHandler) AnonymousSignInHandler(c *gin.Context) {
	if h.Provider == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Identity unavailable", "no identity provider is configured")
		return
	}
	id, err := h.Provider.SignInAnonymously(c.Request.Context())
	if err != nil {
		getLogger(c).Warn("Anonymous sign-in failed", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "Identity unavailable", err.Error())
		return
	}
	getLogger(c).Info("Anonymous identity issued",
		zap.String("uid", id.UID), zap.String("fingerprint", identity.Fingerprint(id.Token)))
	c.JSON(http.StatusOK, id)
}
