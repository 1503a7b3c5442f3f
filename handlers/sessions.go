package handlers

import (
	"net/http"

	"branchaudit/services/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler exposes in-progress form sessions.
type SessionHandler struct {
	Manager *session.Manager
}

func NewSessionHandler(m *session.Manager) *SessionHandler {
	return &SessionHandler{Manager: m}
}

func (h *SessionHandler) CreateSessionHandler(c *gin.Context) {
	var input struct {
		Kind session.Kind `json:"kind" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	s, err := h.Manager.Create(c.Request.Context(), input.Kind)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *SessionHandler) GetSessionHandler(c *gin.Context) {
	s, err := h.Manager.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// UpdateSessionHandler applies a batch of actions atomically.
func (h *SessionHandler) UpdateSessionHandler(c *gin.Context) {
	var input struct {
		Actions []session.Action `json:"actions" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	s, err := h.Manager.Update(c.Request.Context(), c.Param("id"), input.Actions)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SessionHandler) DeleteSessionHandler(c *gin.Context) {
	if err := h.Manager.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitSessionHandler turns the session into a stored record.
func (h *SessionHandler) SubmitSessionHandler(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()
	record, err := h.Manager.Submit(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("Form session submitted", zap.String("session", c.Param("id")))
	c.JSON(http.StatusCreated, record)
}
