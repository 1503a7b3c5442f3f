package handlers

import (
	"net/http"

	"branchaudit/services/scoring"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Catalog scoring.Catalog
}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{Catalog: scoring.DefaultCatalog()}
}

// GetCatalogHandler returns checklist items, remark presets and rating levels.
func (h *CatalogHandler) GetCatalogHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog)
}
