package handlers

import (
	"errors"
	"net/http"

	"branchaudit/services/errs"
	"branchaudit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a service error onto an HTTP status and error body.
func respondError(c *gin.Context, err error) {
	var (
		verr     *errs.ValidationError
		conflict *errs.ConflictError
		storeErr *errs.StoreError
	)
	switch {
	case errors.As(err, &verr):
		utils.JSONValidationError(c, "Invalid input", verr.Messages)
	case errors.As(err, &conflict):
		utils.JSONError(c, http.StatusConflict, "Duplicate record", conflict.Error())
	case errors.Is(err, errs.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case errors.As(err, &storeErr):
		getLogger(c).Error("Record store failure", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Record store unavailable", storeErr.Error())
	default:
		getLogger(c).Error("Unexpected error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}

func badRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
}
