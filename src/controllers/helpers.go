package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/supply-dashboard/supply-dashboard-backend/src/middleware"
	"github.com/supply-dashboard/supply-dashboard-backend/src/services"
)

// parseID reads an integer path parameter. On failure it writes a 400 and
// returns false.
func parseID(ctx *gin.Context, param, resource string) (int, bool) {
	id, err := strconv.Atoi(ctx.Param(param))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s id", resource)})
		return 0, false
	}
	return id, true
}

// bindJSON decodes the request body into dst. On failure it writes a 400 and
// returns false.
func bindJSON(ctx *gin.Context, dst interface{}) bool {
	if err := ctx.ShouldBindJSON(dst); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError maps a service error to a status. Store failures are logged and
// answered with an opaque message.
func respondError(ctx *gin.Context, resource string, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
	case errors.Is(err, services.ErrUsernameTaken):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		_ = ctx.Error(err)
		slog.Error("Store operation failed",
			"resource", resource,
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"request_id", middleware.RequestID(ctx),
			"error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
