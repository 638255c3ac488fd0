package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/customs_clearance_ledger/internal/apperrors"
	"github.com/SscSPs/customs_clearance_ledger/internal/i18n"
	"github.com/SscSPs/customs_clearance_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error to a status code and a localized message.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	p := i18n.Printer(c.GetHeader("Accept-Language"))

	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error: "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": p.Sprintf(i18n.MsgValidation, err.Error())})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Not found: "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": p.Sprintf(i18n.MsgNotFound)})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate: "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": p.Sprintf(i18n.MsgDuplicate)})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("State conflict: "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": p.Sprintf(i18n.MsgConflict, err.Error())})
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		logger.Warn("Insufficient balance: "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": p.Sprintf(i18n.MsgInsufficientBalance)})
	case errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 500:
		logger.Warn("Request rejected: "+action, slog.String("error", err.Error()))
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": p.Sprintf(i18n.MsgInternal)})
	}
}

// respondBindError answers a request whose body or query could not be bound.
func respondBindError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	p := i18n.Printer(c.GetHeader("Accept-Language"))
	c.JSON(http.StatusBadRequest, gin.H{"error": p.Sprintf(i18n.MsgInvalidRequest), "details": err.Error()})
}

// actorID returns the authenticated user, answering 401 when there is none.
func actorID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		p := i18n.Printer(c.GetHeader("Accept-Language"))
		c.JSON(http.StatusUnauthorized, gin.H{"error": p.Sprintf(i18n.MsgUnauthorized)})
		return "", false
	}
	return userID, true
}
