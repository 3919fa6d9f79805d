package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidationsOnce sync.Once

// registerBindingValidations teaches gin's validator the domain tags used in
// request DTOs. Safe to call more than once.
func registerBindingValidations() {
	registerValidationsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Error("gin binding engine is not go-playground validator; custom tags unavailable")
			return
		}
		if err := domain.RegisterValidations(v); err != nil {
			slog.Error("Failed to register binding validations", slog.String("error", err.Error()))
		}
	})
}

// nowUTC is the clock handlers use for "current month" defaults.
var nowUTC = func() time.Time { return time.Now().UTC() }

// monthQuery reads ?month=YYYY-MM, defaulting to the current UTC month.
func monthQuery(c *gin.Context) (domain.Month, error) {
	raw := strings.TrimSpace(c.Query("month"))
	if raw == "" {
		return domain.MonthOf(nowUTC()), nil
	}
	return domain.ParseMonth(raw)
}

const storageUnavailableMsg = "Storage is unavailable, please retry later"

// respondError maps service errors onto HTTP status codes. An *AppError
// carries its own status. fallback is the message used for unexpected
// failures so internals do not leak.
func respondError(c *gin.Context, logger *slog.Logger, err error, notFoundMsg, fallback string) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Rejected invalid request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(notFoundMsg)
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflicting write", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &appErr) && appErr.Code >= http.StatusBadRequest:
		logger.Error(appErr.Message, slog.Int("status", appErr.Code), slog.String("error", err.Error()))
		message := appErr.Message
		if errors.Is(err, apperrors.ErrStorageUnavailable) {
			message = storageUnavailableMsg
		}
		c.JSON(appErr.Code, gin.H{"error": message})
	case errors.Is(err, apperrors.ErrStorageUnavailable):
		logger.Error("Storage unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": storageUnavailableMsg})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
