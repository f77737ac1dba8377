package router

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Renal37/laundry-service/internal/logger"
	"github.com/Renal37/laundry-service/internal/models"
)

// writeServiceError answers with the status matching err. Unexpected and
// configuration errors are logged and hidden behind a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	var validationErr *models.ValidationError

	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Message, http.StatusBadRequest)
	case errors.Is(err, models.ErrAccessDenied):
		http.Error(w, "Access denied", http.StatusForbidden)
	case errors.Is(err, models.ErrOrderNotFound):
		http.Error(w, "Order not found", http.StatusNotFound)
	case errors.Is(err, models.ErrUserNotFound):
		http.Error(w, "User not found", http.StatusNotFound)
	default:
		logger.Log.Error("request failed",
			zap.String("action", action),
			zap.String("uri", r.RequestURI),
			zap.Error(err),
		)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
