package router

import (
	"net/http"

	"github.com/Renal37/laundry-service/internal/middlewares"
	"github.com/Renal37/laundry-service/internal/models"
)

func GetUsers(w http.ResponseWriter, r *http.Request) {
	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	authService := middlewares.GetServiceFromContext[models.AuthService](w, r, middlewares.AuthServiceKey)

	users, err := (*authService).ListUsers(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err, "list users")
		return
	}

	middlewares.EncodeJSONResponse(w, users)
}

func GetStats(w http.ResponseWriter, r *http.Request) {
	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	statsService := middlewares.GetServiceFromContext[models.StatsService](w, r, middlewares.StatsServiceKey)

	stats, err := (*statsService).GetStats(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err, "get stats")
		return
	}

	middlewares.EncodeJSONResponse(w, stats)
}
