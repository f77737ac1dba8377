package router

import (
	"net/http"

	"github.com/Renal37/laundry-service/internal/middlewares"
	"github.com/Renal37/laundry-service/internal/models"
)

func GetProfile(w http.ResponseWriter, r *http.Request) {
	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	middlewares.EncodeJSONResponse(w, user)
}

func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	data := middlewares.GetParsedJSONData[models.Profile](w, r)
	authService := middlewares.GetServiceFromContext[models.AuthService](w, r, middlewares.AuthServiceKey)

	updated, err := (*authService).UpdateProfile(r.Context(), user.ID, data)
	if err != nil {
		writeServiceError(w, r, err, "update profile")
		return
	}

	middlewares.EncodeJSONResponse(w, updated)
}
