package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Renal37/laundry-service/internal/middlewares"
	"github.com/Renal37/laundry-service/internal/models"
	"github.com/Renal37/laundry-service/internal/services"
)

func IsUnknownUserDataValid(data models.UnknownUser) bool {
	if data.Login == nil || data.Password == nil {
		return false
	}

	return true
}

func Register(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.UnknownUser](w, r)
	authService := middlewares.GetServiceFromContext[models.AuthService](w, r, middlewares.AuthServiceKey)
	jwtService := middlewares.GetServiceFromContext[models.JWTService](w, r, middlewares.JwtServiceKey)

	if ok := IsUnknownUserDataValid(data); !ok {
		http.Error(w, "Request doesn't contain login or password", http.StatusBadRequest)
		return
	}

	token, err := (*jwtService).GenerateJWT(*data.Login)

	if err != nil {
		writeServiceError(w, r, err, "generate token")
		return
	}

	if err := (*authService).Register(r.Context(), data); err != nil {
		if errors.Is(err, services.ErrUserIsAlreadyRegistered) {
			http.Error(w, "User is already registered", http.StatusConflict)
			return
		}

		writeServiceError(w, r, err, "register")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token))
}
