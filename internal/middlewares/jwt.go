package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Renal37/laundry-service/internal/logger"
	"github.com/Renal37/laundry-service/internal/models"
	"github.com/Renal37/laundry-service/internal/services"
)

type userFieldType string

const userField userFieldType = "userField"

type AuthMiddlewareConfig struct {
	excludePaths  []string
	optionalPaths []string
}

func AuthMiddleware() *AuthMiddlewareConfig {
	return &AuthMiddlewareConfig{}
}

// WithExcludedPaths skips authentication for every path with one of the prefixes.
func (a *AuthMiddlewareConfig) WithExcludedPaths(paths ...string) *AuthMiddlewareConfig {
	a.excludePaths = paths
	return a
}

// WithOptionalPaths lets anonymous requests through on exactly these paths.
// A bearer token, when sent, is still validated.
func (a *AuthMiddlewareConfig) WithOptionalPaths(paths ...string) *AuthMiddlewareConfig {
	a.optionalPaths = paths
	return a
}

func (a *AuthMiddlewareConfig) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, path := range a.excludePaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			for _, path := range a.optionalPaths {
				if strings.TrimSuffix(r.URL.Path, "/") == path {
					next.ServeHTTP(w, r)
					return
				}
			}

			http.Error(w, "Authorization header is required", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" || tokenString == authHeader {
			http.Error(w, "Bearer token is empty", http.StatusUnauthorized)
			return
		}

		authService := GetServiceFromContext[models.AuthService](w, r, AuthServiceKey)
		jwtService := GetServiceFromContext[models.JWTService](w, r, JwtServiceKey)
		if authService == nil || jwtService == nil {
			return
		}

		token, err := (*jwtService).ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, services.ErrTokenIsExpired) {
				http.Error(w, "Token is expired", http.StatusUnauthorized)
				return
			}

			http.Error(w, "Token is invalid", http.StatusUnauthorized)
			return
		}

		login, err := token.Claims.GetSubject()
		if err != nil || login == "" {
			http.Error(w, "Token has no subject", http.StatusUnauthorized)
			return
		}

		user, err := (*authService).GetUser(r.Context(), login)
		if err != nil {
			if errors.Is(err, services.ErrUserIsNotExist) {
				http.Error(w, "User from token does not exist", http.StatusUnauthorized)
				return
			}

			logger.Log.Error("failed to load user from token", zap.String("login", login), zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userField, user)))
	})
}

// GetUserFromContext returns the authenticated user. It answers 401 and
// returns nil for anonymous requests.
func GetUserFromContext(w http.ResponseWriter, r *http.Request) *models.User {
	user := OptionalUserFromContext(r)

	if user == nil {
		http.Error(w, "Authorization header is required", http.StatusUnauthorized)
		return nil
	}

	return user
}

// OptionalUserFromContext returns nil for anonymous requests.
func OptionalUserFromContext(r *http.Request) *models.User {
	user, _ := r.Context().Value(userField).(*models.User)
	return user
}
