package models

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -destination=mocks/mock_auth.go . AuthService
type AuthService interface {
	Register(ctx context.Context, user UnknownUser) error

	Login(ctx context.Context, user UnknownUser) error

	GetUser(ctx context.Context, login string) (*User, error)

	UpdateProfile(ctx context.Context, userID string, profile Profile) (*User, error)

	ListUsers(ctx context.Context, actor *User) ([]User, error)
}

//go:generate mockgen -destination=mocks/mock_jwt.go . JWTService
type JWTService interface {
	GenerateJWT(subject string) (string, error)

	ValidateToken(token string) (*jwt.Token, error)
}

//go:generate mockgen -destination=mocks/mock_pricing.go . PricingService
type PricingService interface {
	Calculate(req PricingRequest) (PricingBreakdown, error)

	RateCard() RateCard
}

//go:generate mockgen -destination=mocks/mock_order.go . OrderService
type OrderService interface {
	SubmitOrder(ctx context.Context, submission OrderSubmission) (*Order, error)

	GetOrder(ctx context.Context, orderID string, actor *User) (*Order, error)

	GetUserOrders(ctx context.Context, userID string) ([]Order, error)

	ListOrders(ctx context.Context, actor *User, filter OrderFilter) ([]Order, error)

	SetStatus(ctx context.Context, orderID string, status OrderStatus, actor *User) (*Order, error)
}

//go:generate mockgen -destination=mocks/mock_stats.go . StatsService
type StatsService interface {
	GetStats(ctx context.Context, actor *User) (Stats, error)
}
