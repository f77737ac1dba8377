package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Renal37/laundry-service/internal/logger"
	"github.com/Renal37/laundry-service/internal/metrics"
	"github.com/Renal37/laundry-service/internal/middlewares"
	"github.com/Renal37/laundry-service/internal/models"
)

type Config struct {
	Endpoint string
}

type Router struct {
	config         Config
	authService    models.AuthService
	jwtService     models.JWTService
	pricingService models.PricingService
	orderService   models.OrderService
	statsService   models.StatsService
	metrics        *metrics.Recorder
}

func New(
	config Config,
	authService models.AuthService,
	jwtService models.JWTService,
	pricingService models.PricingService,
	orderService models.OrderService,
	statsService models.StatsService,
	recorder *metrics.Recorder,
) *Router {
	return &Router{
		config,
		authService,
		jwtService,
		pricingService,
		orderService,
		statsService,
		recorder,
	}
}

func (router *Router) get() chi.Router {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		logger.RequestLogger,
		middleware.Recoverer,
		router.metrics.Middleware,
	)

	r.Handle("/metrics", router.metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(
			middlewares.ServiceInjectorMiddleware(
				router.authService,
				router.jwtService,
				router.pricingService,
				router.orderService,
				router.statsService,
			),
			middlewares.AuthMiddleware().WithExcludedPaths(
				"/api/user/register",
				"/api/user/login",
				"/api/pricing",
			).WithOptionalPaths(
				"/api/orders",
			).Middleware,
		)

		r.Route("/api/user", func(r chi.Router) {
			r.With(middlewares.JSONMiddleware[models.UnknownUser]).Post("/register", Register)
			r.With(middlewares.JSONMiddleware[models.UnknownUser]).Post("/login", Login)

			r.Get("/profile", GetProfile)
			r.With(middlewares.JSONMiddleware[models.Profile]).Put("/profile", UpdateProfile)
		})

		r.Route("/api/pricing", func(r chi.Router) {
			r.Get("/", GetRateCard)
			r.With(middlewares.JSONMiddleware[models.PricingRequest]).Post("/calculate", CalculatePrice)
		})

		r.Route("/api/orders", func(r chi.Router) {
			r.With(middlewares.JSONMiddleware[OrderRequest]).Post("/", CreateOrder)
			r.Get("/", ListOrders)
			r.Get("/my-orders", GetMyOrders)
			r.Get("/{id}", GetOrder)
			r.With(middlewares.JSONMiddleware[StatusRequest]).Put("/{id}/status", UpdateOrderStatus)
		})

		r.Route("/api/admin", func(r chi.Router) {
			r.Get("/users", GetUsers)
			r.Get("/stats", GetStats)
		})
	})

	return r
}

// Handler returns the complete HTTP handler of the service.
func (router *Router) Handler() http.Handler {
	return router.get()
}

func (router *Router) Addr() string {
	return router.config.Endpoint
}
