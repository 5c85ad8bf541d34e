package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/rajesh2024-krita/fintcs/internal/adapter/http/handler"
	"github.com/rajesh2024-krita/fintcs/internal/adapter/http/middleware"
	"github.com/rajesh2024-krita/fintcs/internal/domain"
	"github.com/rajesh2024-krita/fintcs/internal/infrastructure/auth"
	"github.com/rajesh2024-krita/fintcs/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	SocietyHandler   *handler.SocietyHandler
	MemberHandler    *handler.MemberHandler
	LoanHandler      *handler.LoanHandler
	VoucherHandler   *handler.VoucherHandler
	DemandHandler    *handler.DemandHandler
	UserHandler      *handler.UserHandler
	AuthHandler      *handler.AuthHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	JWTManager       *auth.JWTManager
	AuthEnabled      bool
	RateLimitRPS     float64
	RateLimitBurst   int
}

// NewRouter creates a new HTTP router. Viewing is open to any
// authenticated role, mutations need operator, deletes and the
// society/user admin surface need admin.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(log.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)
	if cfg.RateLimitRPS > 0 {
		r.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Login stays public
		r.Post("/auth/login", cfg.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			if cfg.AuthEnabled {
				r.Use(middleware.AuthMiddleware(cfg.JWTManager))
			}

			r.Get("/auth/me", cfg.AuthHandler.GetCurrentUser)

			// Societies
			r.Route("/societies", func(r chi.Router) {
				r.Get("/", cfg.SocietyHandler.List)
				r.Get("/{id}", cfg.SocietyHandler.Get)

				r.Group(func(r chi.Router) {
					if cfg.AuthEnabled {
						r.Use(middleware.RequireRole(domain.RoleAdmin))
					}
					r.Post("/", cfg.SocietyHandler.Create)
					r.Put("/{id}", cfg.SocietyHandler.Update)
					r.Delete("/{id}", cfg.SocietyHandler.Delete)
				})
			})

			// Members
			r.Route("/members", func(r chi.Router) {
				r.Get("/", cfg.MemberHandler.List)
				r.Get("/{id}", cfg.MemberHandler.Get)

				r.Group(func(r chi.Router) {
					if cfg.AuthEnabled {
						r.Use(middleware.RequireRole(domain.RoleOperator))
					}
					r.Post("/", cfg.MemberHandler.Create)
					r.Put("/{id}", cfg.MemberHandler.Update)
				})

				r.Group(func(r chi.Router) {
					if cfg.AuthEnabled {
						r.Use(middleware.RequireRole(domain.RoleAdmin))
					}
					r.Delete("/{id}", cfg.MemberHandler.Delete)
				})
			})

			// Loans
			r.Route("/loans", func(r chi.Router) {
				r.Get("/", cfg.LoanHandler.List)
				r.Get("/{id}", cfg.LoanHandler.Get)

				r.Group(func(r chi.Router) {
					if cfg.AuthEnabled {
						r.Use(middleware.RequireRole(domain.RoleOperator))
					}
					r.Post("/", cfg.LoanHandler.Create)
					r.Put("/{id}", cfg.LoanHandler.Update)
				})

				r.Group(func(r chi.Router) {
					if cfg.AuthEnabled {
						r.Use(middleware.RequireRole(domain.RoleAdmin))
					}
					r.Delete("/{id}", cfg.LoanHandler.Delete)
				})
			})

			// Vouchers
			r.Route("/vouchers", func(r chi.Router) {
				r.Get("/", cfg.VoucherHandler.List)
				r.Get("/{id}", cfg.VoucherHandler.Get)
				r.Get("/{id}/totals", cfg.VoucherHandler.Totals)

				r.Group(func(r chi.Router) {
					if cfg.AuthEnabled {
						r.Use(middleware.RequireRole(domain.RoleOperator))
					}
					r.Post("/", cfg.VoucherHandler.Create)
				})

				r.Group(func(r chi.Router) {
					if cfg.AuthEnabled {
						r.Use(middleware.RequireRole(domain.RoleAdmin))
					}
					r.Delete("/{id}", cfg.VoucherHandler.Delete)
				})
			})

			// Demand statements
			r.Route("/demand", func(r chi.Router) {
				r.Get("/", cfg.DemandHandler.Get)

				r.Group(func(r chi.Router) {
					if cfg.AuthEnabled {
						r.Use(middleware.RequireRole(domain.RoleOperator))
					}
					r.Post("/generate", cfg.DemandHandler.Generate)
				})
			})

			// Users
			r.Route("/users", func(r chi.Router) {
				if cfg.AuthEnabled {
					r.Use(middleware.RequireRole(domain.RoleAdmin))
				}
				r.Post("/", cfg.UserHandler.Create)
				r.Get("/", cfg.UserHandler.List)
				r.Get("/{id}", cfg.UserHandler.Get)
				r.Put("/{id}", cfg.UserHandler.Update)
				r.Delete("/{id}", cfg.UserHandler.Delete)
			})
		})
	})

	return r
}
