package http

import (
	"net/http"

	"github.com/abmacros/server/internal/application/auth"
	"github.com/abmacros/server/internal/application/food"
	"github.com/abmacros/server/internal/application/meal"
	"github.com/abmacros/server/internal/application/profile"
	"github.com/abmacros/server/internal/config"
	"github.com/abmacros/server/internal/transport/http/handler"
	appmiddleware "github.com/abmacros/server/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 — applied to the public auth endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	authSvc := auth.NewService(auth.ServiceDeps{
		Verifications: deps.VerificationRepo,
		SMSSender:     deps.SMSSender,
		Signer:        deps.JWTProvider,
		DevMode:       cfg.IsDevelopment(),
	})
	catalog := food.NewCatalog()
	mealSvc := meal.NewService(deps.MealRepo, catalog)
	profileSvc := profile.NewService(deps.ProfileRepo)

	authH := handler.NewAuthHandler(authSvc)
	mealH := handler.NewMealHandler(mealSvc)
	foodH := handler.NewFoodHandler(catalog)
	profileH := handler.NewProfileHandler(profileSvc)
	healthH := handler.NewHealthHandler()

	r.Route("/api", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/auth/send-code", authH.SendCode)
		r.With(sensitiveRL.Limit).Post("/auth/verify", authH.Verify)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.Auth(deps.JWTProvider))

			r.Get("/foods", foodH.List)
			r.Get("/meals", mealH.List)
			r.Post("/meals", mealH.Add)
			r.Delete("/meals/{id}", mealH.Delete)
			r.Get("/targets", profileH.GetTargets)
			r.Post("/targets", profileH.UpdateTargets)
			r.Get("/profile", profileH.Get)
		})
	})

	// Everything else is the client-rendered frontend.
	r.NotFound(handler.NewSPAHandler(cfg.StaticDir).ServeHTTP)

	return r
}
