package api

import (
	"net/http"

	"github.com/Daikoman-palanarame2/Pokedex/internal/api/handlers"
	"github.com/Daikoman-palanarame2/Pokedex/internal/api/middleware"
	"github.com/Daikoman-palanarame2/Pokedex/internal/api/respond"
	"github.com/Daikoman-palanarame2/Pokedex/internal/config"
	"github.com/Daikoman-palanarame2/Pokedex/internal/database"
	"github.com/Daikoman-palanarame2/Pokedex/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, tracker *database.Tracker, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(middleware.Recover(cfg.IsDevelopment()))
	r.Use(middleware.CORS(cfg.ClientURL))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, services.Collection)
	favoritesHandler := handlers.NewFavoritesHandler(services.Collection)
	catalogHandler := handlers.NewCatalogHandler(services.Catalog)
	healthHandler := handlers.NewHealthHandler(tracker)
	statusHandler := handlers.NewStatusWebSocketHandler(tracker)

	// Health check: always 200, reports connectivity in the payload
	r.Get("/health", healthHandler.Check)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Check)
		r.Get("/ws/status", statusHandler.Handle)

		// Catalog proxy: independent of the store, never behind the guard
		r.Route("/pokemon", func(r chi.Router) {
			r.Get("/", catalogHandler.List)
			r.Get("/{idOrName}", catalogHandler.Get)
		})
		r.Get("/pokemon-species/{idOrName}", catalogHandler.GetSpecies)
		r.Route("/types", func(r chi.Router) {
			r.Get("/", catalogHandler.ListTypes)
			r.Get("/{idOrName}", catalogHandler.GetType)
		})

		// Store-backed routes: the guard rejects fast while disconnected,
		// before any token work happens
		r.Group(func(r chi.Router) {
			r.Use(middleware.DatabaseGuard(tracker))

			r.Route("/auth", func(r chi.Router) {
				r.Post("/register", authHandler.Register)
				r.Post("/login", authHandler.Login)

				r.Group(func(r chi.Router) {
					r.Use(middleware.Auth(services.Auth))
					r.Get("/me", authHandler.Me)
				})
			})

			r.Route("/favorites", func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))

				r.Get("/", favoritesHandler.GetFavorites)
				r.Post("/", favoritesHandler.AddFavorite)

				r.Get("/team", favoritesHandler.GetTeam)
				r.Post("/team", favoritesHandler.AddTeamMember)
				r.Delete("/team/{pokemonId}", favoritesHandler.RemoveTeamMember)

				r.Delete("/{pokemonId}", favoritesHandler.RemoveFavorite)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusNotFound, "Route not found")
	})

	return r
}
