package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"projectconnect-go/internal/config"
	"projectconnect-go/internal/transport/httpserver/handler"
	authmw "projectconnect-go/internal/transport/httpserver/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, auth *authmw.JWTAuth) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.CORS.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Common.Health)

		r.Post("/auth/register", handlers.Auth.Register)
		r.Post("/auth/login", handlers.Auth.Login)

		r.Get("/projects", handlers.Projects.ListProjects)
		r.Get("/projects/{id}", handlers.Projects.GetProject)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/auth/me", handlers.Auth.Me)

			r.Post("/projects", handlers.Projects.CreateProject)
			r.Get("/my-projects", handlers.Projects.ListMyProjects)

			r.Post("/bids", handlers.Bids.CreateBid)
			r.Get("/projects/{id}/bids", handlers.Bids.ListProjectBids)
		})
	})

	return r
}
