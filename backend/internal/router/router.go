package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/itchan-dev/bulletin/backend/internal/setup"
	mw "github.com/itchan-dev/bulletin/shared/middleware"
	"github.com/itchan-dev/bulletin/shared/middleware/metrics"
)

// New creates the chi router with every route of the API.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	// setup CORS for frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(mw.SecurityHeaders(deps.Config.Public.SecureHeaders, mw.APIContentSecurityPolicy))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	// probes and scraping stay outside auth
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Post("/register/", h.Register)
	r.Post("/login/", h.Login)

	// Admin routes
	r.Group(func(admin chi.Router) {
		admin.Use(authMw.AdminOnly())
		admin.Get("/admin/board_topics", h.BoardTopics)
	})

	// Everything else: anonymous callers pass through, the evaluator decides
	r.Group(func(api chi.Router) {
		api.Use(authMw.OptionalAuth())

		api.Route("/board", func(board chi.Router) {
			board.Get("/", h.GetBoards)
			board.Post("/", h.CreateBoard)
			board.Get("/{id}", h.GetBoard)
			board.Put("/{id}", h.UpdateBoard)
			board.Patch("/{id}", h.PatchBoard)
			board.Delete("/{id}", h.DeleteBoard)
		})

		api.Route("/thread", func(thread chi.Router) {
			thread.Get("/", h.GetThread)
			thread.Post("/", h.CreateThread)
			thread.Put("/", h.UpdateThread)
			thread.Delete("/", h.DeleteThread)
		})

		api.Route("/post", func(post chi.Router) {
			post.Get("/", h.GetPosts)
			post.Post("/", h.CreatePost)
			post.Get("/{id}", h.GetPost)
			post.Put("/{id}", h.UpdatePost)
			post.Patch("/{id}", h.PatchPost)
			post.Delete("/{id}", h.DeletePost)
		})

		api.Route("/moderator", func(moderator chi.Router) {
			moderator.Get("/", h.GetModeratorRequests)
			moderator.Post("/", h.RequestModerator)
			moderator.Put("/", h.ApproveModerator)
		})
	})

	return r
}
