package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-todo-api/internal/config"
	"go-todo-api/internal/handler"
	"go-todo-api/internal/middleware"
)

type Handlers struct {
	Root *handler.RootHandler
	Auth *handler.AuthHandler
	User *handler.UserHandler
	Todo *handler.TodoHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.ClientIP(cfg.TrustProxyHeaders))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/", h.Root.Index)
	r.Get("/health", h.Root.Health)

	r.Route("/auth", func(auth chi.Router) {
		auth.Post("/token", h.Auth.Token)
		auth.Post("/refresh_token", h.Auth.Refresh)
		auth.With(authMiddleware.RequireUser).Get("/activity", h.Auth.Activity)
	})

	r.Route("/users", func(users chi.Router) {
		users.Post("/", h.User.Create)
		users.Get("/", h.User.List)
		users.Get("/{id}", h.User.Get)
		users.With(authMiddleware.RequireUser).Put("/{id}", h.User.Update)
		users.With(authMiddleware.RequireUser).Delete("/{id}", h.User.Delete)
	})

	r.Route("/todos", func(todos chi.Router) {
		todos.Use(authMiddleware.RequireUser)
		todos.Post("/", h.Todo.Create)
		todos.Get("/", h.Todo.List)
		todos.Patch("/{id}", h.Todo.Patch)
		todos.Delete("/{id}", h.Todo.Delete)
	})

	return r
}
