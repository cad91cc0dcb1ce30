package router

import (
	"github.com/go-chi/chi/v5"

	"tudu/internal/handlers/auth"
	"tudu/internal/handlers/health"
	"tudu/internal/handlers/todo"
)

type DomainHandlers struct {
	Health health.Handler
	Auth   auth.Handler
	Todo   todo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)
	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.Todo.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
