//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"tudu/config"
	"tudu/infras/jwt"
	"tudu/infras/otel"
	"tudu/infras/postgres"
	"tudu/infras/redis"
	authService "tudu/internal/domains/auth/service"
	todoRepository "tudu/internal/domains/todo/repository"
	todoService "tudu/internal/domains/todo/service"
	userRepository "tudu/internal/domains/user/repository"
	authHandler "tudu/internal/handlers/auth"
	healthHandler "tudu/internal/handlers/health"
	todoHandler "tudu/internal/handlers/todo"
	"tudu/shared/cache"
	"tudu/shared/password"
	"tudu/transport/http"
	"tudu/transport/http/middleware"
	"tudu/transport/http/router"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	password.New,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	todoDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	todoHandler.New,
	authHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
