package main

import (
	"log"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/emberhq/kindling/internal/config"
	"github.com/emberhq/kindling/internal/domain"
	"github.com/emberhq/kindling/internal/httpserver"
	"github.com/emberhq/kindling/internal/httpserver/middleware"
	"github.com/emberhq/kindling/internal/llm/litellm"
	"github.com/emberhq/kindling/internal/observability"
	"github.com/emberhq/kindling/internal/store/memory"
	redisstore "github.com/emberhq/kindling/internal/store/redis"
)

func main() {
	container := buildContainer()

	// Resolving the logger here forces fail-fast on a bad LOG_LEVEL before
	// the server binds its port.
	err := container.Invoke(func(_ *zap.Logger, server *httpserver.Server) {
		if err := server.Start(); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(func(app *config.AppConfig) (*zap.Logger, error) {
		return observability.InitLogger(observability.Options{
			Env:   app.Env,
			Level: app.LogLevel,
		})
	}); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}

	// Repository: Redis when configured, in-memory otherwise.
	if err := container.Provide(func(redisCfg *config.RedisConfig) (domain.ExampleRepository, error) {
		if redisCfg.URL != "" {
			return redisstore.NewRepository(redisCfg.URL)
		}
		return memory.NewRepository(), nil
	}); err != nil {
		log.Fatalf("Failed to provide repository: %v", err)
	}

	// Completion client
	if err := container.Provide(func(cfg *litellm.Config) (domain.CompletionClient, error) {
		return litellm.NewClient(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide completion client: %v", err)
	}

	// Domain Services
	if err := container.Provide(domain.NewExampleService); err != nil {
		log.Fatalf("Failed to provide example service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(httpserver.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(httpserver.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
