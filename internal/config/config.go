package config

import (
	"fmt"
	"reflect"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/emberhq/kindling/internal/llm/litellm"
)

// Config represents the service configuration.
type Config struct {
	App    AppConfig
	Server ServerConfig
	CORS   CORSConfig
	LLM    litellm.Config
	Redis  RedisConfig
}

// AppConfig contains process-level settings.
type AppConfig struct {
	Env      string `env:"NODE_ENV"  envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Debug    bool   `env:"DEBUG"     envDefault:"false"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"PORT"                 envDefault:"3000"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"30"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// RedisConfig contains the optional repository backend settings. An empty
// URL selects the in-memory repository.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*AppConfig
	*ServerConfig
	*CORSConfig
	*litellm.Config
	*RedisConfig
}

// Load loads environment files and parses configuration. A malformed numeric
// value is returned as an error so startup fails fast instead of silently
// falling back to a default.
func Load() (*Config, error) {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	err := env.ParseWithOptions(&cfg, env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(true): parseBool,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return &cfg, nil
}

// parseBool treats exactly "true" and "1" as true and every other value as
// false. It never fails: an unrecognized value is false, not an error.
func parseBool(v string) (interface{}, error) {
	return v == "true" || v == "1", nil
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.App,
		&cfg.Server,
		&cfg.CORS,
		&cfg.LLM,
		&cfg.Redis,
	}
}
