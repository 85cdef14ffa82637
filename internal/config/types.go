package config

import "time"

// holds all process-wide settings, read once at startup
type Config struct {
	// gateway configuration
	LLMAPIBase           string  `env:"LLM_API_BASE" envDefault:"http://localhost:8001/v1"`
	LLMModel             string  `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	LLMAPIKey            string  `env:"LLM_API_KEY"`
	LLMRequestsPerSecond float64 `env:"LLM_REQUESTS_PER_SECOND" envDefault:"0"`

	// history store location, postgres:// or sqlite://
	DatabaseURL string `env:"DATABASE_URL" envDefault:"sqlite://history.db"`

	Host        string   `env:"HOST" envDefault:"127.0.0.1"`
	Port        string   `env:"PORT" envDefault:"8000"`
	Environment string   `env:"ENVIRONMENT" envDefault:"development"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// returns host:port for the HTTP listener
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}
