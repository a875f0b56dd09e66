package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	StoreBackendREST     = "rest"
	StoreBackendPostgres = "postgres"
)

// Config holds the environment backed settings of the API.
// Secrets are required and never defaulted.
type Config struct {
	Port      string        `env:"PORT" envDefault:"8080"`
	Env       string        `env:"ENV" envDefault:"development"`
	LogLevel  string        `env:"LOG_LEVEL" envDefault:"info"`
	APIPrefix string        `env:"API_PREFIX" envDefault:"/api"`
	Timeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,https://bolt.new,https://sb1-j3bfcsq5.stackblitz.io"`

	// Hosted store
	SupabaseURL  string `env:"SUPABASE_URL,required,notEmpty"`
	SupabaseKey  string `env:"SUPABASE_KEY,required,notEmpty"`
	StoreBackend string `env:"STORE_BACKEND" envDefault:"rest"`
	DatabaseURL  string `env:"DATABASE_URL"`

	// Completion API
	LLMProvider    string  `env:"LLM_PROVIDER" envDefault:"openai"`
	LLMModel       string  `env:"LLM_MODEL"`
	LLMMaxTokens   int     `env:"LLM_MAX_TOKENS" envDefault:"150"`
	LLMTemperature float32 `env:"LLM_TEMPERATURE" envDefault:"0.7"`
	OpenAIKey      string  `env:"OPENAI_API_KEY"`
	GroqKey        string  `env:"GROQ_API_KEY"`
	DeepSeekKey    string  `env:"DEEPSEEK_API_KEY"`
	ClaudeKey      string  `env:"CLAUDE_API_KEY"`
	GeminiKey      string  `env:"GEMINI_API_KEY"`

	// Chat
	ChatExposeLLMErrors bool   `env:"CHAT_EXPOSE_LLM_ERRORS" envDefault:"false"`
	CatalogPath         string `env:"CATALOG_PATH"`
}

// MigrationConfig is the subset needed by cmd/migrate.
type MigrationConfig struct {
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
}

func LoadConfig() (*Config, error) {
	loadDotEnv()
	return parse(env.Options{})
}

func LoadMigrationConfig() (*MigrationConfig, error) {
	loadDotEnv()

	cfg := &MigrationConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse migration config: %w", err)
	}
	return cfg, nil
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, using system environment variables")
	}
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the cross-field rules env tags cannot express.
func (c *Config) Validate() error {
	c.StoreBackend = strings.ToLower(strings.TrimSpace(c.StoreBackend))
	switch c.StoreBackend {
	case StoreBackendREST:
	case StoreBackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_BACKEND=%s", StoreBackendPostgres)
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q (use %s or %s)", c.StoreBackend, StoreBackendREST, StoreBackendPostgres)
	}

	if c.LLMMaxTokens <= 0 {
		return fmt.Errorf("LLM_MAX_TOKENS must be positive, got %d", c.LLMMaxTokens)
	}

	c.APIPrefix = "/" + strings.Trim(c.APIPrefix, "/")
	if c.APIPrefix == "/" {
		c.APIPrefix = ""
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
