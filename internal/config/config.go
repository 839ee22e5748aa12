package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/spf13/viper"
)

// Config holds process settings and the credentials handed to each collaborator.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	PlacesSource string `env:"PLACES_SOURCE" envDefault:"csv"`
	PlacesCSV    string `env:"PLACES_CSV" envDefault:"places_greece.csv"`

	LLMProvider       string  `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIModel       string  `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	GeminiModel       string  `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	LLMTemperature    float32 `env:"LLM_TEMPERATURE" envDefault:"0"`
	LLMMaxTokens      int     `env:"LLM_MAX_TOKENS" envDefault:"500"`
	LLMTimeoutSeconds int     `env:"LLM_TIMEOUT_SECONDS" envDefault:"60"`

	EmbeddingProvider    string `env:"EMBEDDING_PROVIDER" envDefault:"openai"`
	OpenAIEmbeddingModel string `env:"OPENAI_EMBEDDING_MODEL" envDefault:"text-embedding-3-small"`
	GeminiEmbeddingModel string `env:"GEMINI_EMBEDDING_MODEL" envDefault:"text-embedding-004"`
	VectorTopK           int    `env:"VECTOR_TOP_K" envDefault:"5"`

	NominatimURL string `env:"NOMINATIM_URL" envDefault:"https://nominatim.openstreetmap.org"`
	OpenMeteoURL string `env:"OPEN_METEO_URL" envDefault:"https://api.open-meteo.com"`
	UserAgent    string `env:"HTTP_USER_AGENT" envDefault:"yourmyth/1.0"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	CredentialsFile string `env:"CREDENTIALS_FILE" envDefault:"creds.yaml"`

	Credentials Credentials
}

// Credentials are API keys for hosted services. Environment values win over the file.
type Credentials struct {
	OpenAIAPIKey string `env:"OPENAI_API_KEY" mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKey string `env:"GEMINI_API_KEY" mapstructure:"GEMINI_API_KEY"`
	PostgresURL  string `env:"POSTGRES_URL" mapstructure:"POSTGRES_URL"`
}

func (c *Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLMTimeoutSeconds) * time.Second
}

// LoadConfig parses the environment, then fills empty credentials from the credentials file.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fileCreds, err := LoadCredentialsFile(cfg.CredentialsFile)
	if err != nil {
		return nil, err
	}
	cfg.Credentials = mergeCredentials(cfg.Credentials, fileCreds)

	cfg.PlacesSource = strings.ToLower(cfg.PlacesSource)
	if cfg.PlacesSource != "csv" && cfg.PlacesSource != "postgres" {
		return nil, fmt.Errorf("unsupported PLACES_SOURCE %q (use csv or postgres)", cfg.PlacesSource)
	}
	return &cfg, nil
}

// LoadCredentialsFile reads a YAML key-value credentials file. A missing file is not an error.
func LoadCredentialsFile(path string) (Credentials, error) {
	var creds Credentials
	if path == "" {
		return creds, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return creds, nil
		}
		return creds, fmt.Errorf("read credentials file %s: %w", path, err)
	}

	if err := v.Unmarshal(&creds); err != nil {
		return creds, fmt.Errorf("decode credentials file %s: %w", path, err)
	}
	return creds, nil
}

func mergeCredentials(fromEnv, fromFile Credentials) Credentials {
	out := fromEnv
	if out.OpenAIAPIKey == "" {
		out.OpenAIAPIKey = fromFile.OpenAIAPIKey
	}
	if out.GeminiAPIKey == "" {
		out.GeminiAPIKey = fromFile.GeminiAPIKey
	}
	if out.PostgresURL == "" {
		out.PostgresURL = fromFile.PostgresURL
	}
	return out
}
