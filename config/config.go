package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Port               string        `yaml:"port"`
	RedisAddr          string        `yaml:"redis_addr"`
	CacheTTL           time.Duration `yaml:"cache_ttl"`
	RateLimitPerMinute int           `yaml:"rate_limit_per_minute"`

	// Análisis con IA; vacío o "none" desactiva la función
	AIProvider   string        `yaml:"ai_provider"`
	AIModel      string        `yaml:"ai_model"`
	AITimeout    time.Duration `yaml:"ai_timeout"`
	GeminiAPIKey string        `yaml:"-"`
	OpenAIAPIKey string        `yaml:"-"`
}

func Default() *Config {
	return &Config{
		Port:               "8080",
		CacheTTL:           24 * time.Hour,
		RateLimitPerMinute: 30,
		AIProvider:         "gemini",
		AITimeout:          30 * time.Second,
	}
}

// Load reads an optional YAML file named by CONFIG_FILE, then .env, then
// the process environment. Later sources win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := cfg.applyYAML(data); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyYAML(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	setString := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	setDuration := func(key string, dst *time.Duration) error {
		v := getenv(key)
		if v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = d
		return nil
	}

	setString("PORT", &c.Port)
	setString("REDIS_ADDR", &c.RedisAddr)
	setString("AI_PROVIDER", &c.AIProvider)
	setString("AI_MODEL", &c.AIModel)
	setString("OPENAI_API_KEY", &c.OpenAIAPIKey)
	setString("API_KEY", &c.GeminiAPIKey)
	setString("GEMINI_API_KEY", &c.GeminiAPIKey)

	if err := setDuration("CACHE_TTL", &c.CacheTTL); err != nil {
		return err
	}
	if err := setDuration("AI_TIMEOUT", &c.AITimeout); err != nil {
		return err
	}

	if v := getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %q", v)
		}
		c.RateLimitPerMinute = n
	}
	return nil
}

// APIKey returns the credential for the configured provider.
func (c *Config) APIKey() string {
	switch c.AIProvider {
	case "gemini":
		return c.GeminiAPIKey
	case "openai":
		return c.OpenAIAPIKey
	}
	return ""
}

// AIEnabled reports whether a provider is selected and has credentials.
// The literal "undefined" is what some frontends inject for a missing key.
func (c *Config) AIEnabled() bool {
	key := c.APIKey()
	return key != "" && key != "undefined"
}
