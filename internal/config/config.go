package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yigit/minilms/internal/pkg/cache"
	"github.com/yigit/minilms/internal/pkg/helpers"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Data struct {
		Dir string `yaml:"dir" env:"DATA_DIR"`
	} `yaml:"data"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
	} `yaml:"cors"`

	Cache struct {
		CourseDetailsTTL string `yaml:"course_details_ttl" env:"CACHE_COURSE_DETAILS_TTL"`
	} `yaml:"cache"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The file is optional; defaults and env vars are enough to run
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Data.Dir = "data"

	config.CORS.AllowedOrigins = []string{
		"http://localhost:3000",
		"http://localhost:3001",
		"http://localhost:5173",
	}

	config.Cache.CourseDetailsTTL = "10m"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Data.Dir == "" {
		return fmt.Errorf("data directory is required")
	}

	ttl, err := time.ParseDuration(config.Cache.CourseDetailsTTL)
	if err != nil {
		return fmt.Errorf("invalid course details cache TTL format: %w", err)
	}
	if ttl <= 0 {
		return fmt.Errorf("course details cache TTL must be positive, got %s", ttl)
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json", "console", "pretty":
	default:
		return fmt.Errorf("unsupported logging format %q", config.Logging.Format)
	}

	return nil
}

// CourseDetailsTTL returns the parsed course details cache TTL
func (c *Config) CourseDetailsTTL() time.Duration {
	return helpers.ParseDuration(c.Cache.CourseDetailsTTL, cache.DefaultExpiration)
}

// IsProduction reports whether the server runs in release mode
func (c *Config) IsProduction() bool {
	mode := strings.ToLower(c.Server.Mode)
	return mode == "production" || mode == "release"
}
