package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/wagon-calculator/internal/calculator"
	"github.com/eugenenazirov/wagon-calculator/internal/catalog"
)

const (
	defaultPort           = "8080"
	defaultEnvFile        = ".env"
	defaultRateLimitRPS   = 25.0
	defaultRateLimitBurst = 50
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	Port                 string
	ShutdownGracePeriod  time.Duration
	ReadHeaderTimeout    time.Duration
	WriteTimeout         time.Duration
	IdleTimeout          time.Duration
	EnableRequestLogging bool
	LogLevel             string
	RateLimitRPS         float64
	RateLimitBurst       int
	// CatalogFile, when set, replaces Vehicles with the contents of a YAML catalog.
	// Inline YAML vehicles clear a catalog file set from the environment.
	CatalogFile string
	Vehicles    []calculator.VehicleSpec
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	Port                 string          `yaml:"port"`
	ShutdownGracePeriod  string          `yaml:"shutdown_grace_period"`
	ReadHeaderTimeout    string          `yaml:"read_header_timeout"`
	WriteTimeout         string          `yaml:"write_timeout"`
	IdleTimeout          string          `yaml:"idle_timeout"`
	EnableRequestLogging *bool           `yaml:"enable_request_logging"`
	LogLevel             string          `yaml:"log_level"`
	RateLimit            yamlRateLimit   `yaml:"rate_limit"`
	CatalogFile          string          `yaml:"catalog_file"`
	Vehicles             []catalog.Entry `yaml:"vehicles"`
}

// yamlRateLimit represents the rate limit section in YAML.
type yamlRateLimit struct {
	RPS   *float64 `yaml:"rps"`
	Burst *int     `yaml:"burst"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile     string
	EnvFile        string
	Port           *string
	LogLevel       *string
	CatalogFile    *string
	RateLimitRPS   *float64
	RateLimitBurst *int
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
//
// The vehicle catalog follows the same order: whichever source set it last,
// either as a catalog file or as inline YAML vehicles, wins. A YAML file that
// sets both catalog_file and vehicles uses the catalog file.
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	envFile := ""
	if overrides != nil {
		envFile = overrides.EnvFile
	}
	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	if err := applyEnvConfig(&cfg); err != nil {
		return Config{}, err
	}

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		if err := applyYAMLConfig(&cfg, yamlCfg); err != nil {
			return Config{}, fmt.Errorf("apply YAML config: %w", err)
		}
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if cfg.CatalogFile != "" {
		vehicles, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			return Config{}, fmt.Errorf("load vehicle catalog: %w", err)
		}
		cfg.Vehicles = vehicles
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Port:                 defaultPort,
		ShutdownGracePeriod:  10 * time.Second,
		ReadHeaderTimeout:    5 * time.Second,
		WriteTimeout:         15 * time.Second,
		IdleTimeout:          60 * time.Second,
		EnableRequestLogging: true,
		LogLevel:             "info",
		RateLimitRPS:         defaultRateLimitRPS,
		RateLimitBurst:       defaultRateLimitBurst,
		Vehicles:             catalog.DefaultVehicles(),
	}
}

// loadEnvFile seeds the process environment from a dotenv file. Variables that
// are already set win. A missing default .env file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", defaultEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) error {
	if yamlCfg.Port != "" {
		cfg.Port = yamlCfg.Port
	}

	durations := []struct {
		key    string
		raw    string
		target *time.Duration
	}{
		{"shutdown_grace_period", yamlCfg.ShutdownGracePeriod, &cfg.ShutdownGracePeriod},
		{"read_header_timeout", yamlCfg.ReadHeaderTimeout, &cfg.ReadHeaderTimeout},
		{"write_timeout", yamlCfg.WriteTimeout, &cfg.WriteTimeout},
		{"idle_timeout", yamlCfg.IdleTimeout, &cfg.IdleTimeout},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		value, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.target = value
	}

	if yamlCfg.EnableRequestLogging != nil {
		cfg.EnableRequestLogging = *yamlCfg.EnableRequestLogging
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}

	if yamlCfg.RateLimit.RPS != nil {
		cfg.RateLimitRPS = *yamlCfg.RateLimit.RPS
	}

	if yamlCfg.RateLimit.Burst != nil {
		cfg.RateLimitBurst = *yamlCfg.RateLimit.Burst
	}

	if yamlCfg.CatalogFile != "" {
		cfg.CatalogFile = yamlCfg.CatalogFile
	}

	if len(yamlCfg.Vehicles) > 0 {
		vehicles, err := catalog.Specs(yamlCfg.Vehicles)
		if err != nil {
			return fmt.Errorf("vehicles: %w", err)
		}
		cfg.Vehicles = vehicles
		if yamlCfg.CatalogFile == "" {
			cfg.CatalogFile = ""
		}
	}

	return nil
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) error {
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.Port = port
	}

	if level := strings.TrimSpace(os.Getenv("LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}

	if path := strings.TrimSpace(os.Getenv("CATALOG_FILE")); path != "" {
		cfg.CatalogFile = path
	}

	if raw := strings.TrimSpace(os.Getenv("ENABLE_REQUEST_LOGGING")); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("ENABLE_REQUEST_LOGGING: %w", err)
		}
		cfg.EnableRequestLogging = enabled
	}

	if rps := strings.TrimSpace(os.Getenv("RATE_LIMIT_RPS")); rps != "" {
		if value, err := strconv.ParseFloat(rps, 64); err == nil && value >= 0 {
			cfg.RateLimitRPS = value
		}
	}

	if burst := strings.TrimSpace(os.Getenv("RATE_LIMIT_BURST")); burst != "" {
		if value, err := strconv.Atoi(burst); err == nil && value >= 0 {
			cfg.RateLimitBurst = value
		}
	}

	return nil
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.Port != nil && *overrides.Port != "" {
		cfg.Port = *overrides.Port
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}

	if overrides.CatalogFile != nil && *overrides.CatalogFile != "" {
		cfg.CatalogFile = *overrides.CatalogFile
	}

	if overrides.RateLimitRPS != nil && *overrides.RateLimitRPS >= 0 {
		cfg.RateLimitRPS = *overrides.RateLimitRPS
	}

	if overrides.RateLimitBurst != nil && *overrides.RateLimitBurst >= 0 {
		cfg.RateLimitBurst = *overrides.RateLimitBurst
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be >= 0")
	}
	if cfg.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be >= 0")
	}
	if len(cfg.Vehicles) == 0 {
		return fmt.Errorf("vehicle catalog cannot be empty")
	}
	return nil
}
