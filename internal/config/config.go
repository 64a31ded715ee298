// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Storage backends.
const (
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Theme sources.
const (
	ThemeSourceSwitch = "switch"
	ThemeSourceFile   = "file"
	ThemeSourcePortal = "portal"
)

// Config holds the application configuration.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Storage StorageConfig
	Theme   ThemeConfig
	Palette PaletteConfig
	Server  ServerConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level  string
	Format string // json, pretty, logfmt; empty auto-detects
}

// StorageConfig holds preference persistence configuration.
type StorageConfig struct {
	Backend  string // badger, sqlite or memory (default: badger)
	DataPath string // Directory holding the preference database (default: ~/.readconfig)
}

// ThemeConfig selects where the light/dark signal comes from.
type ThemeConfig struct {
	Source string // switch, file or portal (default: switch)
	Mode   string // Initial mode for the switch source (default: light)
	File   string // Signal file for the file source (default: {data}/theme)
}

// PaletteConfig holds color palette configuration.
type PaletteConfig struct {
	Path string // Optional YAML palette; built-in palette when empty
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port           string        // Server port (default: 8787)
	ReadTimeout    time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout   time.Duration // HTTP write timeout (default: 15s)
	IdleTimeout    time.Duration // HTTP idle timeout (default: 60s)
	RateLimitRPS   float64       // Write requests per second per client (default: 5)
	RateLimitBurst int           // Write burst per client (default: 10)
	AllowedOrigins []string      // CORS origins (default: *)
}

// Flags carries command-line overrides. Empty fields fall through to the
// environment, then the .env file, then defaults.
type Flags struct {
	Env          string
	EnvFile      string
	LogLevel     string
	LogFormat    string
	Backend      string
	DataPath     string
	ThemeSource  string
	ThemeMode    string
	ThemeFile    string
	PalettePath  string
	Port         string
	ReadTimeout  string
	WriteTimeout string
	IdleTimeout  string
}

// Load loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func Load(flags Flags) (*Config, error) {
	envFile := flags.EnvFile
	if envFile == "" {
		envFile = ".env"
	}

	// Load .env file if it exists (silently ignore if not found).
	if err := loadEnvFile(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}

	// Build config with proper precedence.
	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(flags.Env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level:  getConfigValue(flags.LogLevel, "LOG_LEVEL", "info"),
			Format: getConfigValue(flags.LogFormat, "LOG_FORMAT", ""),
		},
		Storage: StorageConfig{
			Backend:  strings.ToLower(getConfigValue(flags.Backend, "STORAGE_BACKEND", BackendBadger)),
			DataPath: getConfigValue(flags.DataPath, "DATA_PATH", ""),
		},
		Theme: ThemeConfig{
			Source: strings.ToLower(getConfigValue(flags.ThemeSource, "THEME_SOURCE", ThemeSourceSwitch)),
			Mode:   strings.ToLower(getConfigValue(flags.ThemeMode, "THEME_MODE", "light")),
			File:   getConfigValue(flags.ThemeFile, "THEME_FILE", ""),
		},
		Palette: PaletteConfig{
			Path: getConfigValue(flags.PalettePath, "PALETTE_PATH", ""),
		},
		Server: ServerConfig{
			Port:           getConfigValue(flags.Port, "SERVER_PORT", "8787"),
			RateLimitRPS:   getFloatConfigValue("", "RATE_LIMIT_RPS", 5),
			RateLimitBurst: getIntConfigValue("", "RATE_LIMIT_BURST", 10),
			AllowedOrigins: splitList(getConfigValue("", "CORS_ALLOWED_ORIGINS", "*")),
		},
	}

	// Parse server timeouts.
	var err error
	if cfg.Server.ReadTimeout, err = getDurationConfigValue(flags.ReadTimeout, "SERVER_READ_TIMEOUT", "15s"); err != nil {
		return nil, fmt.Errorf("invalid read timeout: %w", err)
	}
	if cfg.Server.WriteTimeout, err = getDurationConfigValue(flags.WriteTimeout, "SERVER_WRITE_TIMEOUT", "15s"); err != nil {
		return nil, fmt.Errorf("invalid write timeout: %w", err)
	}
	if cfg.Server.IdleTimeout, err = getDurationConfigValue(flags.IdleTimeout, "SERVER_IDLE_TIMEOUT", "60s"); err != nil {
		return nil, fmt.Errorf("invalid idle timeout: %w", err)
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}

	// Validate configuration.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	switch c.Logger.Format {
	case "", "json", "pretty", "logfmt":
	default:
		return fmt.Errorf("invalid log format: %s (must be json, pretty, or logfmt)", c.Logger.Format)
	}

	switch c.Storage.Backend {
	case BackendBadger, BackendSQLite:
		if c.Storage.DataPath == "" {
			return errors.New("data path cannot be empty after expansion")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("invalid storage backend: %s (must be badger, sqlite, or memory)", c.Storage.Backend)
	}

	switch c.Theme.Source {
	case ThemeSourceSwitch, ThemeSourcePortal:
	case ThemeSourceFile:
		if c.Theme.File == "" {
			return errors.New("theme file is required for the file theme source")
		}
	default:
		return fmt.Errorf("invalid theme source: %s (must be switch, file, or portal)", c.Theme.Source)
	}

	if c.Theme.Mode != "light" && c.Theme.Mode != "dark" {
		return fmt.Errorf("invalid theme mode: %s (must be light or dark)", c.Theme.Mode)
	}

	if c.Server.RateLimitRPS <= 0 || c.Server.RateLimitBurst <= 0 {
		return errors.New("rate limit must be positive")
	}

	return nil
}

// expandPaths resolves the data, theme and palette paths.
func (c *Config) expandPaths() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	if c.Storage.DataPath, err = expandPath(c.Storage.DataPath, filepath.Join(homeDir, ".readconfig")); err != nil {
		return fmt.Errorf("invalid data path: %w", err)
	}
	if c.Theme.File, err = expandPath(c.Theme.File, filepath.Join(c.Storage.DataPath, "theme")); err != nil {
		return fmt.Errorf("invalid theme file: %w", err)
	}
	if c.Palette.Path, err = expandPath(c.Palette.Path, ""); err != nil {
		return fmt.Errorf("invalid palette path: %w", err)
	}
	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	// Expand tilde.
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	// Make absolute if needed.
	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	// Priority 1: Command-line flag.
	if flagValue != "" {
		return flagValue
	}

	// Priority 2: Environment variable.
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}

	// Priority 3: Default value.
	return defaultValue
}

// getIntConfigValue returns an int from flag, env var, or default.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(strValue)
	if err != nil {
		return defaultValue
	}
	return result
}

// getFloatConfigValue returns a float64 from flag, env var, or default.
func getFloatConfigValue(flagValue, envKey string, defaultValue float64) float64 {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	result, err := strconv.ParseFloat(strValue, 64)
	if err != nil {
		return defaultValue
	}
	return result
}

// getDurationConfigValue parses a duration from flag, env var, or default.
func getDurationConfigValue(flagValue, envKey, defaultValue string) (time.Duration, error) {
	strValue := getConfigValue(flagValue, envKey, defaultValue)
	d, err := time.ParseDuration(strValue)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", strValue, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=value.
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present.
		value = strings.Trim(value, `"'`)

		// Only set if not already set (env vars take precedence over .env file).
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
