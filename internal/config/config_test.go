package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"ENV", "LOG_LEVEL", "LOG_FORMAT", "STORAGE_BACKEND", "DATA_PATH",
	"THEME_SOURCE", "THEME_MODE", "THEME_FILE", "PALETTE_PATH",
	"SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CORS_ALLOWED_ORIGINS",
}

// clearConfigEnv blanks every variable Load reads. Empty counts as unset.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
	}
}

func validConfig() *Config {
	return &Config{
		App:     AppConfig{Environment: "development"},
		Logger:  LoggerConfig{Level: "info"},
		Storage: StorageConfig{Backend: BackendBadger, DataPath: "/some/path"},
		Theme:   ThemeConfig{Source: ThemeSourceSwitch, Mode: "light"},
		Server:  ServerConfig{RateLimitRPS: 5, RateLimitBurst: 10},
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearConfigEnv(t)
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg, err := Load(Flags{EnvFile: filepath.Join(t.TempDir(), "missing.env")})
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, BackendBadger, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(home, ".readconfig"), cfg.Storage.DataPath)
	assert.Equal(t, ThemeSourceSwitch, cfg.Theme.Source)
	assert.Equal(t, "light", cfg.Theme.Mode)
	assert.Equal(t, filepath.Join(home, ".readconfig", "theme"), cfg.Theme.File)
	assert.Empty(t, cfg.Palette.Path)
	assert.Equal(t, "8787", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
	assert.InDelta(t, 5.0, cfg.Server.RateLimitRPS, 0.0001)
	assert.Equal(t, 10, cfg.Server.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
}

func TestLoad_Precedence(t *testing.T) {
	clearConfigEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("STORAGE_BACKEND=sqlite\nSERVER_PORT=9000\nTHEME_MODE=dark\n"), 0o644))

	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, app://reader")

	cfg, err := Load(Flags{
		EnvFile:  envFile,
		DataPath: dir,
		Backend:  "memory",
	})
	require.NoError(t, err)

	// flag beats .env
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	// env beats .env
	assert.Equal(t, "9100", cfg.Server.Port)
	// .env beats default
	assert.Equal(t, "dark", cfg.Theme.Mode)
	assert.Equal(t, dir, cfg.Storage.DataPath)
	assert.Equal(t, []string{"http://localhost:3000", "app://reader"}, cfg.Server.AllowedOrigins)
}

func TestLoad_InvalidDuration(t *testing.T) {
	clearConfigEnv(t)

	_, err := Load(Flags{EnvFile: filepath.Join(t.TempDir(), "missing.env"), ReadTimeout: "soon"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid read timeout")
}

func TestLoad_InvalidBackend(t *testing.T) {
	clearConfigEnv(t)

	_, err := Load(Flags{EnvFile: filepath.Join(t.TempDir(), "missing.env"), Backend: "postgres"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid storage backend")
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_AllEnvironments(t *testing.T) {
	tests := []struct {
		env   string
		valid bool
	}{
		{"development", true},
		{"staging", true},
		{"production", true},
		{"test", false},
		{"", false},
		{"DEVELOPMENT", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = tt.env

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_AllLogLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"debug", true},
		{"info", true},
		{"warn", true},
		{"error", true},
		{"DEBUG", true},  // case insensitive
		{"trace", false}, // not supported
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logger.Level = tt.level

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"log format", func(c *Config) { c.Logger.Format = "xml" }, "invalid log format"},
		{"backend", func(c *Config) { c.Storage.Backend = "redis" }, "invalid storage backend"},
		{"empty data path", func(c *Config) { c.Storage.DataPath = "" }, "data path"},
		{"theme source", func(c *Config) { c.Theme.Source = "sensor" }, "invalid theme source"},
		{"theme file missing", func(c *Config) { c.Theme.Source = ThemeSourceFile }, "theme file is required"},
		{"theme mode", func(c *Config) { c.Theme.Mode = "sepia" }, "invalid theme mode"},
		{"rate limit", func(c *Config) { c.Server.RateLimitBurst = 0 }, "rate limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_MemoryBackendNeedsNoPath(t *testing.T) {
	cfg := validConfig()
	cfg.Storage = StorageConfig{Backend: BackendMemory}

	assert.NoError(t, cfg.Validate())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		def  string
		want string
	}{
		{"empty uses default", "", "/default", "/default"},
		{"tilde", "~/prefs", "", filepath.Join(home, "prefs")},
		{"absolute", "/var/lib/prefs/", "", "/var/lib/prefs"},
		{"relative", "data/prefs", "", filepath.Join(cwd, "data", "prefs")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandPath(tt.path, tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetConfigValue_Precedence(t *testing.T) {
	assert.Equal(t, "flag-value", getConfigValue("flag-value", "TEST_ENV_KEY", "default-value"))

	t.Setenv("TEST_ENV_KEY", "env-value")
	assert.Equal(t, "env-value", getConfigValue("", "TEST_ENV_KEY", "default-value"))

	assert.Equal(t, "default-value", getConfigValue("", "NONEXISTENT_KEY", "default-value"))
}

func TestGetNumericConfigValues(t *testing.T) {
	t.Setenv("TEST_INT", "12")
	t.Setenv("TEST_FLOAT", "2.5")
	t.Setenv("TEST_BAD", "lots")

	assert.Equal(t, 12, getIntConfigValue("", "TEST_INT", 1))
	assert.Equal(t, 7, getIntConfigValue("7", "TEST_INT", 1))
	assert.Equal(t, 1, getIntConfigValue("", "TEST_BAD", 1))
	assert.InDelta(t, 2.5, getFloatConfigValue("", "TEST_FLOAT", 1), 0.0001)
	assert.InDelta(t, 1.0, getFloatConfigValue("", "TEST_BAD", 1), 0.0001)
}

func TestLoadEnvFile_ValidFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := `# Test env file
TEST_ENV=staging
TEST_LOG_LEVEL=debug
# Comment line
TEST_QUOTED="some value"
TEST_SINGLE_QUOTED='another value'
`
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))

	for _, key := range []string{"TEST_ENV", "TEST_LOG_LEVEL", "TEST_QUOTED", "TEST_SINGLE_QUOTED"} {
		t.Setenv(key, "")
	}

	require.NoError(t, loadEnvFile(envFile))

	assert.Equal(t, "staging", os.Getenv("TEST_ENV"))
	assert.Equal(t, "debug", os.Getenv("TEST_LOG_LEVEL"))
	assert.Equal(t, "some value", os.Getenv("TEST_QUOTED"))
	assert.Equal(t, "another value", os.Getenv("TEST_SINGLE_QUOTED"))
}

func TestLoadEnvFile_InvalidFormat(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := `VALID_KEY=valid_value
INVALID LINE WITHOUT EQUALS
`
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))
	t.Setenv("VALID_KEY", "")

	err := loadEnvFile(envFile)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestLoadEnvFile_NonExistentFile(t *testing.T) {
	err := loadEnvFile("/nonexistent/file/.env")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadEnvFile_ExistingEnvVarsNotOverwritten(t *testing.T) {
	t.Setenv("TEST_VAR", "original-value")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(`TEST_VAR=new-value`), 0o644))

	require.NoError(t, loadEnvFile(envFile))

	assert.Equal(t, "original-value", os.Getenv("TEST_VAR"))
}

func TestLoadEnvFile_Whitespace(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(`  KEY_WITH_SPACES  =  value with spaces  `), 0o644))
	t.Setenv("KEY_WITH_SPACES", "")

	require.NoError(t, loadEnvFile(envFile))

	assert.Equal(t, "value with spaces", os.Getenv("KEY_WITH_SPACES"))
}
