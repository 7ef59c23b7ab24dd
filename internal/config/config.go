package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application settings. Values come from an optional
// YAML file, overridden by COMPENDIUM_* environment variables; a .env
// file beside the binary is folded into the environment first.
type Config struct {
	// DataDir is the writable folder the catalog JSON files live in.
	// It is created and seeded with the starter file on first run.
	DataDir string `yaml:"data_dir"`

	// StarterFile is the name of the bundled price list copied into
	// DataDir once, never overwriting a user's copy.
	StarterFile string `yaml:"starter_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// JSONLogs switches from console output to one JSON object per line.
	JSONLogs bool `yaml:"json_logs"`

	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`
}

const (
	DefaultDataDir     = "json_files"
	DefaultStarterFile = "prices.json"

	envDataDir  = "COMPENDIUM_DATA_DIR"
	envLogLevel = "COMPENDIUM_LOG_LEVEL"
	envJSONLogs = "COMPENDIUM_JSON_LOGS"
	envDebug    = "COMPENDIUM_DEBUG"
)

// Load builds the configuration. path may be empty or point to a file
// that does not exist; both fall back to defaults.
func Load(path string) (*Config, error) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// Fall through to defaults.
		default:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	applyDefaults(cfg)
	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	if cfg.StarterFile == "" {
		cfg.StarterFile = DefaultStarterFile
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.WindowWidth == 0 {
		cfg.WindowWidth = 1280
	}
	if cfg.WindowHeight == 0 {
		cfg.WindowHeight = 780
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(envDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envJSONLogs); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.JSONLogs = b
		}
	}
	if v := os.Getenv(envDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil && b {
			cfg.LogLevel = "debug"
		}
	}
}

func validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	if cfg.WindowWidth < 640 || cfg.WindowHeight < 480 {
		return fmt.Errorf("window size %dx%d below minimum 640x480", cfg.WindowWidth, cfg.WindowHeight)
	}
	return nil
}
