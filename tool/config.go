package tool

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/genotet/uploadbatch/types"
)

var ConfigPath = "config.yaml" // default to ./config.yaml, override with --config

const (
	DefaultServer        = "http://localhost:3000/genotet"
	DefaultCookieName    = "genotet-session"
	DefaultAnonymousUser = "anonymous"
)

func DefaultConfig() types.AppConfig {
	return types.AppConfig{
		Server:        DefaultServer,
		CookieName:    DefaultCookieName,
		AnonymousUser: DefaultAnonymousUser,
	}
}

// LoadConfig reads the YAML config at path. A missing file yields the defaults,
// nothing is written back.
func LoadConfig(path string) (types.AppConfig, error) {
	if path == "" {
		path = ConfigPath
	}
	cfg := DefaultConfig()

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			DefaultLogger.Debugf("Config file %s not found, using defaults", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %v", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config file path is a directory: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %v", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %v", err)
	}

	// empty keys in the file fall back to defaults
	if strings.TrimSpace(cfg.Server) == "" {
		cfg.Server = DefaultServer
	}
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	if cfg.AnonymousUser == "" {
		cfg.AnonymousUser = DefaultAnonymousUser
	}
	if cfg.UploadsPerSecond < 0 {
		return cfg, fmt.Errorf("uploadsPerSecond must not be negative, got %v", cfg.UploadsPerSecond)
	}
	if cfg.Timeout < 0 {
		return cfg, fmt.Errorf("timeout must not be negative, got %d", cfg.Timeout)
	}
	return cfg, nil
}

// ApplyFlagOverrides merges CLI flag values over the loaded config.
func ApplyFlagOverrides(cfg *types.AppConfig, flags types.Config) {
	if flags.UseServer != "" {
		cfg.Server = flags.UseServer
	}
}

// RequestTimeout converts the configured timeout to a duration.
func RequestTimeout(cfg types.AppConfig) time.Duration {
	return time.Duration(cfg.Timeout) * time.Second
}
