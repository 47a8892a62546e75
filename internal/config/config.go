// Package config loads environment configuration for SkewArea.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/frudas24/skewarea/internal/output"
	"github.com/frudas24/skewarea/internal/skew"
)

const (
	defaultListenAddr  = "127.0.0.1:8788"
	defaultDataDir     = "./data"
	defaultOutputMode  = "absolute"
	defaultInjectInput = true
	defaultEchoReports = true
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr   string
	UIPassword   string
	DataDir      string
	SettingsPath string
	// SkewAngleY overrides the settings file when HasSkewAngle is set.
	SkewAngleY   float64
	HasSkewAngle bool
	OutputMode   output.Kind
	InjectInput  bool
	EchoReports  bool
}

// Load reads configuration from ./data/.env and environment variables.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:   defaultListenAddr,
		DataDir:      defaultDataDir,
		SettingsPath: filepath.Join(defaultDataDir, "settings.yaml"),
		OutputMode:   output.ParseKind(defaultOutputMode),
		InjectInput:  defaultInjectInput,
		EchoReports:  defaultEchoReports,
	}

	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	cfg.SettingsPath = envString("SETTINGS_PATH", filepath.Join(cfg.DataDir, "settings.yaml"))
	cfg.UIPassword = strings.TrimSpace(os.Getenv("UI_PASSWORD"))

	angle, ok, err := envFloat("SKEW_ANGLE_Y")
	if err != nil {
		return Config{}, err
	}
	cfg.SkewAngleY = skew.ClampAngle(angle)
	cfg.HasSkewAngle = ok

	if raw := envString("OUTPUT_MODE", defaultOutputMode); raw != "" {
		kind := output.ParseKind(raw)
		if kind == output.Unknown {
			return Config{}, fmt.Errorf("OUTPUT_MODE must be absolute or relative, got %q", raw)
		}
		cfg.OutputMode = kind
	}

	cfg.InjectInput = envBool("INJECT_INPUT", cfg.InjectInput)
	cfg.EchoReports = envBool("ECHO_REPORTS", cfg.EchoReports)

	if cfg.UIPassword == "" {
		return Config{}, errors.New("UI_PASSWORD is required")
	}

	return cfg, nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envFloat returns a finite float env value and whether it was set.
func envFloat(key string) (float64, bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, false, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%s must be a number: %w", key, err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false, fmt.Errorf("%s must be finite", key)
	}
	return value, true, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, strings.Trim(strings.TrimSpace(value), `"'`), true
}
