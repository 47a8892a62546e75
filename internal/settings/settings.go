// Package settings persists the user-facing skew configuration.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/frudas24/skewarea/internal/area"
	"github.com/frudas24/skewarea/internal/geom"
	"github.com/frudas24/skewarea/internal/output"
	"github.com/frudas24/skewarea/internal/skew"
	"gopkg.in/yaml.v3"
)

// Output describes the output mode applied to the pen.
type Output struct {
	Mode    string  `yaml:"mode"`
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// Settings is the on-disk configuration.
type Settings struct {
	SkewAngleY float64 `yaml:"skew_angle_y"`
	Method     string  `yaml:"method,omitempty"`
	Output     Output  `yaml:"output"`
}

// Default returns settings with no skew and an unresolved output mode.
func Default() Settings {
	return Settings{Method: string(area.MethodRectangle)}
}

// Area returns the configured absolute area.
func (s Settings) Area() geom.Area {
	return geom.Area{
		Center: geom.Point{X: s.Output.CenterX, Y: s.Output.CenterY},
		Width:  s.Output.Width,
		Height: s.Output.Height,
	}
}

// Kind returns the configured output mode kind.
func (s Settings) Kind() output.Kind {
	return output.ParseKind(s.Output.Mode)
}

// Validate clamps the angle, normalizes names and rejects negative sizes.
func (s Settings) Validate() (Settings, error) {
	s.SkewAngleY = skew.ClampAngle(s.SkewAngleY)
	s.Method = string(area.ParseMethod(s.Method))
	if s.Output.Width < 0 || s.Output.Height < 0 {
		return s, fmt.Errorf("output size must be >= 0, got %vx%v", s.Output.Width, s.Output.Height)
	}
	if s.Output.Mode != "" {
		s.Output.Mode = s.Kind().String()
	}
	return s, nil
}

// Load reads settings from disk. Missing files return defaults.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse %s: %w", path, err)
	}
	return s.Validate()
}

// Save writes settings to disk, creating parent directories as needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
