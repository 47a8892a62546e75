package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/frudas24/skewarea/internal/geom"
	"github.com/frudas24/skewarea/internal/output"
)

// TestSaveLoad_RoundTrip verifies saving and loading preserves settings.
func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	in := Settings{
		SkewAngleY: 12.5,
		Method:     "parallelogram",
		Output:     Output{Mode: "absolute", CenterX: 960, CenterY: 540, Width: 1920, Height: 1080},
	}

	if err := Save(path, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out != in {
		t.Fatalf("expected %+v, got %+v", in, out)
	}
}

// TestLoad_MissingFile_ReturnsDefaults verifies missing files return defaults.
func TestLoad_MissingFile_ReturnsDefaults(t *testing.T) {
	out, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if out != Default() {
		t.Fatalf("expected defaults, got %+v", out)
	}
}

// TestLoad_ClampsAngle verifies out-of-range angles in the file are clamped.
func TestLoad_ClampsAngle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	body := "skew_angle_y: 90\noutput:\n  mode: ABS\n  width: 10\n  height: 5\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out.SkewAngleY != 60 || out.Output.Mode != "absolute" || out.Method != "rectangle" {
		t.Fatalf("unexpected settings %+v", out)
	}
	if out.Kind() != output.Absolute || out.Area() != (geom.Area{Width: 10, Height: 5}) {
		t.Fatalf("unexpected derived values kind=%v area=%+v", out.Kind(), out.Area())
	}
}

// TestLoad_RejectsNegativeSize verifies negative sizes are reported.
func TestLoad_RejectsNegativeSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("output:\n  width: -1\n"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for negative width")
	}
}

// TestLoad_BadYAML verifies malformed files surface a parse error.
func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("skew_angle_y: [1, 2\n"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
