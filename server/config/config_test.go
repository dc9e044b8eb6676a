package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadOverlaysEnvironment(t *testing.T) {
	t.Setenv("HOCKEY_ADDR", ":9999")
	t.Setenv("HOCKEY_PUCK_RADIUS", "30")
	t.Setenv("HOCKEY_MAX_FRAME_DELTA", "50ms")
	t.Setenv("HOCKEY_KEEP_SPEED_ON_RESET", "true")
	t.Setenv("HOCKEY_CODEC", "msgpack")

	c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Addr != ":9999" || c.PuckRadius != 30 || c.MaxFrameDelta != 50*time.Millisecond {
		t.Fatalf("env not applied: %+v", c)
	}
	if !c.KeepSpeedOnReset || c.Codec != "msgpack" {
		t.Fatalf("env not applied: %+v", c)
	}
	if c.PaddleRadius != 40 {
		t.Fatalf("unset value lost its default: %v", c.PaddleRadius)
	}
}

func TestLoadReadsDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("HOCKEY_FRAME_RATE=120\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("HOCKEY_FRAME_RATE") })

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.FrameRate != 120 {
		t.Fatalf("frame rate: got=%d want=120", c.FrameRate)
	}
}

func TestLoadRejectsMalformedNumber(t *testing.T) {
	t.Setenv("HOCKEY_RESTITUTION", "lots")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidateRejectsBadRestitution(t *testing.T) {
	c := Default()
	c.Restitution = 1.5
	if err := c.Validate(); err == nil {
		t.Fatalf("expected restitution error")
	}
}

func TestValidateRejectsUnknownCodec(t *testing.T) {
	c := Default()
	c.Codec = "xml"
	if err := c.Validate(); err == nil {
		t.Fatalf("expected codec error")
	}
}

func TestNewMatchUsesConfiguredTable(t *testing.T) {
	c := Default()
	c.Restitution = 0.5
	m, err := c.NewMatch()
	if err != nil {
		t.Fatalf("new match: %v", err)
	}
	if m.Arena.Bounds.Left != 20 || m.Arena.Bounds.Right != 980 {
		t.Fatalf("bounds: %+v", m.Arena.Bounds)
	}
	if got := m.Puck.Position; got.X != 500 || got.Y != 281 {
		t.Fatalf("puck not centred: %+v", got)
	}
	if c.Settings().Collision.Restitution != 0.5 {
		t.Fatalf("restitution not carried into settings")
	}
}

func TestArenaRejectsTooSmallDisplay(t *testing.T) {
	c := Default()
	c.DisplayWidth = 30
	if _, err := c.Arena(); err == nil {
		t.Fatalf("expected geometry error")
	}
}

func TestValidateRejectsNonFiniteNumbers(t *testing.T) {
	for name, set := range map[string]func(*Config){
		"display width": func(c *Config) { c.DisplayWidth = math.Inf(1) },
		"goal fraction": func(c *Config) { c.GoalFraction = math.NaN() },
		"restitution":   func(c *Config) { c.Restitution = math.NaN() },
		"paddle mass":   func(c *Config) { c.PaddleMass = math.Inf(1) },
		"serve speed":   func(c *Config) { c.ServeSpeed = math.NaN() },
	} {
		c := Default()
		set(&c)
		if err := c.Validate(); err == nil {
			t.Fatalf("%s: expected error for non-finite value", name)
		}
	}
}

func TestLoadRejectsInfiniteDisplay(t *testing.T) {
	t.Setenv("HOCKEY_DISPLAY_WIDTH", "Inf")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected error for infinite display width")
	}
}

func TestValidateAcceptsEveryCodecName(t *testing.T) {
	for _, name := range []string{"proto", "protobuf", "msgpack"} {
		c := Default()
		c.Codec = name
		if err := c.Validate(); err != nil {
			t.Fatalf("codec %q: %v", name, err)
		}
	}
}
