package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/mo-shahab/go-hockey/server/arena"
	"github.com/mo-shahab/go-hockey/server/codec"
	"github.com/mo-shahab/go-hockey/server/collision"
	"github.com/mo-shahab/go-hockey/server/game"
)

// Config is everything the server reads from its environment
type Config struct {
	Addr string

	// table layout, in display pixels
	DisplayWidth  float64
	DisplayHeight float64
	Padding       float64
	GoalDepth     float64
	GoalFraction  float64

	PuckRadius   float64
	PaddleRadius float64
	PuckMass     float64
	PaddleMass   float64
	Restitution  float64

	FrameRate      int
	SampleInterval time.Duration
	MaxFrameDelta  time.Duration

	ServeSpeed       float64
	KeepSpeedOnReset bool

	Codec         string
	SendQueueSize int
	MaxClients    int
	IdleTimeout   time.Duration
}

// Default is the reference table: a 1000px wide display, a 20px border,
// 10px deep goals a third of the table tall, 40px paddles and a 25px puck.
func Default() Config {
	return Config{
		Addr:             ":8080",
		DisplayWidth:     1000,
		DisplayHeight:    562,
		Padding:          20,
		GoalDepth:        10,
		GoalFraction:     1.0 / 3,
		PuckRadius:       25,
		PaddleRadius:     40,
		PuckMass:         1,
		PaddleMass:       1,
		Restitution:      0.95,
		FrameRate:        60,
		SampleInterval:   time.Second / 30,
		MaxFrameDelta:    time.Second / 15,
		ServeSpeed:       0,
		KeepSpeedOnReset: false,
		Codec:            "proto",
		SendQueueSize:    100,
		MaxClients:       4,
		IdleTimeout:      90 * time.Second,
	}
}

// Load reads an optional .env file, then overlays HOCKEY_* variables on Default
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file loaded, using process environment")
	} else {
		log.Println("Successfully loaded environment variables")
	}

	c := Default()
	var errs []error
	str(&c.Addr, "HOCKEY_ADDR")
	str(&c.Codec, "HOCKEY_CODEC")
	errs = append(errs,
		envFloat(&c.DisplayWidth, "HOCKEY_DISPLAY_WIDTH"),
		envFloat(&c.DisplayHeight, "HOCKEY_DISPLAY_HEIGHT"),
		envFloat(&c.Padding, "HOCKEY_PADDING"),
		envFloat(&c.GoalDepth, "HOCKEY_GOAL_DEPTH"),
		envFloat(&c.GoalFraction, "HOCKEY_GOAL_FRACTION"),
		envFloat(&c.PuckRadius, "HOCKEY_PUCK_RADIUS"),
		envFloat(&c.PaddleRadius, "HOCKEY_PADDLE_RADIUS"),
		envFloat(&c.PuckMass, "HOCKEY_PUCK_MASS"),
		envFloat(&c.PaddleMass, "HOCKEY_PADDLE_MASS"),
		envFloat(&c.Restitution, "HOCKEY_RESTITUTION"),
		envInt(&c.FrameRate, "HOCKEY_FRAME_RATE"),
		envDuration(&c.SampleInterval, "HOCKEY_SAMPLE_INTERVAL"),
		envDuration(&c.MaxFrameDelta, "HOCKEY_MAX_FRAME_DELTA"),
		envFloat(&c.ServeSpeed, "HOCKEY_SERVE_SPEED"),
		envBool(&c.KeepSpeedOnReset, "HOCKEY_KEEP_SPEED_ON_RESET"),
		envInt(&c.SendQueueSize, "HOCKEY_SEND_QUEUE_SIZE"),
		envInt(&c.MaxClients, "HOCKEY_MAX_CLIENTS"),
		envDuration(&c.IdleTimeout, "HOCKEY_IDLE_TIMEOUT"),
	)
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"display width", c.DisplayWidth},
		{"display height", c.DisplayHeight},
		{"padding", c.Padding},
		{"goal depth", c.GoalDepth},
		{"goal fraction", c.GoalFraction},
		{"puck radius", c.PuckRadius},
		{"paddle radius", c.PaddleRadius},
		{"puck mass", c.PuckMass},
		{"paddle mass", c.PaddleMass},
		{"restitution", c.Restitution},
		{"serve speed", c.ServeSpeed},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s must be a finite number, got %v", f.name, f.v)
		}
	}

	if _, err := codec.New(c.Codec); err != nil {
		return err
	}

	switch {
	case c.PuckRadius <= 0 || c.PaddleRadius <= 0:
		return fmt.Errorf("radii must be positive (puck=%v paddle=%v)", c.PuckRadius, c.PaddleRadius)
	case c.PuckMass <= 0 || c.PaddleMass <= 0:
		return fmt.Errorf("masses must be positive (puck=%v paddle=%v)", c.PuckMass, c.PaddleMass)
	case c.Restitution < 0 || c.Restitution > 1:
		return fmt.Errorf("restitution %v outside [0,1]", c.Restitution)
	case c.FrameRate <= 0:
		return fmt.Errorf("frame rate must be positive, got %d", c.FrameRate)
	case c.SampleInterval <= 0:
		return fmt.Errorf("sample interval must be positive, got %v", c.SampleInterval)
	case c.MaxFrameDelta <= 0:
		return fmt.Errorf("max frame delta must be positive, got %v", c.MaxFrameDelta)
	case c.ServeSpeed < 0:
		return fmt.Errorf("serve speed must not be negative, got %v", c.ServeSpeed)
	case c.SendQueueSize <= 0 || c.MaxClients <= 0:
		return fmt.Errorf("send queue size and max clients must be positive")
	}
	return nil
}

// Arena lays the table out on the configured display
func (c Config) Arena() (arena.Arena, error) {
	return arena.Layout(c.DisplayWidth, c.DisplayHeight, c.Padding, c.GoalDepth, c.GoalFraction)
}

// Settings converts the match tuning knobs
func (c Config) Settings() game.Settings {
	s := game.DefaultSettings()
	s.PuckRadius = c.PuckRadius
	s.PaddleRadius = c.PaddleRadius
	s.PuckMass = c.PuckMass
	s.PaddleMass = c.PaddleMass
	s.Collision = collision.Params{
		Restitution:    c.Restitution,
		FallbackNormal: collision.DefaultParams.FallbackNormal,
	}
	s.SampleInterval = c.SampleInterval
	s.MaxFrameDelta = c.MaxFrameDelta
	s.ServeSpeed = c.ServeSpeed
	s.KeepSpeedOnReset = c.KeepSpeedOnReset
	return s
}

// NewMatch builds a fresh match from the configuration
func (c Config) NewMatch() (*game.Match, error) {
	a, err := c.Arena()
	if err != nil {
		return nil, err
	}
	return game.NewMatch(a, c.Settings())
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}

	return b, nil
}

func str(dst *string, key string) {
	if v, err := GetEnvVariable(key); err == nil {
		*dst = v
	}
}

func envFloat(dst *float64, key string) error {
	v, err := GetEnvVariable(key)
	if err != nil {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}

func envInt(dst *int, key string) error {
	v, err := GetEnvVariable(key)
	if err != nil {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func envBool(dst *bool, key string) error {
	v, err := GetEnvVariable(key)
	if err != nil {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}

func envDuration(dst *time.Duration, key string) error {
	v, err := GetEnvVariable(key)
	if err != nil {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}
