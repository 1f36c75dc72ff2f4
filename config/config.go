package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/void-trader/parameter"
	"github.com/lixenwraith/void-trader/physics"
	"github.com/lixenwraith/void-trader/vmath"
)

var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the sandbox configuration file layout
type Config struct {
	Physics PhysicsConfig `toml:"physics"`
	Ship    ShipConfig    `toml:"ship"`
	Audio   AudioConfig   `toml:"audio"`
}

// PhysicsConfig is fixed at simulation setup
type PhysicsConfig struct {
	CellSize      float64       `toml:"cell_size"`
	TickLength    time.Duration `toml:"tick_length"`
	MaxTicks      int           `toml:"max_ticks"`
	MaxFrameDelta time.Duration `toml:"max_frame_delta"`
}

// ShipConfig tunes the player ship
type ShipConfig struct {
	Mass           float64 `toml:"mass"`
	Radius         float64 `toml:"radius"`
	EngineStrength float64 `toml:"engine_strength"`
	SpeedLimit     float64 `toml:"speed_limit"`
	ThrustBraking  float64 `toml:"thrust_braking"`
	TurnRate       float64 `toml:"turn_rate"`
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"` // Linear master volume in [0, 1]
}

// Default returns the parameter package tuning
func Default() Config {
	return Config{
		Physics: DefaultPhysics(),
		Ship: ShipConfig{
			Mass:           parameter.PlayerMass,
			Radius:         parameter.PlayerRadius,
			EngineStrength: parameter.PlayerEngineStrength,
			SpeedLimit:     parameter.PlayerSpeedLimit,
			ThrustBraking:  parameter.PlayerThrustBraking,
			TurnRate:       parameter.PlayerTurnRate,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: parameter.AudioSampleRate,
			Volume:     parameter.AudioMasterVolume,
		},
	}
}

func DefaultPhysics() PhysicsConfig {
	return PhysicsConfig{
		CellSize:      parameter.SpatialCellSize,
		TickLength:    parameter.CollisionTickLength,
		MaxTicks:      parameter.CollisionMaxTicks,
		MaxFrameDelta: parameter.MaxFrameDelta,
	}
}

// Load reads a TOML file over the defaults; keys absent from the file keep default values
// Unknown keys are rejected to surface typos
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults, see Load
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config: unknown key %s", undecoded[0])
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configuration that would fail at frame time
func (c Config) Validate() error {
	if err := c.Physics.Validate(); err != nil {
		return err
	}
	if err := c.Ship.Validate(); err != nil {
		return err
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sample_rate %d", ErrInvalidConfig, c.Audio.SampleRate)
	}
	if !(c.Audio.Volume >= 0 && c.Audio.Volume <= 1) {
		return fmt.Errorf("%w: audio.volume %v", ErrInvalidConfig, c.Audio.Volume)
	}
	return nil
}

func (p PhysicsConfig) Validate() error {
	switch {
	case !(p.CellSize > 0) || p.CellSize > 1e12:
		return fmt.Errorf("%w: physics.cell_size %v", ErrInvalidConfig, p.CellSize)
	case p.TickLength <= 0:
		return fmt.Errorf("%w: physics.tick_length %v", ErrInvalidConfig, p.TickLength)
	case p.MaxTicks <= 0:
		return fmt.Errorf("%w: physics.max_ticks %d", ErrInvalidConfig, p.MaxTicks)
	case p.MaxFrameDelta < 0:
		return fmt.Errorf("%w: physics.max_frame_delta %v", ErrInvalidConfig, p.MaxFrameDelta)
	}
	return nil
}

func (s ShipConfig) Validate() error {
	switch {
	case !vmath.IsFinite(s.Mass) || s.Mass <= 0:
		return fmt.Errorf("%w: ship.mass %v", ErrInvalidConfig, s.Mass)
	case !vmath.IsFinite(s.Radius) || s.Radius < 0:
		return fmt.Errorf("%w: ship.radius %v", ErrInvalidConfig, s.Radius)
	case !vmath.IsFinite(s.SpeedLimit) || s.SpeedLimit < 0:
		return fmt.Errorf("%w: ship.speed_limit %v", ErrInvalidConfig, s.SpeedLimit)
	case !vmath.IsFinite(s.EngineStrength):
		return fmt.Errorf("%w: ship.engine_strength %v", ErrInvalidConfig, s.EngineStrength)
	case !vmath.IsFinite(s.ThrustBraking):
		return fmt.Errorf("%w: ship.thrust_braking %v", ErrInvalidConfig, s.ThrustBraking)
	case !vmath.IsFinite(s.TurnRate):
		return fmt.Errorf("%w: ship.turn_rate %v", ErrInvalidConfig, s.TurnRate)
	}
	return nil
}

// Collision converts the tick settings for the narrow phase
func (p PhysicsConfig) Collision() physics.CollisionConfig {
	return physics.CollisionConfig{
		TickLength: p.TickLength.Seconds(),
		MaxTicks:   p.MaxTicks,
	}
}
