// Package config holds the owner-tunable simulation settings
// Values are read every tick; range validation is the owner's responsibility
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// DefaultPath is looked up in the working directory when no explicit path is given
const DefaultPath = "speaki-box.toml"

type Config struct {
	Game    GameConfig    `toml:"game"`
	Physics PhysicsConfig `toml:"physics"`
	Audio   AudioConfig   `toml:"audio"`
	Border  BorderConfig  `toml:"border"`
	Window  WindowConfig  `toml:"window"`
	Merge   MergeConfig   `toml:"merge"`
	Shiny   ShinyConfig   `toml:"shiny"`
	Groups  GroupsConfig  `toml:"groups"`
	Logging LoggingConfig `toml:"logging"`
}

type GameConfig struct {
	Count       int     `toml:"speaki_count" env:"SPEAKI_COUNT"`
	Size        float64 `toml:"speaki_size" env:"SPEAKI_SIZE"`
	ClickToAdd  bool    `toml:"click_to_add" env:"SPEAKI_CLICK_TO_ADD"`
	EyeBlink    bool    `toml:"eye_blink" env:"SPEAKI_EYE_BLINK"`
	Transparent bool    `toml:"transparent" env:"SPEAKI_TRANSPARENT"`
}

type PhysicsConfig struct {
	Gravity              float64 `toml:"gravity"`
	Bounce               float64 `toml:"bounce"`
	Friction             float64 `toml:"friction"`
	RotationSpeed        float64 `toml:"rotation_speed"`
	Collision            bool    `toml:"collision"`
	CollisionDamping     float64 `toml:"collision_damping"`
	CursorImpulse        float64 `toml:"cursor_impulse"`
	ThrowPower           float64 `toml:"throw_power"`
	BounceResponsiveness float64 `toml:"bounce_responsiveness"`
}

// AudioConfig volumes are linear gains; requests carry the category volume and the player applies master
type AudioConfig struct {
	Enabled       bool    `toml:"enabled" env:"SPEAKI_SOUND"`
	Master        float64 `toml:"master_volume" env:"SPEAKI_MASTER_VOLUME"`
	Grab          float64 `toml:"grab_volume"`
	Bounce        float64 `toml:"bounce_volume"`
	Create        float64 `toml:"create_volume"`
	Remove        float64 `toml:"remove_volume"`
	Idle          float64 `toml:"idle_volume"`
	IdleFrequency float64 `toml:"idle_frequency" env:"SPEAKI_IDLE_FREQUENCY"`
}

// BorderConfig insets each wall by a fraction of the half extent
type BorderConfig struct {
	Up    float64 `toml:"up"`
	Down  float64 `toml:"down"`
	Left  float64 `toml:"left"`
	Right float64 `toml:"right"`
}

type WindowConfig struct {
	Inertia  bool    `toml:"inertia"`
	Strength float64 `toml:"strength"`
}

type MergeConfig struct {
	Enabled       bool    `toml:"enabled"`
	SizeTolerance float64 `toml:"size_tolerance"`
	GrowthFactor  float64 `toml:"growth_factor"`
	MaxSize       float64 `toml:"max_size"`
	Impulse       float64 `toml:"impulse"`
}

// ShinyConfig intervals are in seconds
type ShinyConfig struct {
	Enabled         bool       `toml:"enabled"`
	SpawnChance     float64    `toml:"spawn_chance"`
	GlowColor       [3]float64 `toml:"glow_color"`
	GlowIntensity   float64    `toml:"glow_intensity"`
	PulseSpeed      float64    `toml:"pulse_speed"`
	Bloom           bool       `toml:"bloom"`
	Explosion       bool       `toml:"explosion"`
	Shockwave       bool       `toml:"shockwave"`
	ExplosionRadius float64    `toml:"explosion_radius"`
	ExplosionForce  float64    `toml:"explosion_force"`
	IntervalMin     float64    `toml:"explosion_interval_min"`
	IntervalMax     float64    `toml:"explosion_interval_max"`
}

// GroupsConfig lists sprite indices (images) and voice bank indices (voices) per reaction
type GroupsConfig struct {
	Sad         []int `toml:"sad"`
	Idle        []int `toml:"idle"`
	Idle2       []int `toml:"idle2"`
	DragVoice   []int `toml:"drag_voice"`
	BounceVoice []int `toml:"bounce_voice"`
	CreateVoice []int `toml:"create_voice"`
	RemoveVoice []int `toml:"remove_voice"`
	IdleVoice   []int `toml:"idle_voice"`
	Idle2Voice  []int `toml:"idle2_voice"`
}

type LoggingConfig struct {
	Level  string `toml:"level" env:"SPEAKI_LOG_LEVEL"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`
}

// Load reads a TOML file over defaults then applies environment overrides
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadAuto resolves config by priority: custom path, DefaultPath, built-in defaults
func LoadAuto(customPath string) (*Config, error) {
	if customPath != "" {
		return Load(customPath)
	}

	if _, err := os.Stat(DefaultPath); err == nil {
		return Load(DefaultPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("stat config %s: %w", DefaultPath, err)
	}

	cfg := Default()
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields tagged with env from the process environment
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Encode writes cfg as TOML, used to dump the effective settings
func Encode(cfg *Config, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
