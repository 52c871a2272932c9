// Package config loads the program's TOML configuration. Every field has a
// default, so a missing file is not an error.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Light bounds enforced by the panel sliders; config values must sit inside them.
const (
	MinIntensity = 0.1
	MaxIntensity = 1.0
	MinHeight    = 0.0
	MaxHeight    = 15.0
)

type Config struct {
	Window Window `toml:"window"`
	Panel  Panel  `toml:"panel"`
	Light  Light  `toml:"light"`
	Camera Camera `toml:"camera"`
	Render Render `toml:"render"`
	Log    Log    `toml:"log"`
}

type Window struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	TargetFPS int    `toml:"target_fps"`
}

type Panel struct {
	Width  float32 `toml:"width"`
	Hidden bool    `toml:"hidden"`
}

// Light holds the live-editable point light parameters.
type Light struct {
	Colour    string  `toml:"colour"`
	Intensity float32 `toml:"intensity"`
	Height    float32 `toml:"height"`
}

type Camera struct {
	FOV      float32    `toml:"fov"`
	Near     float32    `toml:"near"`
	Far      float32    `toml:"far"`
	Position [3]float32 `toml:"position"`
	Damping  float32    `toml:"damping"`
}

type Render struct {
	ShadowMapSize int     `toml:"shadow_map_size"`
	MaxPixelRatio float32 `toml:"max_pixel_ratio"`
	FogColour     string  `toml:"fog_colour"`
	FogNear       float32 `toml:"fog_near"`
	FogFar        float32 `toml:"fog_far"`
	Background    string  `toml:"background"`
}

type Log struct {
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:     "lightwall",
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
		},
		Panel: Panel{Width: 400},
		Light: Light{
			Colour:    "#de5555",
			Intensity: 0.6,
			Height:    8,
		},
		Camera: Camera{
			FOV:      75,
			Near:     0.1,
			Far:      1000,
			Position: [3]float32{-11, 24, 51},
			Damping:  0.05,
		},
		Render: Render{
			ShadowMapSize: 2048,
			MaxPixelRatio: 2,
			FogColour:     "#f4f4f4",
			FogNear:       10,
			FogFar:        1000,
			Background:    "#000000",
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if err := c.Light.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %v outside (0, 180)", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip planes near=%v far=%v", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.Damping < 0 || c.Camera.Damping > 1 {
		errs = append(errs, fmt.Errorf("camera damping %v outside [0, 1]", c.Camera.Damping))
	}
	if c.Render.ShadowMapSize <= 0 {
		errs = append(errs, fmt.Errorf("shadow map size %d must be positive", c.Render.ShadowMapSize))
	}
	if c.Render.MaxPixelRatio <= 0 {
		errs = append(errs, fmt.Errorf("max pixel ratio %v must be positive", c.Render.MaxPixelRatio))
	}
	for name, hex := range map[string]string{"fog_colour": c.Render.FogColour, "background": c.Render.Background} {
		if _, err := ParseColour(hex); err != nil {
			errs = append(errs, fmt.Errorf("render %s: %w", name, err))
		}
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

func (l Light) Validate() error {
	if _, err := ParseColour(l.Colour); err != nil {
		return fmt.Errorf("light colour: %w", err)
	}
	if l.Intensity < MinIntensity || l.Intensity > MaxIntensity {
		return fmt.Errorf("light intensity %v outside [%v, %v]", l.Intensity, MinIntensity, MaxIntensity)
	}
	if l.Height < MinHeight || l.Height > MaxHeight {
		return fmt.Errorf("light height %v outside [%v, %v]", l.Height, MinHeight, MaxHeight)
	}
	return nil
}

// ParseColour accepts "#rrggbb" or "#rgb".
func ParseColour(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("colour %q: %w", hex, err)
	}
	return c, nil
}

func (l Log) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", l.Level, err)
	}
	return lvl, nil
}
