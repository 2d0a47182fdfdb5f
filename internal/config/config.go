// Package config loads engine settings from an optional JSON file and merges
// command line overrides on top.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"slices"

	"golang.org/x/text/cases"
)

// Display modes.
const (
	ModeWindow   = "window"
	ModeTerminal = "terminal"
	ModeHeadless = "headless"
)

// Modes lists the accepted values of Config.Mode.
var Modes = []string{ModeWindow, ModeTerminal, ModeHeadless}

// Defaults applied by Resolve to fields left empty.
const (
	DefaultWidth    = 1066
	DefaultHeight   = 800
	DefaultTitle    = "Cerulean Engine"
	DefaultFOV      = 1.47079632679
	DefaultFPS      = 60
	DefaultFrames   = 120
	DefaultCubes    = 1
	DefaultLogLevel = "warn"
	DefaultOutput   = "cerulean.png"
)

// DefaultSpin is the target angular velocity, in rad/s about X, Y and Z.
var DefaultSpin = [3]float64{0.2, 0.3, 0.1}

// Config holds window, scene and output settings.
type Config struct {
	// Display
	Mode   string  `json:"mode"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Title  string  `json:"title"`
	FOV    float64 `json:"fov"`
	FPS    int     `json:"fps"`

	// Scene
	Cubes     int         `json:"cubes"`
	Model     string      `json:"model"`
	Spin      *[3]float64 `json:"spin"`
	Wireframe bool        `json:"wireframe"`
	Bounds    bool        `json:"bounds"`
	HUD       bool        `json:"hud"`

	// Background is an image drawn behind the scene, scaled to fit.
	Background string `json:"background"`

	// Headless output
	Frames    int    `json:"frames"`
	Output    string `json:"output"`
	SaveEvery bool   `json:"save_every"`
	Scale     int    `json:"scale"`

	LogLevel string `json:"log_level"`
}

// Flags holds CLI flag values that override config file settings.
// Zero values leave the file setting alone.
type Flags struct {
	Mode       string
	Width      int
	Height     int
	FOV        float64
	FPS        int
	Cubes      int
	Model      string
	Wireframe  bool
	Bounds     bool
	HUD        bool
	Background string
	Frames     int
	Output     string
	SaveEvery  bool
	Scale      int
	LogLevel   string
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies flags over the loaded values and fills in defaults for
// anything still unset. Negative values are kept so that Validate reports
// them.
func (c *Config) Resolve(flags Flags) {
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.Width != 0 {
		c.Width = flags.Width
	}
	if flags.Height != 0 {
		c.Height = flags.Height
	}
	if flags.FOV != 0 {
		c.FOV = flags.FOV
	}
	if flags.FPS != 0 {
		c.FPS = flags.FPS
	}
	if flags.Cubes != 0 {
		c.Cubes = flags.Cubes
	}
	if flags.Model != "" {
		c.Model = flags.Model
	}
	if flags.Wireframe {
		c.Wireframe = true
	}
	if flags.Bounds {
		c.Bounds = true
	}
	if flags.HUD {
		c.HUD = true
	}
	if flags.Background != "" {
		c.Background = flags.Background
	}
	if flags.Frames != 0 {
		c.Frames = flags.Frames
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.SaveEvery {
		c.SaveEvery = true
	}
	if flags.Scale != 0 {
		c.Scale = flags.Scale
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	c.Mode = cases.Fold().String(c.Mode)
	if c.Mode == "" {
		c.Mode = ModeWindow
	}
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.FOV == 0 {
		c.FOV = DefaultFOV
	}
	if c.FPS == 0 {
		c.FPS = DefaultFPS
	}
	if c.Cubes == 0 {
		c.Cubes = DefaultCubes
	}
	if c.Spin == nil {
		spin := DefaultSpin
		c.Spin = &spin
	}
	if c.Frames == 0 {
		c.Frames = DefaultFrames
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Scale == 0 {
		c.Scale = 1
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate reports every setting that cannot be used, joined into one error.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: size %dx%d must be positive", c.Width, c.Height))
	}
	if !slices.Contains(Modes, c.Mode) {
		errs = append(errs, fmt.Errorf("config: unknown mode %q", c.Mode))
	}
	if !(c.FOV > 0 && c.FOV < math.Pi) {
		errs = append(errs, fmt.Errorf("config: fov %v outside (0, pi)", c.FOV))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("config: fps %d must be positive", c.FPS))
	}
	if c.Frames <= 0 {
		errs = append(errs, fmt.Errorf("config: frames %d must be positive", c.Frames))
	}
	if c.Cubes <= 0 {
		errs = append(errs, fmt.Errorf("config: cubes %d must be positive", c.Cubes))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("config: scale %d must be positive", c.Scale))
	}
	return errors.Join(errs...)
}
