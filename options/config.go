package options

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/richinsley/gobezier/control"
	"github.com/richinsley/gobezier/curve"
	"github.com/richinsley/gobezier/graphics"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the editor configuration, loadable from TOML.
type Config struct {
	Window    Window    `toml:"window"`
	Points    []Point   `toml:"points"`
	Palette   Palette   `toml:"palette"`
	Sampling  Sampling  `toml:"sampling"`
	Selection Selection `toml:"selection"`
}

type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type Point struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

// Palette colors are "#RRGGBB" strings.
type Palette struct {
	Background string `toml:"background"`
	Linear     string `toml:"linear"`
	Quadratic  string `toml:"quadratic"`
	Cubic      string `toml:"cubic"`
	Idle       string `toml:"idle"`
	Selected   string `toml:"selected"`
}

type Sampling struct {
	Step     float64 `toml:"step"`
	Snap     string  `toml:"snap"`
	Adaptive bool    `toml:"adaptive"`
}

type Selection struct {
	Policy string `toml:"policy"`
	Radius int    `toml:"radius"`
}

// Default returns the built-in configuration: a 1600x900 window with four
// control points and a fixed 0.0001 sampling step.
func Default() Config {
	return Config{
		Window: Window{Title: "bezier_curves", Width: 1600, Height: 900},
		Points: []Point{
			{X: 100, Y: 50},
			{X: 250, Y: 800},
			{X: 1300, Y: 200},
			{X: 1500, Y: 800},
		},
		Palette: Palette{
			Background: "#000000",
			Linear:     "#FF0000",
			Quadratic:  "#00FF00",
			Cubic:      "#0000FF",
			Idle:       "#FF0000",
			Selected:   "#00FF00",
		},
		Sampling:  Sampling{Step: curve.DefaultStep, Snap: curve.Round.String()},
		Selection: Selection{Policy: control.SelectAll.String(), Radius: control.DefaultRadius},
	}
}

// Load reads a TOML file over the defaults and validates the result. An
// empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals TOML into cfg, keeping fields the document omits, and
// validates the result.
func Decode(data []byte, cfg *Config) error {
	points := cfg.Points
	cfg.Points = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Points == nil {
		cfg.Points = points
	}
	return cfg.Validate()
}

// Validate checks ranges and enum names.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if n := len(c.Points); n < 2 || n > curve.MaxDegree+1 {
		errs = append(errs, fmt.Errorf("need 2 to %d points, got %d", curve.MaxDegree+1, n))
	}
	if c.Selection.Radius <= 0 {
		errs = append(errs, fmt.Errorf("radius %d must be positive", c.Selection.Radius))
	}
	if c.Sampling.Step <= 0 || c.Sampling.Step >= 1 {
		errs = append(errs, fmt.Errorf("step %g must be in (0, 1)", c.Sampling.Step))
	}
	if _, err := curve.ParseSnap(c.Sampling.Snap); err != nil {
		errs = append(errs, err)
	}
	if _, err := control.ParsePolicy(c.Selection.Policy); err != nil {
		errs = append(errs, err)
	}
	for name, hex := range c.Palette.colors() {
		if _, err := ParseColor(hex); err != nil {
			errs = append(errs, fmt.Errorf("palette.%s: %w", name, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func (p Palette) colors() map[string]string {
	return map[string]string{
		"background": p.Background,
		"linear":     p.Linear,
		"quadratic":  p.Quadratic,
		"cubic":      p.Cubic,
		"idle":       p.Idle,
		"selected":   p.Selected,
	}
}

// ParseColor parses "#RRGGBB" (the '#' is optional).
func ParseColor(s string) (graphics.RGB, error) {
	s = strings.TrimPrefix(s, "#")
	var c graphics.RGB
	if len(s) != 6 {
		return c, fmt.Errorf("color %q is not #RRGGBB", s)
	}
	if _, err := fmt.Sscanf(s, "%2x%2x%2x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("color %q: %w", s, err)
	}
	return c, nil
}

// MustColor is ParseColor for values already checked by Validate.
func MustColor(s string) graphics.RGB {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
