package inputbar

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/esimov/inputbar/utils"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// Metrics of the fixed width face used when a label size is not given.
const (
	LabelAdvance = 7
	LabelHeight  = 13
)

// ErrNoButtons is returned when a configuration lists no buttons.
var ErrNoButtons = errors.New("configuration has no buttons")

// Config describes a button bar: its metrics, its colors and its buttons.
type Config struct {
	Constants Constants      `yaml:"constants"`
	Theme     ThemeConfig    `yaml:"theme"`
	Buttons   []ButtonConfig `yaml:"buttons"`
}

// ButtonConfig is one button entry. Width and Height are the label size;
// zero values are estimated from the title.
type ButtonConfig struct {
	Title  string  `yaml:"title"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// ThemeConfig holds hex encoded colors.
type ThemeConfig struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Accent     string `yaml:"accent"`
	Separator  string `yaml:"separator"`
}

// Theme is the resolved palette used by the renderers.
type Theme struct {
	Background color.NRGBA
	Foreground color.NRGBA
	Accent     color.NRGBA
	Separator  color.NRGBA
}

// DefaultConfig returns the stock conversation input bar.
func DefaultConfig() *Config {
	return &Config{
		Constants: DefaultConstants(),
		Theme: ThemeConfig{
			Background: "#ffffff",
			Foreground: "#33373a",
			Accent:     "#2391d3",
			Separator:  "#e5e5e5",
		},
		Buttons: []ButtonConfig{
			{Title: "Photo"},
			{Title: "Sketch"},
			{Title: "Ping"},
			{Title: "Giphy"},
			{Title: "File"},
			{Title: "Audio"},
			{Title: "Video"},
			{Title: "Location"},
		},
	}
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open the config file: %w", err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig decodes a YAML configuration. Constants and colors missing
// from the document keep their defaults.
func DecodeConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Buttons = nil

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not decode the config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the constants, colors and buttons of the configuration.
func (cfg *Config) Validate() error {
	if err := cfg.Constants.Validate(); err != nil {
		return err
	}
	if _, err := cfg.Theme.Resolve(); err != nil {
		return err
	}
	if len(cfg.Buttons) == 0 {
		return ErrNoButtons
	}
	for i, b := range cfg.Buttons {
		if b.Width < 0 || b.Height < 0 {
			return fmt.Errorf("button %d (%s): label size must not be negative", i, b.Title)
		}
	}
	return nil
}

// Labels returns one button per entry, in order.
func (cfg *Config) Labels() []*Label {
	labels := make([]*Label, len(cfg.Buttons))
	for i, b := range cfg.Buttons {
		size := EstimateLabelSize(b.Title)
		if b.Width > 0 {
			size.W = b.Width
		}
		if b.Height > 0 {
			size.H = b.Height
		}
		labels[i] = NewLabel(b.Title, size)
	}
	return labels
}

// View builds a view over the configured buttons.
func (cfg *Config) View() (*View, []*Label, error) {
	labels := cfg.Labels()
	buttons := make([]Button, len(labels))
	for i, l := range labels {
		buttons[i] = l
	}
	v, err := NewView(buttons, cfg.Constants)
	if err != nil {
		return nil, nil, err
	}
	return v, labels, nil
}

// Resolve parses the hex colors of the theme.
func (tc ThemeConfig) Resolve() (Theme, error) {
	var (
		th  Theme
		err error
	)
	for _, c := range []struct {
		name string
		hex  string
		dst  *color.NRGBA
	}{
		{"background", tc.Background, &th.Background},
		{"foreground", tc.Foreground, &th.Foreground},
		{"accent", tc.Accent, &th.Accent},
		{"separator", tc.Separator, &th.Separator},
	} {
		if *c.dst, err = utils.HexToRGBA(c.hex); err != nil {
			return Theme{}, fmt.Errorf("theme %s: %w", c.name, err)
		}
	}
	return th, nil
}

// EstimateLabelSize measures a title in the fixed width label face.
func EstimateLabelSize(title string) Size {
	return Size{
		W: float64(runewidth.StringWidth(title) * LabelAdvance),
		H: LabelHeight,
	}
}
