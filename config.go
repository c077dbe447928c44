package arbor

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds frame settings. It is usually decoded from a TOML file:
//
//	debug = false
//	flush_interval_ms = 16
//
//	[focus]
//	drawing = true
//	color = "#3d7eff"
//	width = 2
type Config struct {
	Debug           bool        `toml:"debug"`
	FlushIntervalMS uint64      `toml:"flush_interval_ms"`
	Focus           FocusConfig `toml:"focus"`
}

// FocusConfig controls the focus ring.
type FocusConfig struct {
	Drawing bool    `toml:"drawing"`
	Color   string  `toml:"color"`
	Width   float64 `toml:"width"`
}

type focusStyle struct {
	enabled bool
	color   Color
	width   float64
}

// DefaultConfig returns the settings used when none are given.
func DefaultConfig() Config {
	return Config{
		FlushIntervalMS: DefaultFlushInterval,
		Focus: FocusConfig{
			Drawing: true,
			Color:   "#3d7effff",
			Width:   2,
		},
	}
}

// LoadConfig decodes TOML from r over DefaultConfig, so missing keys keep
// their defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile decodes the TOML file at path over DefaultConfig.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and the focus color syntax.
func (c Config) Validate() error {
	if c.Focus.Width < 0 {
		return fmt.Errorf("config: focus width %v is negative", c.Focus.Width)
	}
	if _, err := ParseColor(c.Focus.Color); err != nil {
		return fmt.Errorf("config: focus color: %w", err)
	}
	return nil
}

// Encode writes c as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

func (c Config) focusStyle() focusStyle {
	col, err := ParseColor(c.Focus.Color)
	if err != nil {
		col = Color{0.24, 0.49, 1, 1}
	}
	return focusStyle{enabled: c.Focus.Drawing && c.Focus.Width > 0, color: col, width: c.Focus.Width}
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
