package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/AbheetChaudhary/PolyGone/pkg/render/nodelink"
)

// Default config values.
const (
	defaultAddr          = "localhost:8080"
	defaultSelectedColor = "#ffa500"
)

// Config is the optional user config file.
//
//	level = "levels/star.toml"
//	addr = "localhost:9000"
//
//	[colors]
//	selected = "#ffa500"
//	idle = "#999999"
type Config struct {
	Level  string       `toml:"level"`
	Addr   string       `toml:"addr"`
	Colors ColorsConfig `toml:"colors"`
}

// ColorsConfig holds edge colors as #rrggbb hex values. They are used both
// in the terminal and in rendered diagrams.
type ColorsConfig struct {
	Selected string `toml:"selected"`
	Idle     string `toml:"idle"`
}

// DefaultConfig returns the config used when no file exists.
func DefaultConfig() Config {
	return Config{
		Addr: defaultAddr,
		Colors: ColorsConfig{
			Selected: defaultSelectedColor,
			Idle:     nodelink.DefaultIdleColor,
		},
	}
}

// LoadConfig decodes the config file at path over the defaults. Keys
// missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return DefaultConfig(), fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	for name, c := range map[string]string{"selected": cfg.Colors.Selected, "idle": cfg.Colors.Idle} {
		if !isHexColor(c) {
			return DefaultConfig(), fmt.Errorf("config %s: colors.%s must be #rrggbb, got %q", path, name, c)
		}
	}
	return cfg, nil
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
