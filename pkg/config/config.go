// Package config loads optional user configuration: a TOML overrides
// file forcing individual capabilities, and YAML theme files mapping
// style names to attribute token lists.
package config

import (
	"os"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/termstyle/pkg/caps"
	"github.com/arthur-debert/termstyle/pkg/errors"
	"github.com/arthur-debert/termstyle/pkg/logging"
	"github.com/arthur-debert/termstyle/pkg/term"
)

// tristate values accepted for boolean capability overrides.
const (
	settingAuto = "auto"
	settingOn   = "on"
	settingOff  = "off"
)

// Config is the persisted overrides file. Every field defaults to
// "auto", meaning detection decides.
type Config struct {
	Overrides Overrides `toml:"overrides"`
}

// Overrides force individual capabilities, bypassing detection.
type Overrides struct {
	// Color is one of auto, none, basic, 256, truecolor.
	Color string `toml:"color"`
	// Cursor is one of auto, on, off.
	Cursor string `toml:"cursor"`
	// Unicode is one of auto, on, off.
	Unicode string `toml:"unicode"`
	// Underline is one of auto, on, off.
	Underline string `toml:"underline"`
}

// DefaultPath returns the XDG location of the overrides file.
func DefaultPath() (string, error) {
	return xdg.ConfigFile("termstyle/config.toml")
}

// Load reads the overrides file at path. A missing file is not an
// error; it yields an all-auto config.
func Load(path string) (*Config, error) {
	log := logging.GetLogger("config")

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Debug().Str("path", path).Msg("No config file, using detection only")
		return &Config{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "reading config %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "parsing config %s", path)
	}
	return &cfg, nil
}

// Apply merges the overrides into opts. Fields already forced in opts
// win: precedence is explicit option > config file > detection.
func (c *Config) Apply(opts term.Options) (term.Options, error) {
	if opts.ForceColorDepth == nil && c.Overrides.Color != "" && c.Overrides.Color != settingAuto {
		depth, ok := caps.ParseColorDepth(c.Overrides.Color)
		if !ok {
			return opts, errors.Newf(errors.ErrConfigParse, "invalid color override %q", c.Overrides.Color)
		}
		opts.ForceColorDepth = &depth
	}

	var err error
	if opts.ForceCursor == nil {
		if opts.ForceCursor, err = tristate("cursor", c.Overrides.Cursor); err != nil {
			return opts, err
		}
	}
	if opts.ForceUnicode == nil {
		if opts.ForceUnicode, err = tristate("unicode", c.Overrides.Unicode); err != nil {
			return opts, err
		}
	}
	if opts.ForceUnderline == nil {
		if opts.ForceUnderline, err = tristate("underline", c.Overrides.Underline); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// tristate maps auto/on/off to a nullable bool.
func tristate(field, value string) (*bool, error) {
	switch value {
	case "", settingAuto:
		return nil, nil
	case settingOn:
		v := true
		return &v, nil
	case settingOff:
		v := false
		return &v, nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "invalid %s override %q", field, value)
	}
}
