package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/termstyle/pkg/errors"
	"github.com/arthur-debert/termstyle/pkg/style"
)

// Theme maps style names to lists of attribute tokens, e.g.
//
//	styles:
//	  title: [bold, bright-cyan]
//	  error: [bold, red]
//	  path:  [italic, "#5f87af"]
type Theme struct {
	Styles map[string][]string `yaml:"styles"`
}

// LoadTheme reads a YAML theme file.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "reading theme %s", path)
	}

	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeParse, "parsing theme %s", path)
	}
	return &theme, nil
}

// ParseTheme parses theme YAML from memory.
func ParseTheme(data []byte) (*Theme, error) {
	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, errors.Wrap(err, errors.ErrThemeParse, "parsing theme")
	}
	return &theme, nil
}

// Resolve builds a chain for the named style on top of base. Token
// order in the theme is preserved in the chain.
func (t *Theme) Resolve(name string, base style.Chain) (style.Chain, error) {
	tokens, ok := t.Styles[name]
	if !ok {
		return base, errors.Newf(errors.ErrThemeUnknownStyle, "theme has no style %q", name)
	}
	return Compose(tokens, base)
}

// Compose appends parsed attribute tokens to base.
func Compose(tokens []string, base style.Chain) (style.Chain, error) {
	chain := base
	for _, token := range tokens {
		attr, err := style.ParseAttribute(token)
		if err != nil {
			return base, err
		}
		chain = chain.With(attr)
	}
	return chain, nil
}
