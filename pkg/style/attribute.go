// Package style implements the composable text-styling chain.
//
// A Chain is an immutable value: appending an attribute always returns a
// new chain and never mutates the receiver. Rendering applies the
// accumulated attributes in insertion order and terminates with a single
// full reset. Color math (conversion and degradation to the active color
// depth) is delegated to termenv.
package style

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/termstyle/pkg/errors"
	"github.com/muesli/termenv"
)

// Modifier is a non-color text attribute.
type Modifier int

const (
	ModBold Modifier = iota
	ModDim
	ModItalic
	ModUnderline
	ModStrikethrough
	ModInverse
	ModHidden
)

// sgrParam returns the SGR parameter enabling the modifier.
func (m Modifier) sgrParam() string {
	switch m {
	case ModBold:
		return "1"
	case ModDim:
		return "2"
	case ModItalic:
		return "3"
	case ModUnderline:
		return "4"
	case ModStrikethrough:
		return "9"
	case ModInverse:
		return "7"
	case ModHidden:
		return "8"
	default:
		return ""
	}
}

// String returns the modifier token as used in themes.
func (m Modifier) String() string {
	switch m {
	case ModBold:
		return "bold"
	case ModDim:
		return "dim"
	case ModItalic:
		return "italic"
	case ModUnderline:
		return "underline"
	case ModStrikethrough:
		return "strikethrough"
	case ModInverse:
		return "inverse"
	case ModHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Color is a foreground or background color request. Its encoding at
// render time (16-color, 256-color, 24-bit, or nothing at all) depends on
// the chain's color depth.
type Color struct {
	tc   termenv.Color
	name string
}

// RGB builds a 24-bit color. The uint8 channels make out-of-range values
// unrepresentable.
func RGB(r, g, b uint8) Color {
	hex := fmt.Sprintf("#%02x%02x%02x", r, g, b)
	return Color{tc: termenv.RGBColor(hex), name: hex}
}

var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// Hex parses a 6-digit hex color, with or without a leading "#".
func Hex(code string) (Color, error) {
	if !hexPattern.MatchString(code) {
		return Color{}, errors.Newf(errors.ErrInvalidColor, "invalid hex color %q", code)
	}
	hex := strings.ToLower(strings.TrimPrefix(code, "#"))
	return Color{tc: termenv.RGBColor("#" + hex), name: "#" + hex}, nil
}

// ANSI256 builds a color from the 256-color palette.
func ANSI256(index uint8) Color {
	return Color{tc: termenv.ANSI256Color(index), name: fmt.Sprintf("ansi256(%d)", index)}
}

// ansi builds one of the 16 base palette colors.
func ansiColor(index int, name string) Color {
	return Color{tc: termenv.ANSIColor(index), name: name}
}

// The 16 base palette colors.
var (
	Black         = ansiColor(0, "black")
	Red           = ansiColor(1, "red")
	Green         = ansiColor(2, "green")
	Yellow        = ansiColor(3, "yellow")
	Blue          = ansiColor(4, "blue")
	Magenta       = ansiColor(5, "magenta")
	Cyan          = ansiColor(6, "cyan")
	White         = ansiColor(7, "white")
	BrightBlack   = ansiColor(8, "bright-black")
	BrightRed     = ansiColor(9, "bright-red")
	BrightGreen   = ansiColor(10, "bright-green")
	BrightYellow  = ansiColor(11, "bright-yellow")
	BrightBlue    = ansiColor(12, "bright-blue")
	BrightMagenta = ansiColor(13, "bright-magenta")
	BrightCyan    = ansiColor(14, "bright-cyan")
	BrightWhite   = ansiColor(15, "bright-white")
)

var namedColors = map[string]Color{
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"bright-black":   BrightBlack,
	"gray":           BrightBlack,
	"grey":           BrightBlack,
	"bright-red":     BrightRed,
	"bright-green":   BrightGreen,
	"bright-yellow":  BrightYellow,
	"bright-blue":    BrightBlue,
	"bright-magenta": BrightMagenta,
	"bright-cyan":    BrightCyan,
	"bright-white":   BrightWhite,
}

var namedModifiers = map[string]Modifier{
	"bold":          ModBold,
	"dim":           ModDim,
	"faint":         ModDim,
	"italic":        ModItalic,
	"underline":     ModUnderline,
	"strikethrough": ModStrikethrough,
	"strike":        ModStrikethrough,
	"inverse":       ModInverse,
	"reverse":       ModInverse,
	"hidden":        ModHidden,
}

type attrKind int

const (
	attrModifier attrKind = iota
	attrForeground
	attrBackground
)

// Attribute is one named operation in a chain: a modifier, a foreground
// color, or a background color.
type Attribute struct {
	kind attrKind
	mod  Modifier
	col  Color
}

// Mod wraps a modifier as an attribute.
func Mod(m Modifier) Attribute {
	return Attribute{kind: attrModifier, mod: m}
}

// Foreground wraps a color as a foreground attribute.
func Foreground(c Color) Attribute {
	return Attribute{kind: attrForeground, col: c}
}

// Background wraps a color as a background attribute.
func Background(c Color) Attribute {
	return Attribute{kind: attrBackground, col: c}
}

// String returns the attribute's theme token.
func (a Attribute) String() string {
	switch a.kind {
	case attrModifier:
		return a.mod.String()
	case attrBackground:
		return "bg-" + a.col.name
	default:
		return a.col.name
	}
}

// sequence returns the SGR parameter string for the attribute under the
// given profile, or "" when the profile cannot express it.
func (a Attribute) sequence(p termenv.Profile) string {
	if a.kind == attrModifier {
		return a.mod.sgrParam()
	}
	if a.col.tc == nil {
		return ""
	}
	return p.Convert(a.col.tc).Sequence(a.kind == attrBackground)
}

var (
	rgbPattern     = regexp.MustCompile(`^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	ansi256Pattern = regexp.MustCompile(`^ansi256\(\s*(\d+)\s*\)$`)
)

// ParseAttribute parses a theme token into an attribute. Recognized
// forms: modifier names ("bold"), color names ("red", "bright-cyan"),
// hex colors ("#ff8800"), "rgb(r,g,b)", "ansi256(n)", and any color form
// prefixed with "bg-" for backgrounds.
func ParseAttribute(token string) (Attribute, error) {
	token = strings.TrimSpace(token)

	if m, ok := namedModifiers[strings.ToLower(token)]; ok {
		return Mod(m), nil
	}

	background := false
	colorToken := token
	if strings.HasPrefix(token, "bg-") {
		background = true
		colorToken = strings.TrimPrefix(token, "bg-")
	}

	col, err := parseColor(colorToken)
	if err != nil {
		// A token shaped like a color that failed validation keeps its
		// real cause; only tokens matching nothing at all are reported
		// as unknown attributes.
		if background || colorShaped(colorToken) {
			return Attribute{}, err
		}
		return Attribute{}, errors.Newf(errors.ErrInvalidAttribute, "unknown attribute %q", token)
	}
	if background {
		return Background(col), nil
	}
	return Foreground(col), nil
}

// colorShaped reports whether token has the shape of one of the
// non-named color forms, whether or not its values validate.
func colorShaped(token string) bool {
	return strings.HasPrefix(token, "#") ||
		rgbPattern.MatchString(token) ||
		ansi256Pattern.MatchString(token)
}

// parseColor parses a bare color token.
func parseColor(token string) (Color, error) {
	if c, ok := namedColors[strings.ToLower(token)]; ok {
		return c, nil
	}

	if strings.HasPrefix(token, "#") {
		return Hex(token)
	}

	if m := rgbPattern.FindStringSubmatch(token); m != nil {
		r, err1 := parseChannel(m[1])
		g, err2 := parseChannel(m[2])
		b, err3 := parseChannel(m[3])
		if err1 != nil || err2 != nil || err3 != nil {
			return Color{}, errors.Newf(errors.ErrInvalidColor, "rgb channel out of range in %q", token)
		}
		return RGB(r, g, b), nil
	}

	if m := ansi256Pattern.FindStringSubmatch(token); m != nil {
		n, err := parseChannel(m[1])
		if err != nil {
			return Color{}, errors.Newf(errors.ErrInvalidColor, "ansi256 index out of range in %q", token)
		}
		return ANSI256(n), nil
	}

	return Color{}, errors.Newf(errors.ErrInvalidColor, "unknown color %q", token)
}

// parseChannel parses a decimal channel value in 0-255.
func parseChannel(s string) (uint8, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return 0, errors.Newf(errors.ErrInvalidColor, "value %s out of range 0-255", s)
	}
	return uint8(n), nil
}
