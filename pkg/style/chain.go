package style

import (
	"strings"

	"github.com/arthur-debert/termstyle/pkg/caps"
	"github.com/muesli/termenv"
)

// Chain is an immutable sequence of attributes bound to a color depth.
// The zero value is a depth-none identity chain. Attribute order is
// preserved exactly at render time; some attribute pairs are not
// commutative in real terminals, so the chain never reorders or
// deduplicates.
type Chain struct {
	depth caps.ColorDepth
	attrs []Attribute
}

// New returns an empty chain rooted at the given color depth.
func New(depth caps.ColorDepth) Chain {
	return Chain{depth: depth}
}

// Depth returns the chain's color-depth ceiling.
func (c Chain) Depth() caps.ColorDepth {
	return c.depth
}

// Len returns the number of accumulated attributes.
func (c Chain) Len() int {
	return len(c.attrs)
}

// With returns a new chain with one more attribute. The receiver is
// never modified; the full slice expression forces append to copy, so
// sibling chains built from the same parent cannot alias each other.
func (c Chain) With(a Attribute) Chain {
	attrs := append(c.attrs[:len(c.attrs):len(c.attrs)], a)
	return Chain{depth: c.depth, attrs: attrs}
}

// Render applies every accumulated attribute to text in insertion order,
// followed by a single full reset so nothing bleeds into subsequent
// output. At depth none the text is returned unchanged, with no escape
// bytes at all. An empty chain is the identity.
func (c Chain) Render(text string) string {
	if c.depth == caps.DepthNone || len(c.attrs) == 0 {
		return text
	}

	p := Profile(c.depth)
	var sb strings.Builder
	for _, a := range c.attrs {
		if seq := a.sequence(p); seq != "" {
			sb.WriteString("\x1b[")
			sb.WriteString(seq)
			sb.WriteString("m")
		}
	}
	if sb.Len() == 0 {
		return text
	}
	sb.WriteString(text)
	sb.WriteString("\x1b[0m")
	return sb.String()
}

// Profile maps a color depth to the termenv profile used for color
// conversion and degradation.
func Profile(depth caps.ColorDepth) termenv.Profile {
	switch depth {
	case DepthTrueColor:
		return termenv.TrueColor
	case Depth256:
		return termenv.ANSI256
	case DepthBasic:
		return termenv.ANSI
	default:
		return termenv.Ascii
	}
}

// Depth aliases, so chain call sites do not need to import caps.
const (
	DepthNone      = caps.DepthNone
	DepthBasic     = caps.DepthBasic
	Depth256       = caps.Depth256
	DepthTrueColor = caps.DepthTrueColor
)

// Modifier combinators.

func (c Chain) Bold() Chain          { return c.With(Mod(ModBold)) }
func (c Chain) Dim() Chain           { return c.With(Mod(ModDim)) }
func (c Chain) Italic() Chain        { return c.With(Mod(ModItalic)) }
func (c Chain) Underline() Chain     { return c.With(Mod(ModUnderline)) }
func (c Chain) Strikethrough() Chain { return c.With(Mod(ModStrikethrough)) }
func (c Chain) Inverse() Chain       { return c.With(Mod(ModInverse)) }
func (c Chain) Hidden() Chain        { return c.With(Mod(ModHidden)) }

// Foreground color combinators.

func (c Chain) Black() Chain         { return c.With(Foreground(Black)) }
func (c Chain) Red() Chain           { return c.With(Foreground(Red)) }
func (c Chain) Green() Chain         { return c.With(Foreground(Green)) }
func (c Chain) Yellow() Chain        { return c.With(Foreground(Yellow)) }
func (c Chain) Blue() Chain          { return c.With(Foreground(Blue)) }
func (c Chain) Magenta() Chain       { return c.With(Foreground(Magenta)) }
func (c Chain) Cyan() Chain          { return c.With(Foreground(Cyan)) }
func (c Chain) White() Chain         { return c.With(Foreground(White)) }
func (c Chain) Gray() Chain          { return c.With(Foreground(BrightBlack)) }
func (c Chain) BrightRed() Chain     { return c.With(Foreground(BrightRed)) }
func (c Chain) BrightGreen() Chain   { return c.With(Foreground(BrightGreen)) }
func (c Chain) BrightYellow() Chain  { return c.With(Foreground(BrightYellow)) }
func (c Chain) BrightBlue() Chain    { return c.With(Foreground(BrightBlue)) }
func (c Chain) BrightMagenta() Chain { return c.With(Foreground(BrightMagenta)) }
func (c Chain) BrightCyan() Chain    { return c.With(Foreground(BrightCyan)) }
func (c Chain) BrightWhite() Chain   { return c.With(Foreground(BrightWhite)) }

// Background color combinators.

func (c Chain) BgBlack() Chain   { return c.With(Background(Black)) }
func (c Chain) BgRed() Chain     { return c.With(Background(Red)) }
func (c Chain) BgGreen() Chain   { return c.With(Background(Green)) }
func (c Chain) BgYellow() Chain  { return c.With(Background(Yellow)) }
func (c Chain) BgBlue() Chain    { return c.With(Background(Blue)) }
func (c Chain) BgMagenta() Chain { return c.With(Background(Magenta)) }
func (c Chain) BgCyan() Chain    { return c.With(Background(Cyan)) }
func (c Chain) BgWhite() Chain   { return c.With(Background(White)) }
func (c Chain) BgGray() Chain    { return c.With(Background(BrightBlack)) }

// Parameterized color combinators. The uint8 channels cannot be out of
// range; string-parsed colors go through Hex or ParseAttribute, which
// validate.

func (c Chain) RGB(r, g, b uint8) Chain     { return c.With(Foreground(RGB(r, g, b))) }
func (c Chain) BgRGB(r, g, b uint8) Chain   { return c.With(Background(RGB(r, g, b))) }
func (c Chain) ANSI256(index uint8) Chain   { return c.With(Foreground(ANSI256(index))) }
func (c Chain) BgANSI256(index uint8) Chain { return c.With(Background(ANSI256(index))) }

// Foreground and Background append an already-built color, typically one
// returned by Hex.

func (c Chain) Foreground(col Color) Chain { return c.With(Foreground(col)) }
func (c Chain) Background(col Color) Chain { return c.With(Background(col)) }
