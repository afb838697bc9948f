// Package caps classifies a terminal's capabilities from environment
// variables and stream flags.
//
// Every detector is a pure function of an Environ lookup plus explicit
// stream flags, so the same environment always yields the same result.
// Detection never fails: unknown or missing state degrades to the most
// conservative value (false, DepthNone, DepthBasic).
package caps

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ColorDepth is the maximum color fidelity a terminal can render.
type ColorDepth int

const (
	// DepthNone means no color output at all.
	DepthNone ColorDepth = iota
	// DepthBasic is the 16-color ANSI palette.
	DepthBasic
	// Depth256 is the 256-color palette.
	Depth256
	// DepthTrueColor is 24-bit color.
	DepthTrueColor
)

// String returns the depth name as used in configuration files.
func (d ColorDepth) String() string {
	switch d {
	case DepthNone:
		return "none"
	case DepthBasic:
		return "basic"
	case Depth256:
		return "256"
	case DepthTrueColor:
		return "truecolor"
	default:
		return "unknown"
	}
}

// ParseColorDepth parses a depth name. It accepts the String forms.
func ParseColorDepth(s string) (ColorDepth, bool) {
	switch strings.ToLower(s) {
	case "none":
		return DepthNone, true
	case "basic", "16":
		return DepthBasic, true
	case "256", "ansi256":
		return Depth256, true
	case "truecolor", "24bit":
		return DepthTrueColor, true
	default:
		return DepthNone, false
	}
}

// Environ looks up an environment variable, reporting whether it is set.
// Using a lookup function instead of reading the process environment
// directly keeps the detectors pure and testable.
type Environ func(key string) (string, bool)

// OSEnviron returns an Environ backed by the process environment.
func OSEnviron() Environ {
	return os.LookupEnv
}

// MapEnviron returns an Environ backed by a fixed map. A key present in
// the map counts as set even when its value is empty.
func MapEnviron(m map[string]string) Environ {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// Snapshot is the frozen result of capability detection, bound to one
// Term instance for its lifetime. Re-detection requires constructing a
// new Term.
type Snapshot struct {
	CursorControl     bool
	RawInput          bool
	ColorDepth        ColorDepth
	Unicode           bool
	ExtendedUnderline bool
}

// termTruecolor lists TERM values identifying terminals with known
// 24-bit support.
var termTruecolor = []string{
	"xterm-ghostty",
	"xterm-kitty",
	"wezterm",
	"alacritty",
	"contour",
	"rio",
	"foot",
	"st-direct",
}

// programDepth maps TERM_PROGRAM identifiers to a known depth.
// Apple's Terminal.app is the one legacy program capped at 256 colors.
var programDepth = map[string]ColorDepth{
	"iTerm.app":      DepthTrueColor,
	"WezTerm":        DepthTrueColor,
	"ghostty":        DepthTrueColor,
	"vscode":         DepthTrueColor,
	"Apple_Terminal": Depth256,
}

// programModern lists additional TERM_PROGRAM identifiers of modern
// truecolor terminals.
var programModern = []string{"Hyper", "Tabby", "Warp", "rio"}

// termBasic lists generic TERM markers implying at least 16-color ANSI.
var termBasic = []string{
	"xterm", "screen", "tmux", "vt100", "ansi", "color", "cygwin", "linux", "rxvt",
}

// ciVars lists environment variables set by CI systems, which render
// ANSI colors in their log views.
var ciVars = []string{
	"CI", "GITHUB_ACTIONS", "GITLAB_CI", "CIRCLECI", "TRAVIS",
	"BUILDKITE", "DRONE", "TEAMCITY_VERSION",
}

// DetectCursorControl reports whether the output stream supports cursor
// repositioning: it must be a terminal and TERM must not be "dumb".
func DetectCursorControl(isOutputTerminal bool, env Environ) bool {
	if !isOutputTerminal {
		return false
	}
	if t, _ := env("TERM"); t == "dumb" {
		return false
	}
	return true
}

// DetectRawInput reports whether raw keystrokes can be read: the input
// stream must be a terminal and the platform must support raw mode on it.
func DetectRawInput(isInputTerminal, hasRawMode bool) bool {
	return isInputTerminal && hasRawMode
}

// DetectColorDepth classifies color support. Precedence, first match
// wins:
//
//  1. NO_COLOR set (any value, even empty)
//  2. FORCE_COLOR set ("0"/"false" disable, "1"-"3" pick a depth)
//  3. not a terminal
//  4. TERM=dumb
//  5. COLORTERM=truecolor|24bit
//  6. TERM contains a truecolor marker or known truecolor identifier
//  7. TERM contains 256color/256
//  8. TERM_PROGRAM in the depth map
//  9. TERM_PROGRAM in the modern terminal list
//  10. KITTY_WINDOW_ID set
//  11. TERM contains a generic terminal/color/ansi marker
//  12. a CI indicator variable set
//  13. WT_SESSION set
//  14. default basic
//
// Overrides come first so they always beat heuristics, and generic
// substrings like "256color" are checked only after the more specific
// truecolor markers.
func DetectColorDepth(isOutputTerminal bool, env Environ) ColorDepth {
	if _, ok := env("NO_COLOR"); ok {
		return DepthNone
	}
	if v, ok := env("FORCE_COLOR"); ok {
		return forcedDepth(v)
	}
	if !isOutputTerminal {
		return DepthNone
	}

	termType, _ := env("TERM")
	if termType == "dumb" {
		return DepthNone
	}

	if ct, _ := env("COLORTERM"); ct == "truecolor" || ct == "24bit" {
		return DepthTrueColor
	}

	if strings.Contains(termType, "truecolor") || strings.Contains(termType, "24bit") {
		return DepthTrueColor
	}
	for _, known := range termTruecolor {
		if strings.Contains(termType, known) {
			return DepthTrueColor
		}
	}

	if strings.Contains(termType, "256color") || strings.Contains(termType, "256") {
		return Depth256
	}

	if prog, _ := env("TERM_PROGRAM"); prog != "" {
		if depth, ok := programDepth[prog]; ok {
			return depth
		}
		for _, modern := range programModern {
			if prog == modern {
				return DepthTrueColor
			}
		}
	}

	if _, ok := env("KITTY_WINDOW_ID"); ok {
		return DepthTrueColor
	}

	for _, marker := range termBasic {
		if strings.Contains(termType, marker) {
			return DepthBasic
		}
	}

	for _, ci := range ciVars {
		if _, ok := env(ci); ok {
			return DepthBasic
		}
	}

	if _, ok := env("WT_SESSION"); ok {
		return DepthTrueColor
	}

	return DepthBasic
}

// forcedDepth maps a FORCE_COLOR value to a depth. Unrecognized truthy
// values default to basic.
func forcedDepth(v string) ColorDepth {
	switch v {
	case "0", "false":
		return DepthNone
	case "1":
		return DepthBasic
	case "2":
		return Depth256
	case "3":
		return DepthTrueColor
	default:
		return DepthBasic
	}
}

// unicodePrograms lists TERM_PROGRAM identifiers of terminals known to
// render Unicode glyphs.
var unicodePrograms = []string{"iTerm.app", "WezTerm", "ghostty", "vscode", "Hyper"}

// unicodeTermMarkers lists TERM substrings of emulators and multiplexers
// that render Unicode.
var unicodeTermMarkers = []string{
	"xterm", "screen", "tmux", "kitty", "alacritty", "wezterm", "ghostty", "contour",
}

// DetectUnicode reports whether Unicode glyphs can render. The safe
// default is false.
func DetectUnicode(env Environ) bool {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v, _ := env(key)
		lower := strings.ToLower(v)
		if strings.Contains(lower, "utf-8") || strings.Contains(lower, "utf8") {
			return true
		}
	}

	if prog, _ := env("TERM_PROGRAM"); prog != "" {
		for _, known := range unicodePrograms {
			if prog == known {
				return true
			}
		}
	}

	if _, ok := env("KITTY_WINDOW_ID"); ok {
		return true
	}
	if _, ok := env("WT_SESSION"); ok {
		return true
	}

	termType, _ := env("TERM")
	for _, marker := range unicodeTermMarkers {
		if strings.Contains(termType, marker) {
			return true
		}
	}

	return false
}

// underlineTerms lists TERM identifiers of terminals implementing the
// colon-parameterized underline escapes.
var underlineTerms = []string{"xterm-ghostty", "xterm-kitty", "wezterm", "contour", "rio"}

// underlinePrograms lists TERM_PROGRAM substrings of terminals
// implementing extended underlines. Apple_Terminal would match
// "Terminal" here but does not support the escapes, so it is excluded
// before the substring scan.
var underlinePrograms = []string{"iTerm", "WezTerm", "ghostty", "kitty", "rio", "contour", "Terminal"}

// DetectExtendedUnderline reports whether the terminal renders the
// ESC[4:Nm underline styles and ESC[58m underline colors.
func DetectExtendedUnderline(env Environ) bool {
	termType, _ := env("TERM")
	for _, known := range underlineTerms {
		if strings.Contains(termType, known) {
			return true
		}
	}

	if prog, _ := env("TERM_PROGRAM"); prog != "" && prog != "Apple_Terminal" {
		for _, known := range underlinePrograms {
			if strings.Contains(prog, known) {
				return true
			}
		}
	}

	if _, ok := env("KITTY_WINDOW_ID"); ok {
		return true
	}

	return false
}

// Detect captures a full snapshot for the given stream pair using the
// process environment semantics of env.
func Detect(out, in *os.File, env Environ) Snapshot {
	outTTY := IsTerminal(out)
	inTTY := in != nil && term.IsTerminal(int(in.Fd()))

	return Snapshot{
		CursorControl:     DetectCursorControl(outTTY, env),
		RawInput:          DetectRawInput(inTTY, inTTY),
		ColorDepth:        DetectColorDepth(outTTY, env),
		Unicode:           DetectUnicode(env),
		ExtendedUnderline: DetectExtendedUnderline(env),
	}
}

// IsTerminal reports whether f refers to a terminal, including Cygwin
// pseudo-terminals on Windows.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
