// Package ansi provides the raw escape-sequence vocabulary used by the
// styling layer: extended underline codes, underline color, OSC 8
// hyperlinks, and utilities to strip sequences and measure display width.
//
// Builders in this package are unconditional; they always emit their
// sequences. Capability-aware fallback lives in pkg/term.
package ansi

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	esc = "\x1b"
	csi = esc + "["
	osc = esc + "]"
	st  = esc + "\\"

	// Reset is the full SGR reset sequence.
	Reset = csi + "0m"

	// UnderlineOn and UnderlineOff are the standard single-underline
	// toggle codes, used as the fallback for extended styles.
	UnderlineOn  = csi + "4m"
	UnderlineOff = csi + "24m"

	// UnderlineColorReset clears a previously set underline color.
	UnderlineColorReset = csi + "59m"

	// Marker is a private no-op SGR code used as a sentinel so that
	// downstream consumers can recognize intentional background color
	// usage. Terminals ignore it; StripANSI removes it like any other
	// SGR sequence.
	Marker = csi + "9999m"
)

// UnderlineStyle identifies one of the extended underline renditions.
type UnderlineStyle int

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// String returns the human-readable name of the underline style.
func (u UnderlineStyle) String() string {
	switch u {
	case UnderlineNone:
		return "none"
	case UnderlineSingle:
		return "single"
	case UnderlineDouble:
		return "double"
	case UnderlineCurly:
		return "curly"
	case UnderlineDotted:
		return "dotted"
	case UnderlineDashed:
		return "dashed"
	default:
		return "unknown"
	}
}

// ParseUnderlineStyle parses a style name as used in CLI flags and themes.
func ParseUnderlineStyle(s string) (UnderlineStyle, bool) {
	switch strings.ToLower(s) {
	case "single":
		return UnderlineSingle, true
	case "double":
		return UnderlineDouble, true
	case "curly":
		return UnderlineCurly, true
	case "dotted":
		return UnderlineDotted, true
	case "dashed":
		return UnderlineDashed, true
	default:
		return UnderlineNone, false
	}
}

// UnderlineSeq returns the colon-parameterized extended underline code
// ESC[4:Nm for the given style. UnderlineNone yields the reset form
// ESC[4:0m.
func UnderlineSeq(style UnderlineStyle) string {
	return fmt.Sprintf("%s4:%dm", csi, int(style))
}

// UnderlineColor returns the sequence selecting a 24-bit underline color,
// ESC[58:2::R:G:Bm. The color-space id field is intentionally left empty;
// RGB is assumed.
func UnderlineColor(r, g, b uint8) string {
	return fmt.Sprintf("%s58:2::%d:%d:%dm", csi, r, g, b)
}

// Hyperlink wraps text in an OSC 8 hyperlink pointing at url.
func Hyperlink(text, url string) string {
	return osc + "8;;" + url + st + text + osc + "8;;" + st
}

// HyperlinkID wraps text in an OSC 8 hyperlink carrying an id parameter,
// so that multiple segments can be grouped as one logical link.
func HyperlinkID(id, text, url string) string {
	return osc + "8;id=" + id + ";" + url + st + text + osc + "8;;" + st
}

// ansiPattern matches SGR sequences (both semicolon- and colon-
// parameterized forms) and OSC 8 hyperlink open/close sequences. A lone
// ESC that does not introduce a recognized sequence is left untouched.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*m|\x1b\]8;[^\x1b]*\x1b\\`)

// StripANSI removes every recognized escape sequence from s.
func StripANSI(s string) string {
	if !strings.Contains(s, esc) {
		return s
	}
	return ansiPattern.ReplaceAllString(s, "")
}

// DisplayWidth returns the number of terminal columns s occupies once
// escape sequences are removed. Double-width code points (CJK, most
// emoji) count as two columns.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}
