package term

import (
	"github.com/arthur-debert/termstyle/pkg/ansi"
	"github.com/arthur-debert/termstyle/pkg/caps"
)

// UnderlineStyled underlines text with the requested extended style.
// Terminals without extended underline support get a standard single
// underline instead; the payload text is preserved under both branches.
func (t *Term) UnderlineStyled(u ansi.UnderlineStyle, text string) string {
	if t.snapshot.ColorDepth == caps.DepthNone {
		return text
	}
	if t.snapshot.ExtendedUnderline {
		return ansi.UnderlineSeq(u) + text + ansi.UnderlineSeq(ansi.UnderlineNone)
	}
	return ansi.UnderlineOn + text + ansi.UnderlineOff
}

// CurlyUnderline is shorthand for the curly extended style.
func (t *Term) CurlyUnderline(text string) string {
	return t.UnderlineStyled(ansi.UnderlineCurly, text)
}

// UnderlineColored underlines text with a 24-bit underline color. On
// terminals without extended underline support it degrades to a plain
// underline with no color sequence at all.
func (t *Term) UnderlineColored(r, g, b uint8, text string) string {
	if t.snapshot.ColorDepth == caps.DepthNone {
		return text
	}
	if t.snapshot.ExtendedUnderline {
		return ansi.UnderlineColor(r, g, b) + ansi.UnderlineOn + text +
			ansi.UnderlineOff + ansi.UnderlineColorReset
	}
	return ansi.UnderlineOn + text + ansi.UnderlineOff
}

// Hyperlink wraps text in an OSC 8 hyperlink. Terminals that do not
// implement OSC 8 ignore the sequence and show the bare text, so no
// capability gate is needed.
func (t *Term) Hyperlink(text, url string) string {
	return ansi.Hyperlink(text, url)
}

// HyperlinkID wraps text in an OSC 8 hyperlink grouped under id.
func (t *Term) HyperlinkID(id, text, url string) string {
	return ansi.HyperlinkID(id, text, url)
}

// MarkIntentional prefixes text with the private sentinel code that
// flags intentional background color usage for downstream consumers.
func (t *Term) MarkIntentional(text string) string {
	return ansi.Marker + text
}
