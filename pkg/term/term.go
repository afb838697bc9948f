// Package term binds a frozen capability snapshot to a styling chain and
// a minimal I/O surface.
//
// Detection runs exactly once, at construction; the snapshot never
// changes for the lifetime of a Term. Only the terminal dimensions are
// re-read live, since they can change on resize independent of
// capability.
package term

import (
	"fmt"
	"os"
	"sync"

	"github.com/arthur-debert/termstyle/pkg/ansi"
	"github.com/arthur-debert/termstyle/pkg/caps"
	"github.com/arthur-debert/termstyle/pkg/logging"
	"github.com/arthur-debert/termstyle/pkg/style"
	xterm "golang.org/x/term"
)

// Options configures Term construction. Every field is optional; zero
// values fall through to detection on the default streams.
type Options struct {
	// Output overrides the output stream (default os.Stdout).
	Output *os.File
	// Input overrides the input stream (default os.Stdin).
	Input *os.File
	// Environ overrides the environment lookup used by detection
	// (default the process environment).
	Environ caps.Environ

	// ForceCursor bypasses cursor-control detection.
	ForceCursor *bool
	// ForceColorDepth bypasses color detection. An explicit DepthNone
	// force-disables color.
	ForceColorDepth *caps.ColorDepth
	// ForceUnicode bypasses Unicode detection.
	ForceUnicode *bool
	// ForceUnderline bypasses extended-underline detection.
	ForceUnderline *bool
}

// Term is a long-lived terminal handle: one capability snapshot, one
// root styling chain seeded with the snapshot's color depth, and the
// stream pair the snapshot was taken against.
type Term struct {
	out      *os.File
	in       *os.File
	snapshot caps.Snapshot
	root     style.Chain
	close    sync.Once
}

// New constructs a Term. Detection runs synchronously, once, here; any
// forced option bypasses detection entirely for that field.
func New(opts Options) *Term {
	log := logging.GetLogger("term")

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	in := opts.Input
	if in == nil {
		in = os.Stdin
	}
	env := opts.Environ
	if env == nil {
		env = caps.OSEnviron()
	}

	snapshot := caps.Detect(out, in, env)
	if opts.ForceCursor != nil {
		snapshot.CursorControl = *opts.ForceCursor
	}
	if opts.ForceColorDepth != nil {
		snapshot.ColorDepth = *opts.ForceColorDepth
	}
	if opts.ForceUnicode != nil {
		snapshot.Unicode = *opts.ForceUnicode
	}
	if opts.ForceUnderline != nil {
		snapshot.ExtendedUnderline = *opts.ForceUnderline
	}

	log.Debug().
		Str("colorDepth", snapshot.ColorDepth.String()).
		Bool("cursor", snapshot.CursorControl).
		Bool("unicode", snapshot.Unicode).
		Bool("extendedUnderline", snapshot.ExtendedUnderline).
		Msg("Capability snapshot taken")

	return &Term{
		out:      out,
		in:       in,
		snapshot: snapshot,
		root:     style.New(snapshot.ColorDepth),
	}
}

var (
	defaultTerm *Term
	defaultOnce sync.Once
)

// Default returns the process-wide Term bound to os.Stdout/os.Stdin. It
// is created on first use and never re-detected; construct a fresh Term
// with New for anything environment-sensitive.
func Default() *Term {
	defaultOnce.Do(func() {
		defaultTerm = New(Options{})
	})
	return defaultTerm
}

// Snapshot returns a copy of the frozen capability snapshot.
func (t *Term) Snapshot() caps.Snapshot {
	return t.snapshot
}

// Input returns the input stream the snapshot was taken against, for
// callers that read keystrokes themselves.
func (t *Term) Input() *os.File {
	return t.in
}

// HasCursor reports whether the cursor can be repositioned.
func (t *Term) HasCursor() bool {
	return t.snapshot.CursorControl
}

// HasInput reports whether raw keystrokes can be read.
func (t *Term) HasInput() bool {
	return t.snapshot.RawInput
}

// HasColor reports whether any color output is possible.
func (t *Term) HasColor() bool {
	return t.snapshot.ColorDepth != caps.DepthNone
}

// HasUnicode reports whether Unicode glyphs render.
func (t *Term) HasUnicode() bool {
	return t.snapshot.Unicode
}

// HasExtendedUnderline reports whether the extended underline escapes
// render.
func (t *Term) HasExtendedUnderline() bool {
	return t.snapshot.ExtendedUnderline
}

// ColorDepth returns the snapshot's color depth.
func (t *Term) ColorDepth() caps.ColorDepth {
	return t.snapshot.ColorDepth
}

// Columns returns the current terminal width. ok is false when the
// output stream is not a terminal.
func (t *Term) Columns() (int, bool) {
	w, _, err := xterm.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, false
	}
	return w, true
}

// Rows returns the current terminal height. ok is false when the output
// stream is not a terminal.
func (t *Term) Rows() (int, bool) {
	_, h, err := xterm.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, false
	}
	return h, true
}

// Write writes text to the output stream without a trailing newline.
func (t *Term) Write(text string) error {
	_, err := fmt.Fprint(t.out, text)
	return err
}

// WriteLine writes text to the output stream with one trailing newline.
func (t *Term) WriteLine(text string) error {
	_, err := fmt.Fprintln(t.out, text)
	return err
}

// Apply renders text through the identity chain: no attributes, still
// subject to the depth-none shortcut. It is the Go spelling of calling
// the Term itself on a string.
func (t *Term) Apply(text string) string {
	return t.root.Render(text)
}

// Style returns the root chain, rooted at the Term's color depth.
func (t *Term) Style() style.Chain {
	return t.root
}

// StripANSI removes recognized escape sequences from text.
func (t *Term) StripANSI(text string) string {
	return ansi.StripANSI(text)
}

// DisplayWidth returns the terminal column width of text after
// stripping escape sequences.
func (t *Term) DisplayWidth(text string) int {
	return ansi.DisplayWidth(text)
}

// Close releases the Term. The Term holds no real resources, but the
// disposal hook is kept for symmetry with collaborators that do (the
// console interceptor). Calling it more than once is a no-op.
func (t *Term) Close() error {
	t.close.Do(func() {})
	return nil
}

// Styling combinators rooted at the Term's color depth. Each returns a
// fresh chain; the Term itself is never modified.

func (t *Term) Bold() style.Chain          { return t.root.Bold() }
func (t *Term) Dim() style.Chain           { return t.root.Dim() }
func (t *Term) Italic() style.Chain        { return t.root.Italic() }
func (t *Term) Underlined() style.Chain    { return t.root.Underline() }
func (t *Term) Strikethrough() style.Chain { return t.root.Strikethrough() }
func (t *Term) Inverse() style.Chain       { return t.root.Inverse() }
func (t *Term) Hidden() style.Chain        { return t.root.Hidden() }

func (t *Term) Black() style.Chain   { return t.root.Black() }
func (t *Term) Red() style.Chain     { return t.root.Red() }
func (t *Term) Green() style.Chain   { return t.root.Green() }
func (t *Term) Yellow() style.Chain  { return t.root.Yellow() }
func (t *Term) Blue() style.Chain    { return t.root.Blue() }
func (t *Term) Magenta() style.Chain { return t.root.Magenta() }
func (t *Term) Cyan() style.Chain    { return t.root.Cyan() }
func (t *Term) White() style.Chain   { return t.root.White() }
func (t *Term) Gray() style.Chain    { return t.root.Gray() }

func (t *Term) RGB(r, g, b uint8) style.Chain   { return t.root.RGB(r, g, b) }
func (t *Term) BgRGB(r, g, b uint8) style.Chain { return t.root.BgRGB(r, g, b) }
func (t *Term) ANSI256(index uint8) style.Chain { return t.root.ANSI256(index) }
