// Package console provides a small leveled print surface over a stream
// pair, plus an interceptor that buffers calls for external consumption
// (golden tests, log shipping, TUIs that need to replay output).
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Entry records one intercepted call: the method invoked, its arguments,
// and the stream it would have written to ("stdout" or "stderr").
type Entry struct {
	Method string
	Args   []interface{}
	Stream string
}

// Console writes leveled messages to an output/error stream pair. Log,
// Info and Debug go to the output stream; Warn and Error go to the
// error stream.
type Console struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer

	capture *Capture
}

// New creates a Console over the given stream pair.
func New(out, err io.Writer) *Console {
	return &Console{out: out, err: err}
}

func (c *Console) emit(method, stream string, w io.Writer, args []interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.capture != nil {
		c.capture.add(Entry{Method: method, Args: args, Stream: stream})
		return
	}
	fmt.Fprintln(w, sprint(args))
}

func (c *Console) Log(args ...interface{})   { c.emit("log", "stdout", c.out, args) }
func (c *Console) Info(args ...interface{})  { c.emit("info", "stdout", c.out, args) }
func (c *Console) Debug(args ...interface{}) { c.emit("debug", "stdout", c.out, args) }
func (c *Console) Warn(args ...interface{})  { c.emit("warn", "stderr", c.err, args) }
func (c *Console) Error(args ...interface{}) { c.emit("error", "stderr", c.err, args) }

// sprint joins arguments with single spaces, the way console-style
// loggers do.
func sprint(args []interface{}) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, " ")
}

// Capture diverts a Console's calls into an in-memory buffer. The
// original streams are the real resource here: Restore puts them back
// and is safe to call more than once.
type Capture struct {
	console *Console
	mu      sync.Mutex
	entries []Entry
	done    sync.Once
}

// StartCapture begins buffering all calls on c. Writes stop reaching the
// underlying streams until Restore is called.
func (c *Console) StartCapture() *Capture {
	c.mu.Lock()
	defer c.mu.Unlock()

	capture := &Capture{console: c}
	c.capture = capture
	return capture
}

func (cp *Capture) add(e Entry) {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	cp.entries = append(cp.entries, e)
}

// Entries returns a copy of everything buffered so far.
func (cp *Capture) Entries() []Entry {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	out := make([]Entry, len(cp.entries))
	copy(out, cp.entries)
	return out
}

// Restore reattaches the Console to its streams. Buffered entries remain
// readable through Entries. Idempotent.
func (cp *Capture) Restore() {
	cp.done.Do(func() {
		cp.console.mu.Lock()
		defer cp.console.mu.Unlock()
		if cp.console.capture == cp {
			cp.console.capture = nil
		}
	})
}
