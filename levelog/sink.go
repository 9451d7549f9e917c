package levelog

import (
	"io"
	"math"
	"os"

	colorable "github.com/mattn/go-colorable"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// ColorMode says how AddConsole decides whether to emit escape sequences.
type ColorMode int

const (
	// ColorAuto colorizes when the stream is a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways colorizes even when the stream is not a terminal.
	ColorAlways
	// ColorNever emits plain text regardless of the stream.
	ColorNever
)

// SinkConfig configures one output destination.
type SinkConfig struct {
	// Level is the minimum severity, given as a level name or a number.
	// It is resolved once when the sink is added and fixed for the sink's
	// lifetime; later edits to a level change what is displayed, never which
	// sinks filter a record out. nil means "DEBUG".
	Level any
	// Format is the output template; empty means DefaultFormat.
	Format string
	// Colorize enables escape-sequence output for this sink. Add uses it as
	// given; AddConsole derives it from Color and the terminal instead.
	Colorize bool
	// Color overrides terminal detection for AddConsole. The zero value
	// ColorAuto keeps the detection; Add ignores this field.
	Color ColorMode
}

// sink is one active destination. Writes go to w; closer, when set, is closed
// by Remove (file sinks own their file).
type sink struct {
	id       int
	w        io.Writer
	no       int
	format   string
	colorize bool
	closer   io.Closer
}

// add registers a sink and returns its id.
func (c *core) add(w io.Writer, cfg SinkConfig, closer io.Closer) (int, error) {
	ident := cfg.Level
	if ident == nil {
		ident = "DEBUG"
	}
	format := cfg.Format
	if format == "" {
		format = DefaultFormat
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	lvl, _, err := c.resolveLocked(ident)
	if err != nil {
		return 0, err
	}
	id := c.nextSink
	c.nextSink++
	c.sinks = append(c.sinks, &sink{
		id:       id,
		w:        w,
		no:       lvl.No,
		format:   format,
		colorize: cfg.Colorize,
		closer:   closer,
	})
	if lvl.No < c.minNo {
		c.minNo = lvl.No
	}
	return id, nil
}

// remove deactivates a sink; it is never dispatched to again. A sink that
// owns its writer is closed here.
func (c *core) remove(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, s := range c.sinks {
		if s.id != id {
			continue
		}
		c.sinks = append(c.sinks[:i], c.sinks[i+1:]...)
		c.recomputeMinLocked()
		if s.closer != nil {
			if err := s.closer.Close(); err != nil {
				return errors.Wrapf(err, "closing sink %d", id)
			}
		}
		return nil
	}
	return errors.Wrapf(ErrUnknownSink, "sink %d is not active", id)
}

// recomputeMinLocked refreshes the cached lowest threshold, which gates the
// short-circuit in log: below it, no formatting work happens at all.
func (c *core) recomputeMinLocked() {
	c.minNo = math.MaxInt
	for _, s := range c.sinks {
		if s.no < c.minNo {
			c.minNo = s.no
		}
	}
}

// dispatch renders and writes rec to every sink whose threshold is met.
// Sinks are visited in add order. A write failure is routed to the error
// handler and never blocks the remaining sinks; a rendering failure is the
// caller's error and is returned once the remaining sinks have been served.
func (c *core) dispatch(rec *record) error {
	var firstErr error
	for _, s := range c.sinks {
		if rec.level.No < s.no {
			continue
		}
		line, err := formatRecord(s.format, rec, s.colorize)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if _, err := s.w.Write([]byte(line)); err != nil {
			c.onError(s.id, err)
		}
	}
	return firstErr
}

// resolveColorMode turns a ColorMode and the terminal state into the colorize
// flag for a console sink: detection is only the default, an explicit mode
// always wins.
func resolveColorMode(mode ColorMode, tty bool) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return tty
	}
}

// consoleWriter wraps stderr so escape sequences survive on Windows consoles
// and are stripped when the stream is not a terminal.
func consoleWriter(f *os.File, tty bool) io.Writer {
	if tty {
		return colorable.NewColorable(f)
	}
	return colorable.NewNonColorable(f)
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
