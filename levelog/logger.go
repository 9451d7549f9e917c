package levelog

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync"
)

// F holds named substitution fields. Passed as the final argument of a log
// call it supplies the {key} placeholders of the message; fields bound with
// With are also visible to sink formats.
type F map[string]any

// core is the shared engine behind a Logger and all loggers derived from it
// with With: the level registry, the sink table, and the one mutex that keeps
// every read and write of them atomic. Dispatch happens under the same mutex,
// so an edit is atomically visible to the next log call and no call can
// observe a level with a new severity but a stale color.
type core struct {
	mu       sync.Mutex
	levels   map[string]*levelEntry
	seq      uint64
	sinks    []*sink
	nextSink int
	minNo    int // lowest active threshold, math.MaxInt with no sinks
	onError  func(sinkID int, err error)
}

// Logger is a handle on a core plus the fields bound to it. The zero value is
// not usable; call New or use the package-level default.
type Logger struct {
	core   *core
	fields F
}

// New returns a Logger with the built-in levels registered and no sinks.
func New() *Logger {
	c := &core{
		levels:  make(map[string]*levelEntry),
		minNo:   math.MaxInt,
		onError: reportSinkError,
	}
	for _, lvl := range builtinLevels {
		if err := c.setLevel(lvl.Name, WithNo(lvl.No), WithColor(lvl.Color), WithIcon(lvl.Icon)); err != nil {
			panic(err) // built-in table is known good
		}
	}
	return &Logger{core: c}
}

// reportSinkError is the default side channel for per-sink write failures:
// they are printed to stderr and never interrupt dispatch to other sinks.
func reportSinkError(sinkID int, err error) {
	fmt.Fprintf(os.Stderr, "levelog: sink %d write failed: %v\n", sinkID, err)
}

// SetErrorHandler replaces the handler invoked when a sink's writer fails.
func (l *Logger) SetErrorHandler(fn func(sinkID int, err error)) {
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	if fn == nil {
		fn = reportSinkError
	}
	l.core.onError = fn
}

// Level returns the current definition of a registered level.
func (l *Logger) Level(name string) (Level, error) {
	return l.core.getLevel(name)
}

// SetLevel registers a new level or edits an existing one in place. Creating
// a level requires WithNo; editing updates only the options supplied and
// leaves the other fields untouched. Levels are never deleted.
func (l *Logger) SetLevel(name string, opts ...LevelOption) error {
	return l.core.setLevel(name, opts...)
}

// Add registers w as a sink and returns its id. The threshold is resolved
// through the level registry once, here, and fixed for the sink's lifetime.
func (l *Logger) Add(w io.Writer, cfg SinkConfig) (int, error) {
	return l.core.add(w, cfg, nil)
}

// Remove deactivates the sink with the given id.
func (l *Logger) Remove(id int) error {
	return l.core.remove(id)
}

// With returns a Logger sharing the same registry and sinks with the given
// fields bound. Bound fields resolve message and format placeholders on every
// call made through the returned Logger.
func (l *Logger) With(fields F) *Logger {
	merged := make(F, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logger{core: l.core, fields: merged}
}

// Log emits a record at the level named or numbered by ident. The message may
// contain {} / {0} placeholders filled from args and {key} placeholders
// filled from a trailing F argument or bound fields. When no sink's threshold
// is met the message is not interpolated at all, so a missing key is only an
// error when something would actually be emitted. Should several sinks fail
// to format, every remaining sink is still served and only the first
// formatting error is returned.
func (l *Logger) Log(ident any, msg string, args ...any) error {
	return l.core.log(ident, msg, l.fields, args)
}

func (c *core) log(ident any, msg string, bound F, args []any) error {
	var fields F
	if n := len(args); n > 0 {
		if f, ok := args[n-1].(F); ok {
			fields = f
			args = args[:n-1]
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	lvl, style, err := c.resolveLocked(ident)
	if err != nil {
		return err
	}
	if lvl.No < c.minNo {
		return nil
	}

	merged := bound
	if len(fields) > 0 {
		merged = make(F, len(bound)+len(fields))
		for k, v := range bound {
			merged[k] = v
		}
		for k, v := range fields {
			merged[k] = v
		}
	}
	message, err := interpolateMessage(msg, args, merged)
	if err != nil {
		return err
	}
	return c.dispatch(&record{
		level:   lvl,
		style:   style,
		message: message,
		fields:  merged,
	})
}

// Named severity shortcuts. Each is a thin wrapper calling Log with a fixed
// built-in level name.

// Trace logs at TRACE.
func (l *Logger) Trace(msg string, args ...any) error {
	return l.core.log("TRACE", msg, l.fields, args)
}

// Debug logs at DEBUG.
func (l *Logger) Debug(msg string, args ...any) error {
	return l.core.log("DEBUG", msg, l.fields, args)
}

// Info logs at INFO.
func (l *Logger) Info(msg string, args ...any) error {
	return l.core.log("INFO", msg, l.fields, args)
}

// Success logs at SUCCESS.
func (l *Logger) Success(msg string, args ...any) error {
	return l.core.log("SUCCESS", msg, l.fields, args)
}

// Warning logs at WARNING.
func (l *Logger) Warning(msg string, args ...any) error {
	return l.core.log("WARNING", msg, l.fields, args)
}

// Error logs at ERROR.
func (l *Logger) Error(msg string, args ...any) error {
	return l.core.log("ERROR", msg, l.fields, args)
}

// Critical logs at CRITICAL.
func (l *Logger) Critical(msg string, args ...any) error {
	return l.core.log("CRITICAL", msg, l.fields, args)
}

// std is the process-wide default instance used by the package-level
// functions. It has no implicit teardown beyond process exit.
var std = New()

// Default returns the package-level Logger.
func Default() *Logger { return std }

// GetLevel returns a level definition from the default Logger.
func GetLevel(name string) (Level, error) { return std.Level(name) }

// SetLevel registers or edits a level on the default Logger.
func SetLevel(name string, opts ...LevelOption) error { return std.SetLevel(name, opts...) }

// Add registers a sink on the default Logger.
func Add(w io.Writer, cfg SinkConfig) (int, error) { return std.Add(w, cfg) }

// AddConsole registers a stderr sink on the default Logger.
func AddConsole(cfg SinkConfig) (int, error) { return std.AddConsole(cfg) }

// AddFile registers a rotating file sink on the default Logger.
func AddFile(path string, fc FileConfig, cfg SinkConfig) (int, error) {
	return std.AddFile(path, fc, cfg)
}

// Remove deactivates a sink on the default Logger.
func Remove(id int) error { return std.Remove(id) }

// With binds fields on the default Logger.
func With(fields F) *Logger { return std.With(fields) }

// Log emits through the default Logger.
func Log(ident any, msg string, args ...any) error { return std.Log(ident, msg, args...) }

// Trace logs at TRACE through the default Logger.
func Trace(msg string, args ...any) error { return std.Trace(msg, args...) }

// Debug logs at DEBUG through the default Logger.
func Debug(msg string, args ...any) error { return std.Debug(msg, args...) }

// Info logs at INFO through the default Logger.
func Info(msg string, args ...any) error { return std.Info(msg, args...) }

// Success logs at SUCCESS through the default Logger.
func Success(msg string, args ...any) error { return std.Success(msg, args...) }

// Warning logs at WARNING through the default Logger.
func Warning(msg string, args ...any) error { return std.Warning(msg, args...) }

// Error logs at ERROR through the default Logger.
func Error(msg string, args ...any) error { return std.Error(msg, args...) }

// Critical logs at CRITICAL through the default Logger.
func Critical(msg string, args ...any) error { return std.Critical(msg, args...) }
