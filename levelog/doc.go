// Package levelog provides a leveled logger with a dynamic level registry,
// inline color markup, and per-sink templates.
//
// # Levels
//
// Severity levels are live data, not constants. The built-ins (TRACE, DEBUG,
// INFO, SUCCESS, WARNING, ERROR, CRITICAL) carry a number, a color spec, and
// an icon, and can be edited at any time; new levels can be registered while
// sinks are already active. Every log call resolves the level against the
// current registry state, so an edit is visible on the very next call
// without re-adding any sink.
//
//	levelog.SetLevel("audit", levelog.WithNo(35), levelog.WithColor("<magenta>"), levelog.WithIcon("@"))
//	levelog.Log("audit", "user {0} logged in", name)
//
// # Sinks
//
// A sink is an io.Writer plus a fixed minimum severity, a format, and a
// colorize flag. Formats mix placeholders with markup tags:
//
//	id, _ := levelog.Add(os.Stderr, levelog.SinkConfig{
//	    Level:    "INFO",
//	    Format:   "<level>{level.icon} {level.name}</level> | {message}",
//	    Colorize: true,
//	})
//	defer levelog.Remove(id)
//
// AddConsole picks colorize from the terminal, AddFile writes plain rotating
// files. When no sink's threshold is met the message is not even
// interpolated.
//
// # Markup
//
// <red>, <bold>, <LIGHT-BLUE> and friends style the text they enclose; the
// <level> (or <lvl>) alias applies the color of the level being rendered.
// Only the format string is parsed for tags. Substituted values, the message
// included, are inserted literally, so tag-like user data is never
// interpreted.
//
// # Usage
//
// The package-level functions share one default Logger; New creates an
// independent one. All of it is safe for concurrent use, and delivery is
// synchronous: when a log call returns, every matching sink has been written.
package levelog
