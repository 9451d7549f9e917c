package levelog

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig controls rotation and retention of a file sink. Zero values
// disable the corresponding limit.
type FileConfig struct {
	// MaxSizeMB rotates the file once it exceeds this many megabytes.
	MaxSizeMB int
	// MaxBackups caps how many rotated files are kept.
	MaxBackups int
	// MaxAgeDays deletes rotated files older than this many days.
	MaxAgeDays int
	// Compress gzips rotated files.
	Compress bool
}

// AddFile registers a rotating file sink. The parent directory is created if
// needed and the file is owned by the sink: Remove closes it. File output is
// always plain; any Colorize setting in cfg is ignored.
func (l *Logger) AddFile(path string, fc FileConfig, cfg SinkConfig) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return 0, errors.Wrapf(err, "creating log directory for %s", path)
	}
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    fc.MaxSizeMB,
		MaxBackups: fc.MaxBackups,
		MaxAge:     fc.MaxAgeDays,
		Compress:   fc.Compress,
	}
	cfg.Colorize = false
	return l.core.add(w, cfg, w)
}

// AddConsole registers a stderr sink. By default colorize follows the stream:
// enabled when stderr is a terminal, plain otherwise. Setting cfg.Color to
// ColorAlways or ColorNever forces it either way; the writer is wrapped so
// escape sequences behave on Windows and are stripped from non-terminals
// only when color was not forced on.
func (l *Logger) AddConsole(cfg SinkConfig) (int, error) {
	colorize := resolveColorMode(cfg.Color, isTerminal(os.Stderr))
	cfg.Colorize = colorize
	return l.core.add(consoleWriter(os.Stderr, colorize), cfg, nil)
}
