package levelog

import (
	"fmt"

	"github.com/pkg/errors"
)

// Level is the full definition of a severity level: a unique case-sensitive
// name, a non-negative severity number, a color spec made of markup style
// tags (possibly blank), and a display icon (possibly blank).
type Level struct {
	Name  string
	No    int
	Color string
	Icon  string
}

// builtinLevels are registered on every new Logger. Levels are never deleted,
// but any of them can be edited afterwards.
var builtinLevels = []Level{
	{Name: "TRACE", No: 5, Color: "<cyan><bold>", Icon: "✏️"},
	{Name: "DEBUG", No: 10, Color: "<blue><bold>", Icon: "🐞"},
	{Name: "INFO", No: 20, Color: "<bold>", Icon: "ℹ️"},
	{Name: "SUCCESS", No: 25, Color: "<green><bold>", Icon: "✔️"},
	{Name: "WARNING", No: 30, Color: "<yellow><bold>", Icon: "⚠️"},
	{Name: "ERROR", No: 40, Color: "<red><bold>", Icon: "❌"},
	{Name: "CRITICAL", No: 50, Color: "<RED><bold>", Icon: "☠️"},
}

// levelEntry is a registered level plus the derived state the engine needs:
// the parsed escape prefix for its color and the edit sequence number used to
// break rank ties with last-write-wins.
type levelEntry struct {
	level Level
	style string
	seq   uint64
}

// LevelOption is a field update passed to SetLevel. Fields not supplied are
// left untouched when editing an existing level.
type LevelOption func(*levelPatch)

type levelPatch struct {
	no    *int
	color *string
	icon  *string
}

// WithNo sets a level's severity number.
func WithNo(no int) LevelOption {
	return func(p *levelPatch) { p.no = &no }
}

// WithColor sets a level's color spec, e.g. "<red><bold>".
func WithColor(spec string) LevelOption {
	return func(p *levelPatch) { p.color = &spec }
}

// WithIcon sets a level's display icon.
func WithIcon(icon string) LevelOption {
	return func(p *levelPatch) { p.icon = &icon }
}

// setLevel registers a new level or edits an existing one. New levels require
// WithNo; an edit that names a level never registered is an unknown-level
// error, not an invalid one. The color spec is validated before anything is
// mutated, so a failed call leaves the registry untouched.
func (c *core) setLevel(name string, opts ...LevelOption) error {
	var p levelPatch
	for _, o := range opts {
		o(&p)
	}
	if name == "" {
		return errors.Wrap(ErrInvalidLevel, "level name must not be empty")
	}
	if p.no != nil && *p.no < 0 {
		return errors.Wrapf(ErrInvalidLevel, "level %q severity must not be negative, got %d", name, *p.no)
	}
	style := ""
	if p.color != nil {
		var err error
		if style, err = styleSequence(*p.color); err != nil {
			return errors.Wrapf(ErrInvalidLevel, "level %q color spec: %v", name, err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.levels[name]
	if !ok {
		if p.no == nil {
			return errors.Wrapf(ErrUnknownLevel, "level %q is not registered, a severity number is required to create it", name)
		}
		entry = &levelEntry{level: Level{Name: name}}
		c.levels[name] = entry
	}
	if p.no != nil {
		entry.level.No = *p.no
	}
	if p.color != nil {
		entry.level.Color = *p.color
		entry.style = style
	}
	if p.icon != nil {
		entry.level.Icon = *p.icon
	}
	c.seq++
	entry.seq = c.seq
	return nil
}

// getLevel returns the current definition of a registered level.
func (c *core) getLevel(name string) (Level, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.levels[name]
	if !ok {
		return Level{}, errors.Wrapf(ErrUnknownLevel, "level %q has not been registered", name)
	}
	return entry.level, nil
}

// resolveLocked maps a level identifier to its current definition and escape
// prefix. Strings must name a registered level. A non-negative integer picks
// the most recently registered or edited level with that severity, falling
// back to an ephemeral "Level {n}" that is never persisted. Anything else is
// rejected. Callers must hold c.mu.
func (c *core) resolveLocked(ident any) (Level, string, error) {
	switch v := ident.(type) {
	case string:
		entry, ok := c.levels[v]
		if !ok {
			return Level{}, "", errors.Wrapf(ErrUnknownLevel, "level %q has not been registered", v)
		}
		return entry.level, entry.style, nil
	default:
		no, ok := asSeverity(ident)
		if !ok {
			return Level{}, "", errors.Wrapf(ErrInvalidLevel, "level identifier must be a name or a non-negative severity, got %v (%T)", ident, ident)
		}
		var match *levelEntry
		for _, entry := range c.levels {
			if entry.level.No == no && (match == nil || entry.seq > match.seq) {
				match = entry
			}
		}
		if match != nil {
			return match.level, match.style, nil
		}
		return Level{Name: fmt.Sprintf("Level %d", no), No: no}, "", nil
	}
}

// asSeverity accepts any built-in integer kind as a severity number. Floats
// and everything else are rejected, as are negative values.
func asSeverity(v any) (int, bool) {
	var no int
	switch n := v.(type) {
	case int:
		no = n
	case int8:
		no = int(n)
	case int16:
		no = int(n)
	case int32:
		no = int(n)
	case int64:
		no = int(n)
	case uint:
		no = int(n)
	case uint8:
		no = int(n)
	case uint16:
		no = int(n)
	case uint32:
		no = int(n)
	case uint64:
		no = int(n)
	default:
		return 0, false
	}
	if no < 0 {
		return 0, false
	}
	return no, true
}
