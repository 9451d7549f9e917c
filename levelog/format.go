package levelog

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultFormat is used for sinks added without an explicit format.
const DefaultFormat = "<level>{level.name: <8}</level>| {message}"

// record is the per-call unit handed to the format engine. The level data is
// looked up fresh from the registry at call time, never cached from sink-add
// time, so edits are visible on the very next call.
type record struct {
	level   Level
	style   string // escape prefix parsed from level.Color
	message string // fully interpolated message body
	fields  F
}

// expandBraces substitutes {name} and {name:spec} placeholders using lookup.
// {{ and }} escape literal braces. An unmatched brace is left as-is; a lookup
// miss yields an *InterpolationError naming the key.
func expandBraces(s string, lookup func(key string) (string, bool)) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); {
		c := s[i]
		if c == '{' {
			if i+1 < len(s) && s[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			j := strings.IndexByte(s[i:], '}')
			if j < 0 {
				b.WriteString(s[i:])
				break
			}
			field := s[i+1 : i+j]
			name, spec := field, ""
			if k := strings.IndexByte(field, ':'); k >= 0 {
				name, spec = field[:k], field[k+1:]
			}
			val, ok := lookup(name)
			if !ok {
				return "", &InterpolationError{Key: name}
			}
			if spec != "" {
				val = alignValue(val, spec)
			}
			b.WriteString(val)
			i += j + 1
			continue
		}
		if c == '}' && i+1 < len(s) && s[i+1] == '}' {
			b.WriteByte('}')
			i += 2
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String(), nil
}

// alignValue applies a minimal alignment spec: an optional fill rune, one of
// < > ^, and a width, e.g. " <8" or "*^12". Anything else leaves the value
// untouched.
func alignValue(val, spec string) string {
	runes := []rune(spec)
	fill := " "
	align := '<'
	i := 0
	switch {
	case len(runes) >= 2 && isAlign(runes[1]):
		fill, align, i = string(runes[0]), runes[1], 2
	case len(runes) >= 1 && isAlign(runes[0]):
		align, i = runes[0], 1
	}
	width, err := strconv.Atoi(string(runes[i:]))
	pad := width - utf8.RuneCountInString(val)
	if err != nil || pad <= 0 {
		return val
	}
	switch align {
	case '>':
		return strings.Repeat(fill, pad) + val
	case '^':
		left := pad / 2
		return strings.Repeat(fill, left) + val + strings.Repeat(fill, pad-left)
	default:
		return val + strings.Repeat(fill, pad)
	}
}

func isAlign(r rune) bool {
	return r == '<' || r == '>' || r == '^'
}

// interpolateMessage applies positional args and named fields to the raw
// message text. {} placeholders auto-number, {2} indexes args, {key} reads
// fields. This runs once per log call and only when at least one sink's
// threshold is met.
func interpolateMessage(msg string, args []any, fields F) (string, error) {
	next := 0
	return expandBraces(msg, func(key string) (string, bool) {
		if key == "" {
			if next >= len(args) {
				return "", false
			}
			v := args[next]
			next++
			return fmt.Sprint(v), true
		}
		if idx, err := strconv.Atoi(key); err == nil && idx >= 0 {
			if idx >= len(args) {
				return "", false
			}
			return fmt.Sprint(args[idx]), true
		}
		if v, ok := fields[key]; ok {
			return fmt.Sprint(v), true
		}
		return "", false
	})
}

// formatRecord renders a sink's format against a record. The format is
// markup-scanned first and placeholders are substituted only inside the
// literal spans, so substituted values, the message included, are never
// interpreted as markup no matter what they contain.
func formatRecord(format string, rec *record, colorize bool) (string, error) {
	out, err := renderMarkup(format, rec.style, colorize, false, func(span string) (string, error) {
		return expandBraces(span, func(key string) (string, bool) {
			switch key {
			case "message":
				return rec.message, true
			case "level.name":
				return rec.level.Name, true
			case "level.no":
				return strconv.Itoa(rec.level.No), true
			case "level.icon":
				return rec.level.Icon, true
			}
			if v, ok := rec.fields[key]; ok {
				return fmt.Sprint(v), true
			}
			return "", false
		})
	})
	if err != nil {
		return "", err
	}
	return out + "\n", nil
}
