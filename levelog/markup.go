package levelog

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Inline markup looks like <red>...</red>. Tokens are style names from
// styleCodes plus the aliases "level" and "lvl", which stand for the color of
// the level being rendered and close each other interchangeably. Tags nest
// with stack discipline: a closing tag must name the innermost open tag.
//
// Parsing has two independent axes. Strict mode fails on unknown tokens,
// mismatched closers and unterminated tags; lenient mode passes anything
// malformed through as literal text, which is what keeps tag-like substrings
// in substituted values from ever being interpreted. Rendering either emits
// escape sequences (colorize) or drops the recognized tags entirely (plain).

// scanTag reads the candidate tag starting at s[i], which must be '<'.
// It returns the token name, whether the tag is a closer, and the offset just
// past '>'. ok is false when the text does not form a tag at all.
func scanTag(s string, i int) (name string, closing bool, end int, ok bool) {
	j := i + 1
	if j < len(s) && s[j] == '/' {
		closing = true
		j++
	}
	k := j
	for k < len(s) && isTagChar(s[k]) {
		k++
	}
	if k == j || k >= len(s) || s[k] != '>' {
		return "", false, 0, false
	}
	return s[j:k], closing, k + 1, true
}

func isTagChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '-' || c == '_'
}

func isAlias(name string) bool {
	return name == "level" || name == "lvl"
}

// renderMarkup walks text once with an explicit open-tag stack, emitting
// escape sequences when colorize is set and nothing otherwise. levelStyle is
// the escape prefix substituted for the level alias; a blank prefix emits no
// opening sequence but the closing tag still emits a full reset.
//
// The literal callback transforms the text between tags before it is written
// out; its output is appended verbatim and never re-scanned. A nil callback
// passes text through unchanged.
func renderMarkup(text, levelStyle string, colorize, strict bool, literal func(string) (string, error)) (string, error) {
	var b strings.Builder
	var stack []string // open tag names, aliases normalized to "level"

	flush := func(chunk string) error {
		if literal == nil {
			b.WriteString(chunk)
			return nil
		}
		out, err := literal(chunk)
		if err != nil {
			return err
		}
		b.WriteString(out)
		return nil
	}

	start := 0 // first byte of the pending literal run
	i := 0
	for i < len(text) {
		if text[i] != '<' {
			i++
			continue
		}
		name, closing, end, ok := scanTag(text, i)
		if !ok {
			// Not tag-shaped, stays literal.
			i++
			continue
		}
		alias := isAlias(name)
		code, known := styleCodes[name]
		if !alias && !known {
			if strict {
				return "", &MarkupError{Tag: name, Pos: i, Reason: "unknown style tag"}
			}
			i = end
			continue
		}
		if !closing {
			if err := flush(text[start:i]); err != nil {
				return "", err
			}
			if alias {
				stack = append(stack, "level")
				if colorize {
					b.WriteString(levelStyle)
				}
			} else {
				stack = append(stack, name)
				if colorize {
					b.WriteString(code)
				}
			}
			start, i = end, end
			continue
		}
		top := ""
		if len(stack) > 0 {
			top = stack[len(stack)-1]
		}
		matched := top != "" && ((alias && top == "level") || (!alias && top == name))
		if !matched {
			if strict {
				return "", &MarkupError{Tag: name, Pos: i, Reason: "closing tag does not match any open tag"}
			}
			i = end
			continue
		}
		if err := flush(text[start:i]); err != nil {
			return "", err
		}
		stack = stack[:len(stack)-1]
		if colorize {
			b.WriteString(ansiReset)
		}
		start, i = end, end
	}
	if err := flush(text[start:]); err != nil {
		return "", err
	}
	if strict && len(stack) > 0 {
		return "", &MarkupError{Pos: len(text), Reason: "unterminated markup tags"}
	}
	return b.String(), nil
}

// CheckMarkup validates text strictly: every tag must name a known style or
// the level alias, closers must match innermost-first, and no tag may be left
// open. It returns a *MarkupError describing the first failure.
func CheckMarkup(text string) error {
	_, err := renderMarkup(text, "", false, true, nil)
	return err
}

// styleSequence validates a level color spec and returns its escape prefix.
// A color spec is a sequence of style tags such as "<blue><bold>"; unclosed
// tags are the normal case since the spec is a prefix, but unknown tokens,
// closers without a matching opener, the level alias, and stray non-blank
// text are all rejected. Whitespace-only specs yield an empty prefix.
func styleSequence(spec string) (string, error) {
	var b strings.Builder
	var stack []string
	for i := 0; i < len(spec); {
		if spec[i] == '<' {
			name, closing, end, ok := scanTag(spec, i)
			if !ok {
				return "", &MarkupError{Tag: "<", Pos: i, Reason: "malformed tag"}
			}
			code, known := styleCodes[name]
			if !known {
				return "", &MarkupError{Tag: name, Pos: i, Reason: "unknown style tag"}
			}
			if closing {
				if len(stack) == 0 || stack[len(stack)-1] != name {
					return "", &MarkupError{Tag: name, Pos: i, Reason: "closing tag without matching opener"}
				}
				stack = stack[:len(stack)-1]
				b.WriteString(ansiReset)
			} else {
				stack = append(stack, name)
				b.WriteString(code)
			}
			i = end
			continue
		}
		r, size := utf8.DecodeRuneInString(spec[i:])
		if !unicode.IsSpace(r) {
			return "", &MarkupError{Tag: string(r), Pos: i, Reason: "unexpected text in color markup"}
		}
		i += size
	}
	return b.String(), nil
}
