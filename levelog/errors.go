package levelog

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors returned (possibly wrapped with context) by registry and
// sink operations. Match them with errors.Is.
var (
	// ErrInvalidLevel reports a malformed level name, severity, color spec,
	// or an identifier that is neither a name nor a non-negative integer.
	ErrInvalidLevel = errors.New("invalid level")

	// ErrUnknownLevel reports a level name that was never registered.
	ErrUnknownLevel = errors.New("unknown level")

	// ErrUnknownSink reports a sink id that is not currently active.
	ErrUnknownSink = errors.New("unknown sink")
)

// MarkupError reports a strict-mode markup parse failure: an unknown style
// tag, a closing tag that does not match the innermost open tag, or input
// ending while tags are still open.
type MarkupError struct {
	Tag    string // offending tag text, empty for unterminated input
	Pos    int    // byte offset of the failure
	Reason string
}

func (e *MarkupError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("markup: %s at offset %d", e.Reason, e.Pos)
	}
	return fmt.Sprintf("markup: %s at offset %d: %q", e.Reason, e.Pos, e.Tag)
}

// InterpolationError reports a message or format placeholder whose
// substitution key was not supplied with the log call. It is raised only
// while rendering for a sink that will actually emit.
type InterpolationError struct {
	Key string
}

func (e *InterpolationError) Error() string {
	return fmt.Sprintf("substitution key %q was not supplied", e.Key)
}
