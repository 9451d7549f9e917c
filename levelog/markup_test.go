package levelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckMarkup_Valid(t *testing.T) {
	for _, text := range []string{
		"",
		"plain text",
		"<red>x</red>",
		"<red><bold>x</bold></red>",
		"<level>x</level>",
		"<level>x</lvl>",
		"<lvl>x</level>",
		"<LIGHT-BLUE>x</LIGHT-BLUE>",
		"not <a tag",
		"1 < 2 > 3",
		"half <notatag",
	} {
		assert.NoError(t, CheckMarkup(text), "text %q", text)
	}
}

func TestCheckMarkup_Invalid(t *testing.T) {
	cases := map[string]string{
		"<foo>x</foo>":              "unknown style tag",
		"</red>":                    "closing tag does not match any open tag",
		"<red>x</bold>":             "closing tag does not match any open tag",
		"<red>x":                    "unterminated markup tags",
		"<red><bold></red>x</bold>": "closing tag does not match any open tag",
		"<level>x":                  "unterminated markup tags",
	}
	for text, reason := range cases {
		err := CheckMarkup(text)
		require.Error(t, err, "text %q", text)
		var merr *MarkupError
		require.ErrorAs(t, err, &merr, "text %q", text)
		assert.Equal(t, reason, merr.Reason, "text %q", text)
	}
}

func TestRenderMarkup_Colorize(t *testing.T) {
	cases := []struct {
		text, levelStyle, want string
	}{
		{"<red>x</red>", "", "\x1b[31mx\x1b[0m"},
		{"a<bold>b</bold>c", "", "a\x1b[1mb\x1b[0mc"},
		// every close is a full reset, never a restore of the outer style
		{"<red>a<bold>b</bold>c</red>", "", "\x1b[31ma\x1b[1mb\x1b[0mc\x1b[0m"},
		{"<level>x</level>", "\x1b[34m", "\x1b[34mx\x1b[0m"},
		{"<lvl>x</level>", "\x1b[34m", "\x1b[34mx\x1b[0m"},
		// blank level color: no opening sequence, closing reset stays
		{"<level>x</level>", "", "x\x1b[0m"},
		{"<RED>bg</RED>", "", "\x1b[41mbg\x1b[0m"},
	}
	for _, c := range cases {
		got, err := renderMarkup(c.text, c.levelStyle, true, false, nil)
		require.NoError(t, err, "text %q", c.text)
		assert.Equal(t, c.want, got, "text %q", c.text)
	}
}

func TestRenderMarkup_Plain(t *testing.T) {
	cases := map[string]string{
		"<red>x</red>":                "x",
		"<red>a<bold>b</bold>c</red>": "abc",
		"<level>x</level>":            "x",
		// unknown tags are literal text in lenient mode
		"<html>x</html>": "<html>x</html>",
		"a < b":          "a < b",
	}
	for text, want := range cases {
		got, err := renderMarkup(text, "", false, false, nil)
		require.NoError(t, err)
		assert.Equal(t, want, got, "text %q", text)
	}
}

func TestRenderMarkup_LenientMismatch(t *testing.T) {
	// A recognized closer with no matching opener stays literal.
	got, err := renderMarkup("x</red>y", "", true, false, nil)
	require.NoError(t, err)
	assert.Equal(t, "x</red>y", got)

	// Mismatched closer stays literal, the open tag's code was emitted.
	got, err = renderMarkup("<red>x</bold>", "", true, false, nil)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[31mx</bold>", got)
}

func TestStyleSequence(t *testing.T) {
	got, err := styleSequence("<blue><bold>")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[34m\x1b[1m", got)

	got, err = styleSequence(" ")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = styleSequence("")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = styleSequence("<red></red>")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[31m\x1b[0m", got)
}

func TestStyleSequence_Invalid(t *testing.T) {
	for _, spec := range []string{
		"<foo>",
		"</red>",
		"red",
		"<red> extra",
		"<level>", // self-referential alias is meaningless in a color spec
		"<lvl>",
	} {
		_, err := styleSequence(spec)
		require.Error(t, err, "spec %q", spec)
		var merr *MarkupError
		assert.ErrorAs(t, err, &merr, "spec %q", spec)
	}
}
