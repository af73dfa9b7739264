package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ── ParsePath ────────────────────────────────────────────────────────────────

func TestParsePath(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Path
	}{
		{name: "empty string is root", raw: "", want: nil},
		{name: "single segment", raw: "devtools", want: Path{"devtools"}},
		{name: "nested path", raw: "log.level.console", want: Path{"log", "level", "console"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePath(tt.raw))
		})
	}
}

func TestPath_String_RoundTrip(t *testing.T) {
	assert.Equal(t, "update.channel", ParsePath("update.channel").String())
	assert.Equal(t, "", ParsePath("").String())
}

func TestPath_IsRoot(t *testing.T) {
	assert.True(t, ParsePath("").IsRoot())
	assert.False(t, ParsePath("ui").IsRoot())
}

// ── HasPrefix ────────────────────────────────────────────────────────────────

func TestPath_HasPrefix(t *testing.T) {
	path := ParsePath("log.level.console")

	assert.True(t, path.HasPrefix(nil), "root is a prefix of everything")
	assert.True(t, path.HasPrefix(ParsePath("log")))
	assert.True(t, path.HasPrefix(ParsePath("log.level")))
	assert.True(t, path.HasPrefix(ParsePath("log.level.console")))

	assert.False(t, path.HasPrefix(ParsePath("log.level.console.extra")))
	assert.False(t, path.HasPrefix(ParsePath("ui")))
	assert.False(t, path.HasPrefix(ParsePath("log.other")))
}
