package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vperelygin/go-conf-sync/models"
)

// ── Resolve ──────────────────────────────────────────────────────────────────

func TestResolve_NoOverride_ReturnsStored(t *testing.T) {
	stored := models.Tree{"channel": "latest"}

	got := Resolve(stored, models.Tree{}, models.ParsePath("update"))

	assert.Equal(t, stored, got)
}

func TestResolve_ScalarOverrideWins(t *testing.T) {
	overrides := models.Tree{"update": models.Tree{"channel": "beta"}}

	got := Resolve("latest", overrides, models.ParsePath("update.channel"))

	assert.Equal(t, "beta", got)
}

func TestResolve_FalsyOverridesStillWin(t *testing.T) {
	overrides := models.Tree{
		"devtools": false,
		"ui":       models.Tree{"width": float64(0), "title": ""},
	}

	assert.Equal(t, false, Resolve(true, overrides, models.ParsePath("devtools")))
	assert.Equal(t, float64(0), Resolve(float64(800), overrides, models.ParsePath("ui.width")))
	assert.Equal(t, "", Resolve("app", overrides, models.ParsePath("ui.title")))
}

func TestResolve_ScalarOverrideReplacesObject(t *testing.T) {
	stored := models.Tree{"console": "info", "file": "debug"}
	overrides := models.Tree{"log": models.Tree{"level": "error"}}

	got := Resolve(stored, overrides, models.ParsePath("log.level"))

	assert.Equal(t, "error", got, "a scalar override replaces the whole stored subtree")
}

func TestResolve_ObjectsMergeRecursively(t *testing.T) {
	stored := models.Tree{
		"level": models.Tree{"console": "info", "file": "debug"},
		"other": true,
	}
	overrides := models.Tree{
		"log": models.Tree{"level": models.Tree{"console": "error"}},
	}

	got := Resolve(stored, overrides, models.ParsePath("log"))

	assert.Equal(t, models.Tree{
		"level": models.Tree{"console": "error", "file": "debug"},
		"other": true,
	}, got)
}

func TestResolve_IsPure(t *testing.T) {
	stored := models.Tree{"level": models.Tree{"console": "info"}}
	overrides := models.Tree{"log": models.Tree{"level": models.Tree{"console": "error"}}}

	got := Resolve(stored, overrides, models.ParsePath("log"))

	merged, ok := got.(models.Tree)
	require.True(t, ok)
	merged["level"].(models.Tree)["console"] = "mutated"

	assert.Equal(t, "info", stored["level"].(models.Tree)["console"])
	assert.Equal(t, "error", overrides["log"].(models.Tree)["level"].(models.Tree)["console"])
}

// ── MergeTrees ───────────────────────────────────────────────────────────────

func TestMergeTrees_LayerWinsKeepsBaseOnlyKeys(t *testing.T) {
	base := models.Tree{"a": "base", "keep": true}
	layer := models.Tree{"a": "layer", "extra": float64(1)}

	got := MergeTrees(base, layer)

	assert.Equal(t, models.Tree{"a": "layer", "keep": true, "extra": float64(1)}, got)
}

// ── HasOverride ──────────────────────────────────────────────────────────────

func TestHasOverride(t *testing.T) {
	overrides := models.Tree{
		"devtools": true,
		"log":      models.Tree{"level": models.Tree{"console": "error"}},
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "exact scalar", path: "devtools", want: true},
		{name: "exact nested", path: "log.level.console", want: true},
		{name: "subtree node", path: "log.level", want: true},
		{name: "descendant of scalar is covered", path: "devtools.enabled", want: true},
		{name: "untouched path", path: "update.channel", want: false},
		{name: "sibling of override", path: "log.level.file", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasOverride(overrides, models.ParsePath(tt.path)))
		})
	}
}

func TestHasOverride_Root(t *testing.T) {
	assert.False(t, HasOverride(models.Tree{}, nil))
	assert.True(t, HasOverride(models.Tree{"devtools": true}, nil))
}

// ── Lookup ───────────────────────────────────────────────────────────────────

func TestLookup(t *testing.T) {
	tree := models.Tree{"ui": models.Tree{"width": float64(1024)}}

	value, ok := Lookup(tree, models.ParsePath("ui.width"))
	require.True(t, ok)
	assert.Equal(t, float64(1024), value)

	_, ok = Lookup(tree, models.ParsePath("ui.height"))
	assert.False(t, ok)

	_, ok = Lookup(tree, models.ParsePath("ui.width.nested"))
	assert.False(t, ok, "descending through a scalar finds nothing")

	root, ok := Lookup(tree, nil)
	require.True(t, ok)
	assert.Equal(t, tree, root)
}
