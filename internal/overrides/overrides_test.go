package overrides

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vperelygin/go-conf-sync/models"
)

// ── environment entries ──────────────────────────────────────────────────────

func TestParse_Environment(t *testing.T) {
	environ := []string{
		"OT_APP_UPDATE__CHANNEL=beta",
		"OT_APP_ANALYTICS__OPTED_IN=false",
		"OT_APP_UI__WIDTH=800",
		"HOME=/home/user",
	}

	tree := Parse(nil, environ)

	assert.Equal(t, models.Tree{
		"update":    models.Tree{"channel": "beta"},
		"analytics": models.Tree{"optedIn": false},
		"ui":        models.Tree{"width": float64(800)},
	}, tree)
}

func TestParse_Environment_SkipsMalformedKeys(t *testing.T) {
	environ := []string{
		"OT_APP_=dangling",
		"OT_APP_A____B=double-empty-segment",
		"NOT_PREFIXED=x",
	}

	tree := Parse(nil, environ)

	assert.Empty(t, tree)
}

// ── command-line arguments ───────────────────────────────────────────────────

func TestParse_Flags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want models.Tree
	}{
		{
			name: "equals form",
			args: []string{"--log.level.console=debug"},
			want: models.Tree{"log": models.Tree{"level": models.Tree{"console": "debug"}}},
		},
		{
			name: "space-separated value",
			args: []string{"--ui.width", "800"},
			want: models.Tree{"ui": models.Tree{"width": float64(800)}},
		},
		{
			name: "bare flag means true",
			args: []string{"--devtools"},
			want: models.Tree{"devtools": true},
		},
		{
			name: "disable prefix means false",
			args: []string{"--disable_devtools"},
			want: models.Tree{"devtools": false},
		},
		{
			name: "non-json values stay strings",
			args: []string{"--update.channel=alpha"},
			want: models.Tree{"update": models.Tree{"channel": "alpha"}},
		},
		{
			name: "bare flag does not consume a following flag",
			args: []string{"--devtools", "--discovery.disableCache"},
			want: models.Tree{"devtools": true, "discovery": models.Tree{"disableCache": true}},
		},
		{
			name: "malformed tokens are skipped",
			args: []string{"--", "--=5", "--a..b=1", "plain"},
			want: models.Tree{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.args, nil))
		})
	}
}

func TestParse_FlagWinsOverEnvironment(t *testing.T) {
	environ := []string{"OT_APP_UPDATE__CHANNEL=beta"}
	args := []string{"--update.channel=alpha"}

	tree := Parse(args, environ)

	assert.Equal(t, models.Tree{"update": models.Tree{"channel": "alpha"}}, tree)
}

func TestParse_IsPure(t *testing.T) {
	args := []string{"--devtools"}
	environ := []string{"OT_APP_UI__WIDTH=800"}

	assert.Equal(t, Parse(args, environ), Parse(args, environ))
}
