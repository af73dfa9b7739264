package overrides

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantFlags     []string
		wantOverrides []string
	}{
		{
			name:          "single-dash flags stay with the flag parser",
			args:          []string{"-a", "localhost:34800", "-d", "postgres://x"},
			wantFlags:     []string{"-a", "localhost:34800", "-d", "postgres://x"},
			wantOverrides: nil,
		},
		{
			name:          "double-dash tokens go to the override parser",
			args:          []string{"--devtools", "--ui.width=800"},
			wantFlags:     nil,
			wantOverrides: []string{"--devtools", "--ui.width=800"},
		},
		{
			name:          "bare override consumes its value",
			args:          []string{"--ui.width", "800", "-a", "addr"},
			wantFlags:     []string{"-a", "addr"},
			wantOverrides: []string{"--ui.width", "800"},
		},
		{
			name:          "mixed order preserved per bucket",
			args:          []string{"-a", "addr", "--devtools", "-c", "cfg.json"},
			wantFlags:     []string{"-a", "addr", "-c", "cfg.json"},
			wantOverrides: []string{"--devtools"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, overrides := SplitArgs(tt.args)
			assert.Equal(t, tt.wantFlags, flags)
			assert.Equal(t, tt.wantOverrides, overrides)
		})
	}
}
