package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUpdateAction(t *testing.T) {
	t.Run("decodes socket payload", func(t *testing.T) {
		payload, err := DecodeUpdateAction(map[string]any{
			"path":  "update.channel",
			"value": "beta",
		})
		require.NoError(t, err)

		assert.Equal(t, UpdateAction{Path: "update.channel", Value: "beta"}, payload)
	})

	t.Run("normalizes numeric values", func(t *testing.T) {
		payload, err := DecodeUpdateAction(map[string]any{"path": "ui.width", "value": 800})
		require.NoError(t, err)

		assert.Equal(t, float64(800), payload.Value)
	})

	t.Run("rejects non-object bodies", func(t *testing.T) {
		_, err := DecodeUpdateAction("not an object")
		assert.Error(t, err)
	})
}
