package overrides

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vperelygin/go-conf-sync/models"
)

func TestSource_ParsesLazily(t *testing.T) {
	var calls atomic.Int32

	source := NewSource([]string{"--devtools"}, nil)
	source.parse = func(args, environ []string) models.Tree {
		calls.Add(1)
		return Parse(args, environ)
	}

	assert.Equal(t, int32(0), calls.Load(), "construction must not parse")

	tree := source.Tree()
	require.Equal(t, models.Tree{"devtools": true}, tree)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSource_ConcurrentFirstUseParsesOnce(t *testing.T) {
	var calls atomic.Int32

	source := NewSource([]string{"--update.channel=beta"}, nil)
	source.parse = func(args, environ []string) models.Tree {
		calls.Add(1)
		return Parse(args, environ)
	}

	const goroutines = 16
	var wg sync.WaitGroup
	results := make([]models.Tree, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = source.Tree()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "inputs must be parsed exactly once")
	for _, tree := range results {
		assert.Equal(t, models.Tree{"update": models.Tree{"channel": "beta"}}, tree)
	}
}
