package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vperelygin/go-conf-sync/internal/logger"
	"github.com/vperelygin/go-conf-sync/models"
)

// failingBackend wraps another backend and fails every Save once armed.
type failingBackend struct {
	DocumentBackend
	fail bool
}

func (f *failingBackend) Save(ctx context.Context, doc models.Tree) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.DocumentBackend.Save(ctx, doc)
}

func newTestStore(t *testing.T) (*Store, DocumentBackend) {
	t.Helper()
	backend := NewMemoryBackend()
	return New(context.Background(), backend, logger.Nop()), backend
}

// ── construction and seeding ─────────────────────────────────────────────────

func TestNew_SeedsDefaultsOnFirstRun(t *testing.T) {
	s, backend := newTestStore(t)

	assert.Equal(t, "latest", s.Get(models.ParsePath("update.channel")))

	persisted, err := backend.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, persisted, "defaults must be written back on first run")
}

func TestNew_InstallationValuesSurviveRestart(t *testing.T) {
	backend := NewMemoryBackend()
	ctx := context.Background()

	first := New(ctx, backend, logger.Nop())
	appID := first.Get(models.ParsePath("analytics.appId"))
	require.NotEmpty(t, appID)

	second := New(ctx, backend, logger.Nop())
	assert.Equal(t, appID, second.Get(models.ParsePath("analytics.appId")))
}

func TestNew_CorruptDocumentFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := New(context.Background(), NewFileBackend(path, logger.Nop()), logger.Nop())

	assert.Equal(t, "latest", s.Get(models.ParsePath("update.channel")))
}

func TestNew_LoadedValuesLayerOverDefaults(t *testing.T) {
	backend := NewMemoryBackend()
	ctx := context.Background()
	require.NoError(t, backend.Save(ctx, models.Tree{
		"update": models.Tree{"channel": "beta"},
	}))

	s := New(ctx, backend, logger.Nop())

	assert.Equal(t, "beta", s.Get(models.ParsePath("update.channel")))
	assert.Equal(t, false, s.Get(models.ParsePath("devtools")), "unwritten defaults stay addressable")
}

// ── Get / Document ───────────────────────────────────────────────────────────

func TestStore_Get_UnknownPathYieldsNil(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Nil(t, s.Get(models.ParsePath("no.such.path")))
}

func TestStore_Get_HandsOutCopies(t *testing.T) {
	s, _ := newTestStore(t)

	subtree, ok := s.Get(models.ParsePath("update")).(models.Tree)
	require.True(t, ok)
	subtree["channel"] = "mutated"

	assert.Equal(t, "latest", s.Get(models.ParsePath("update.channel")))
}

// ── Set ──────────────────────────────────────────────────────────────────────

func TestStore_Set_RejectsRootWrite(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.Set(context.Background(), nil, models.Tree{})

	assert.ErrorIs(t, err, ErrRootWrite)
}

func TestStore_Set_PersistsBeforeSubscribersFire(t *testing.T) {
	s, backend := newTestStore(t)
	ctx := context.Background()

	var persistedAtFire any
	s.OnChange(models.ParsePath("update.channel"), func(_, _ any) {
		doc, err := backend.Load(ctx)
		require.NoError(t, err)
		persistedAtFire = doc["update"].(models.Tree)["channel"]
	})

	require.NoError(t, s.Set(ctx, models.ParsePath("update.channel"), "beta"))

	assert.Equal(t, "beta", persistedAtFire, "the write must be durable before handlers run")
}

func TestStore_Set_EqualRewriteFiresAgain(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	var calls int
	s.OnChange(models.ParsePath("devtools"), func(_, _ any) { calls++ })

	require.NoError(t, s.Set(ctx, models.ParsePath("devtools"), true))
	require.NoError(t, s.Set(ctx, models.ParsePath("devtools"), true))

	assert.Equal(t, 2, calls, "subscriptions are not deduplicated on equal values")
}

func TestStore_Set_SubscriberMatchingAndOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	var fired []string
	record := func(name string) ChangeHandler {
		return func(_, _ any) { fired = append(fired, name) }
	}

	s.OnChange(models.ParsePath("log.level"), record("log.level"))
	s.OnChange(models.ParsePath("ui"), record("ui"))
	s.OnChange(models.ParsePath("log.level.console"), record("log.level.console"))
	s.OnChange(models.ParsePath("log"), record("log"))

	require.NoError(t, s.Set(ctx, models.ParsePath("log.level.console"), "warn"))

	assert.Equal(t, []string{"log.level", "log.level.console", "log"}, fired,
		"ancestors and exact matches fire in registration order, unrelated paths do not")
}

func TestStore_Set_DescendantSubscriberSeesAncestorWrite(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	var gotNew, gotOld any
	s.OnChange(models.ParsePath("log.level.console"), func(newValue, oldValue any) {
		gotNew, gotOld = newValue, oldValue
	})

	require.NoError(t, s.Set(ctx, models.ParsePath("log"), models.Tree{
		"level": models.Tree{"console": "error"},
	}))

	assert.Equal(t, "error", gotNew)
	assert.Equal(t, "info", gotOld)
}

func TestStore_Set_SubscriberValuesAreCopies(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.OnChange(models.ParsePath("log.level"), func(newValue, _ any) {
		if subtree, ok := newValue.(models.Tree); ok {
			subtree["console"] = "mutated"
		}
	})

	require.NoError(t, s.Set(ctx, models.ParsePath("log.level.console"), "warn"))

	assert.Equal(t, "warn", s.Get(models.ParsePath("log.level.console")))
}

func TestStore_Set_RollsBackOnPersistFailure(t *testing.T) {
	backend := &failingBackend{DocumentBackend: NewMemoryBackend()}
	ctx := context.Background()
	s := New(ctx, backend, logger.Nop())

	var fired bool
	s.OnChange(models.ParsePath("update.channel"), func(_, _ any) { fired = true })

	backend.fail = true
	err := s.Set(ctx, models.ParsePath("update.channel"), "beta")

	require.Error(t, err)
	assert.Equal(t, "latest", s.Get(models.ParsePath("update.channel")), "in-memory document must roll back")
	assert.False(t, fired, "no subscription fires for a failed write")
}
