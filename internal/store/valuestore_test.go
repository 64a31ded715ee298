package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/readconfig/internal/store"
)

func setupBadger(t *testing.T) store.ValueStore {
	t.Helper()
	s, err := store.OpenBadger(filepath.Join(t.TempDir(), "db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func setupMemory(t *testing.T) store.ValueStore {
	t.Helper()
	return store.NewMemory()
}

var backends = map[string]func(t *testing.T) store.ValueStore{
	"badger": setupBadger,
	"memory": setupMemory,
}

func TestValueStore_RoundTrip(t *testing.T) {
	for name, setup := range backends {
		t.Run(name, func(t *testing.T) {
			s := setup(t)
			ctx := context.Background()

			require.NoError(t, s.Set(ctx, store.KeyFontSize, 22))
			require.NoError(t, s.Set(ctx, store.KeyLineSpacing, 12.5))
			require.NoError(t, s.Set(ctx, store.KeyPageType, "slide"))

			var fontSize int
			require.NoError(t, s.Get(ctx, store.KeyFontSize, &fontSize))
			assert.Equal(t, 22, fontSize)

			var spacing float64
			require.NoError(t, s.Get(ctx, store.KeyLineSpacing, &spacing))
			assert.Equal(t, 12.5, spacing)

			var pageType string
			require.NoError(t, s.Get(ctx, store.KeyPageType, &pageType))
			assert.Equal(t, "slide", pageType)
		})
	}
}

func TestValueStore_Overwrite(t *testing.T) {
	for name, setup := range backends {
		t.Run(name, func(t *testing.T) {
			s := setup(t)
			ctx := context.Background()

			require.NoError(t, s.Set(ctx, store.KeyAutoReadSpeed, 3))
			require.NoError(t, s.Set(ctx, store.KeyAutoReadSpeed, 9))

			var speed int
			require.NoError(t, s.Get(ctx, store.KeyAutoReadSpeed, &speed))
			assert.Equal(t, 9, speed)
		})
	}
}

func TestValueStore_MissingKey(t *testing.T) {
	for name, setup := range backends {
		t.Run(name, func(t *testing.T) {
			s := setup(t)

			var v int
			err := s.Get(context.Background(), store.KeyDarkColorIndex, &v)
			assert.ErrorIs(t, err, store.ErrNotFound)
		})
	}
}

func TestValueStore_TypeMismatchIsCorrupt(t *testing.T) {
	for name, setup := range backends {
		t.Run(name, func(t *testing.T) {
			s := setup(t)
			ctx := context.Background()

			require.NoError(t, s.Set(ctx, store.KeyFontSize, "large"))

			var v int
			err := s.Get(ctx, store.KeyFontSize, &v)
			assert.ErrorIs(t, err, store.ErrCorrupt)
		})
	}
}

func TestValueStore_CanceledContext(t *testing.T) {
	for name, setup := range backends {
		t.Run(name, func(t *testing.T) {
			s := setup(t)
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			assert.ErrorIs(t, s.Set(ctx, store.KeyFontSize, 1), context.Canceled)
		})
	}
}

func TestBadger_PersistsAcrossReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")
	ctx := context.Background()

	s, err := store.OpenBadger(dir, nil)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, store.KeyFontSize, 18))
	require.NoError(t, s.Close())

	reopened, err := store.OpenBadger(dir, nil)
	require.NoError(t, err)
	defer reopened.Close()

	var fontSize int
	require.NoError(t, reopened.Get(ctx, store.KeyFontSize, &fontSize))
	assert.Equal(t, 18, fontSize)
}

func TestMemory_ClosedRejects(t *testing.T) {
	m := store.NewMemory()
	require.NoError(t, m.Close())

	var v int
	assert.ErrorIs(t, m.Get(context.Background(), store.KeyFontSize, &v), store.ErrClosed)
	assert.ErrorIs(t, m.Set(context.Background(), store.KeyFontSize, 1), store.ErrClosed)
}

func TestPersistedKeys_ExcludesAutoRead(t *testing.T) {
	keys := store.PersistedKeys()

	assert.Len(t, keys, 8)
	for _, k := range keys {
		assert.NotContains(t, k, "is_auto_read")
	}
}
