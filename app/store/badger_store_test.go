package store

import (
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBadgerStore(t *testing.T) *BadgerStore {
	s, err := NewBadgerStoreInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBadgerStore(t *testing.T) {
	s := setupBadgerStore(t)

	t.Run("load on a fresh database returns empty collection", func(t *testing.T) {
		posts, err := s.Load()
		assert.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})

	t.Run("save then load round-trips the collection", func(t *testing.T) {
		want := testPosts()
		require.NoError(t, s.Save(want))

		got, err := s.Load()
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("save preserves insertion order", func(t *testing.T) {
		want := testPosts()
		// IDs out of byte order on purpose.
		want[0].ID = 10
		want[1].ID = 2
		require.NoError(t, s.Save(want))

		got, err := s.Load()
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 10, got[0].ID)
		assert.Equal(t, 2, got[1].ID)
	})

	t.Run("save overwrites the previous collection", func(t *testing.T) {
		require.NoError(t, s.Save(testPosts()))
		require.NoError(t, s.Save(nil))

		got, err := s.Load()
		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestBadgerStoreCorruptData(t *testing.T) {
	s := setupBadgerStore(t)

	require.NoError(t, s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(postsKey), []byte("{not json"))
	}))

	posts, err := s.Load()
	assert.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestBadgerStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "badger")

	s, err := NewBadgerStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Save(testPosts()))
	require.NoError(t, s.Close())

	s, err = NewBadgerStore(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	got, err := s.Load()
	assert.NoError(t, err)
	assert.Equal(t, testPosts(), got)
}
