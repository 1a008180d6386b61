package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLStore {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "nested", "records.db"), Options{CacheSize: 8})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAddRecordIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.AddRecord(ctx, "0123456789abcdef0123456789abcdef.png", "github"))
	require.NoError(t, s.AddRecord(ctx, "0123456789abcdef0123456789abcdef.png", "github"))
	require.NoError(t, s.AddRecord(ctx, "fedcba9876543210fedcba9876543210.jpg", "github"))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestHasRecord(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	ok, err := s.HasRecord(ctx, "missing.png")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.AddRecord(ctx, "a.png", "github"))

	ok, err = s.HasRecord(ctx, "a.png")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHasRecordFallsBackToDatabase(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.AddRecord(ctx, "a.png", "github"))
	s.cache.Clear()

	ok, err := s.HasRecord(ctx, "a.png")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, s.cache.Has("a.png"))
}

func TestRecordsFilter(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.AddRecord(ctx, "a.png", "github"))
	require.NoError(t, s.AddRecord(ctx, "b.png", "other"))
	require.NoError(t, s.AddRecord(ctx, "c.png", "github"))

	all, err := s.Records(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	gh, err := s.Records(ctx, "github")
	require.NoError(t, err)
	require.Len(t, gh, 2)
	for _, r := range gh {
		assert.Equal(t, "github", r.UploadWay)
	}
}

func TestReopenKeepsRecords(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "records.db")

	s, err := Open(path, Options{})
	require.NoError(t, err)
	require.NoError(t, s.AddRecord(ctx, "a.png", "github"))
	require.NoError(t, s.Close())

	s, err = Open(path, Options{})
	require.NoError(t, err)
	defer s.Close()

	ok, err := s.HasRecord(ctx, "a.png")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLRUCacheEvicts(t *testing.T) {
	c, err := NewLRUCache(2)
	require.NoError(t, err)

	c.Add("a")
	c.Add("b")
	c.Add("c")

	assert.False(t, c.Has("a"))
	assert.True(t, c.Has("b"))
	assert.True(t, c.Has("c"))

	c.Clear()
	assert.False(t, c.Has("b"))
	assert.False(t, c.Has("c"))
}
