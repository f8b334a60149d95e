package placement

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chromeless/internal/chrome"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "placement.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := Record{
		Role:      "main",
		Bounds:    chrome.Bounds{X: 100, Y: 100, Width: 800, Height: 600},
		Maximized: false,
	}
	require.NoError(t, s.Save(ctx, rec))

	got, err := s.Load(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, rec.Bounds, got.Bounds)
	assert.False(t, got.Maximized)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestSaveUpsertsExistingRole(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := Record{Role: "main", Bounds: chrome.Bounds{X: 0, Y: 0, Width: 640, Height: 480}}
	require.NoError(t, s.Save(ctx, first))

	second := Record{Role: "main", Bounds: chrome.Bounds{X: 50, Y: 60, Width: 1024, Height: 768}, Maximized: true}
	require.NoError(t, s.Save(ctx, second))

	got, err := s.Load(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, second.Bounds, got.Bounds)
	assert.True(t, got.Maximized)
}

func TestLoadUnknownRole(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveRejectsEmptyBounds(t *testing.T) {
	s := openTestStore(t)

	err := s.Save(context.Background(), Record{Role: "main"})
	assert.Error(t, err)

	err = s.Save(context.Background(), Record{Bounds: chrome.Bounds{Width: 10, Height: 10}})
	assert.Error(t, err, "empty role must be rejected")
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, Record{Role: "main", Bounds: chrome.Bounds{Width: 10, Height: 10}}))
	require.NoError(t, s.Delete(ctx, "main"))
	require.NoError(t, s.Delete(ctx, "main"))

	_, err := s.Load(ctx, "main")
	assert.ErrorIs(t, err, ErrNotFound)
}
