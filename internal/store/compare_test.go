package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareAppendsAtEnd(t *testing.T) {
	compare := NewCompareStore(NewMemoryStorage())

	compare.Toggle(tee)
	compare.Toggle(tee2)

	items := compare.Items()
	require.Len(t, items, 2)
	assert.Equal(t, tee.ID, items[0].ID)
	assert.Equal(t, tee2.ID, items[1].ID)
}

func TestCompareToggleRemovesExisting(t *testing.T) {
	compare := NewCompareStore(NewMemoryStorage())

	compare.Toggle(tee)
	compare.Toggle(tee2)
	compare.Toggle(tee)

	items := compare.Items()
	require.Len(t, items, 1)
	assert.Equal(t, tee2.ID, items[0].ID)
	assert.False(t, compare.Contains(tee.ID))
}

func TestCompareRemove(t *testing.T) {
	compare := NewCompareStore(NewMemoryStorage())
	compare.Toggle(tee)

	compare.Remove(tee.ID)
	assert.Empty(t, compare.Items())
}

func TestCompareMalformedStorageYieldsEmpty(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(context.Background(), CompareKey, "[[["))

	compare := NewCompareStore(storage)
	assert.Empty(t, compare.Items())
}

func TestNamespacedStorageIsolatesSessions(t *testing.T) {
	base := NewMemoryStorage()

	a := NewCompareStore(Namespaced(base, "sess:a:"))
	b := NewCompareStore(Namespaced(base, "sess:b:"))

	a.Toggle(tee)

	assert.True(t, a.Contains(tee.ID))
	assert.False(t, b.Contains(tee.ID))

	reloaded := NewCompareStore(Namespaced(base, "sess:a:"))
	assert.True(t, reloaded.Contains(tee.ID))
}
