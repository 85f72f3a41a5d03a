package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesToggleTwiceReturnsToEmpty(t *testing.T) {
	favorites := NewFavoritesStore(NewMemoryStorage())

	favorites.Toggle(tee, "")
	assert.True(t, favorites.Contains(tee.ID))

	favorites.Toggle(tee, "")
	assert.False(t, favorites.Contains(tee.ID))
	assert.Empty(t, favorites.Items())
}

func TestFavoritesNewestFirst(t *testing.T) {
	favorites := NewFavoritesStore(NewMemoryStorage())

	favorites.Toggle(tee, "")
	favorites.Toggle(tee2, "M")

	items := favorites.Items()
	require.Len(t, items, 2)
	assert.Equal(t, tee2.ID, items[0].ID)
	assert.Equal(t, "M", items[0].Size)
	assert.Equal(t, tee.ID, items[1].ID)
}

func TestFavoritesSetSizeKeepsPosition(t *testing.T) {
	favorites := NewFavoritesStore(NewMemoryStorage())
	favorites.Toggle(tee, "")
	favorites.Toggle(tee2, "")

	favorites.SetSize(tee.ID, "XL")

	items := favorites.Items()
	require.Len(t, items, 2)
	assert.Equal(t, tee2.ID, items[0].ID) // position inchangée
	assert.Equal(t, "XL", items[1].Size)
}

func TestFavoritesSetSizeAbsentIsNoop(t *testing.T) {
	favorites := NewFavoritesStore(NewMemoryStorage())
	favorites.Toggle(tee, "")

	favorites.SetSize(999, "XL")

	items := favorites.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "", items[0].Size)
}

func TestFavoritesRemove(t *testing.T) {
	favorites := NewFavoritesStore(NewMemoryStorage())
	favorites.Toggle(tee, "")
	favorites.Toggle(tee2, "")

	favorites.Remove(tee.ID)

	items := favorites.Items()
	require.Len(t, items, 1)
	assert.Equal(t, tee2.ID, items[0].ID)
}

func TestFavoritesMalformedStorageYieldsEmpty(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(context.Background(), FavoritesKey, `{"corrompu`))

	favorites := NewFavoritesStore(storage)
	assert.Empty(t, favorites.Items())
}

func TestFavoritesPersistedAcrossReload(t *testing.T) {
	storage := NewMemoryStorage()
	NewFavoritesStore(storage).Toggle(tee, "M")

	reloaded := NewFavoritesStore(storage)
	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "M", items[0].Size)
}
