package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibe_shop_back_end/internal/models"
)

var tee = models.Product{
	ID:    1,
	Name:  "Футболка 1",
	Price: 2990,
	Image: "/images/tees/images/1_1.jpg",
}

var tee2 = models.Product{
	ID:    2,
	Name:  "Футболка 2",
	Price: 3090,
	Image: "/images/tees/images/2_1.jpg",
}

func TestCartAddSameKeyIncrementsQty(t *testing.T) {
	cart := NewCartStore(NewMemoryStorage())

	cart.AddItem(tee, "M")
	cart.AddItem(tee, "M")

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Qty)
	assert.Equal(t, "Футболка 1", items[0].Name)
	assert.Equal(t, float64(2990), items[0].Price)
}

func TestCartDifferentSizesAreDistinctItems(t *testing.T) {
	cart := NewCartStore(NewMemoryStorage())

	cart.AddItem(tee, "M")
	cart.AddItem(tee, "L")
	cart.AddItem(tee, "")

	items := cart.Items()
	require.Len(t, items, 3)
	for _, it := range items {
		assert.Equal(t, 1, it.Qty)
	}
}

func TestCartRemoveMatchesExactIdentityKey(t *testing.T) {
	cart := NewCartStore(NewMemoryStorage())

	cart.AddItem(tee, "M")
	cart.AddItem(tee, "L")
	cart.RemoveItem(tee.ID, "M")

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "L", items[0].Size)
}

func TestCartClear(t *testing.T) {
	cart := NewCartStore(NewMemoryStorage())
	cart.AddItem(tee, "")
	cart.Clear()
	assert.Empty(t, cart.Items())
}

func TestCartPersistsEveryMutation(t *testing.T) {
	storage := NewMemoryStorage()
	cart := NewCartStore(storage)

	cart.AddItem(tee, "M")

	data, err := storage.Get(context.Background(), CartKey)
	require.NoError(t, err)

	var mirrored []models.CartItem
	require.NoError(t, json.Unmarshal([]byte(data), &mirrored))
	assert.Equal(t, cart.Items(), mirrored)
}

func TestCartReloadsFromStorage(t *testing.T) {
	storage := NewMemoryStorage()
	NewCartStore(storage).AddItem(tee, "M")

	reloaded := NewCartStore(storage)
	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, tee.ID, items[0].ID)
}

func TestCartMalformedStorageYieldsEmptyCart(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(context.Background(), CartKey, "{pas du json"))

	cart := NewCartStore(storage)
	assert.Empty(t, cart.Items())
}

func TestCartMergeOnLogin(t *testing.T) {
	storage := NewMemoryStorage()

	// Panier persisté de alice : id1 qty2, id2 qty1
	stored, _ := json.Marshal([]models.CartItem{
		{ID: 1, Qty: 2, Name: tee.Name, Price: tee.Price},
		{ID: 2, Qty: 1, Name: tee2.Name, Price: tee2.Price},
	})
	require.NoError(t, storage.Set(context.Background(), CartKeyPrefix+"alice", string(stored)))

	// Panier anonyme : id1 qty1
	cart := NewCartStore(storage)
	cart.AddItem(tee, "")

	cart.MergeOnLogin("alice")

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 3, items[0].Qty) // quantités additionnées
	assert.Equal(t, 2, items[1].ID)
	assert.Equal(t, 1, items[1].Qty)

	// La persistance bascule sur la clé utilisateur et écrit tout de suite.
	assert.Equal(t, CartKeyPrefix+"alice", cart.ActiveKey())
	data, err := storage.Get(context.Background(), CartKeyPrefix+"alice")
	require.NoError(t, err)
	var mirrored []models.CartItem
	require.NoError(t, json.Unmarshal([]byte(data), &mirrored))
	assert.Equal(t, items, mirrored)
}

func TestCartMergeOnLoginNoStoredCart(t *testing.T) {
	cart := NewCartStore(NewMemoryStorage())
	cart.AddItem(tee, "M")

	cart.MergeOnLogin("bob")

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Qty)
}

func TestCartMergeOnLogoutKeepsItems(t *testing.T) {
	storage := NewMemoryStorage()
	cart := NewCartStore(storage)
	cart.AddItem(tee, "")
	cart.MergeOnLogin("alice")
	cart.AddItem(tee2, "")

	cart.MergeOnLogout()

	// Le contenu survit au logout, seule la clé active change.
	assert.Len(t, cart.Items(), 2)
	assert.Equal(t, CartKey, cart.ActiveKey())

	data, err := storage.Get(context.Background(), CartKey)
	require.NoError(t, err)
	var mirrored []models.CartItem
	require.NoError(t, json.Unmarshal([]byte(data), &mirrored))
	assert.Len(t, mirrored, 2)
}

// failingStorage échoue sur toutes les écritures.
type failingStorage struct{ Storage }

func (s *failingStorage) Set(context.Context, string, string) error {
	return errors.New("quota dépassé")
}

func TestCartWriteFailureDoesNotCorruptState(t *testing.T) {
	cart := NewCartStore(&failingStorage{NewMemoryStorage()})

	cart.AddItem(tee, "M")
	cart.AddItem(tee, "M")

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Qty)
}
