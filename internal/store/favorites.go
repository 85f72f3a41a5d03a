package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"vibe_shop_back_end/internal/models"
)

// FavoritesStore — ensemble ordonné par id. Les nouveaux favoris passent
// en tête de liste.
type FavoritesStore struct {
	mu      sync.Mutex
	storage Storage
	items   []models.FavoriteItem
}

func NewFavoritesStore(storage Storage) *FavoritesStore {
	return &FavoritesStore{
		storage: storage,
		items:   loadItems[models.FavoriteItem](storage, FavoritesKey),
	}
}

// Toggle retire le produit s'il est présent, sinon l'insère en tête
// avec la taille optionnelle ("" = sans taille).
func (s *FavoritesStore) Toggle(p models.Product, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}

	item := models.FavoriteItem{
		ID:    p.ID,
		Size:  size,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
	}
	s.items = append([]models.FavoriteItem{item}, s.items...)
	s.persist()
}

// SetSize met à jour la taille d'un favori existant sans changer sa
// position. No-op si l'id est absent.
func (s *FavoritesStore) SetSize(id int, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Size = size
			s.persist()
			return
		}
	}
}

func (s *FavoritesStore) Contains(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

func (s *FavoritesStore) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.persist()
}

func (s *FavoritesStore) Items() []models.FavoriteItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.FavoriteItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *FavoritesStore) persist() {
	items := s.items
	if items == nil {
		items = []models.FavoriteItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := s.storage.Set(context.Background(), FavoritesKey, string(data)); err != nil {
		log.Printf("⚠️ Écriture %q échouée: %v", FavoritesKey, err)
	}
}
