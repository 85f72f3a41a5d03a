package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"vibe_shop_back_end/internal/models"
)

// CompareStore — ensemble ordonné par id, ajout en fin de liste.
type CompareStore struct {
	mu      sync.Mutex
	storage Storage
	items   []models.CompareItem
}

func NewCompareStore(storage Storage) *CompareStore {
	return &CompareStore{
		storage: storage,
		items:   loadItems[models.CompareItem](storage, CompareKey),
	}
}

// Toggle retire le produit s'il est présent, sinon l'ajoute en fin.
func (s *CompareStore) Toggle(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}

	s.items = append(s.items, models.CompareItem{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
	})
	s.persist()
}

func (s *CompareStore) Contains(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

func (s *CompareStore) Remove(id int) {
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

func (s *CompareStore) Items() []models.CompareItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CompareItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CompareStore) persist() {
	items := s.items
	if items == nil {
		items = []models.CompareItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := s.storage.Set(context.Background(), CompareKey, string(data)); err != nil {
		log.Printf("⚠️ Écriture %q échouée: %v", CompareKey, err)
	}
}
