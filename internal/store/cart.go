package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"vibe_shop_back_end/internal/models"
)

// CartStore est la collection ordonnée des lignes du panier, clé
// d'identité (id, taille). La clé de persistance active bascule entre
// la clé anonyme et la clé utilisateur au login/logout.
type CartStore struct {
	mu        sync.Mutex
	storage   Storage
	activeKey string
	items     []models.CartItem
}

// NewCartStore charge le panier anonyme depuis le stockage. Un JSON
// corrompu ou une lecture en échec donnent un panier vide, jamais une erreur.
func NewCartStore(storage Storage) *CartStore {
	s := &CartStore{storage: storage, activeKey: CartKey}
	s.items = loadItems[models.CartItem](storage, CartKey)
	return s
}

func loadItems[T any](storage Storage, key string) []T {
	data, err := storage.Get(context.Background(), key)
	if err != nil || data == "" {
		return nil
	}
	var items []T
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		log.Printf("⚠️ Données persistées illisibles pour %q, collection vide utilisée", key)
		return nil
	}
	return items
}

// AddItem ajoute le produit avec la taille donnée ("" = sans taille).
// Une clé d'identité déjà présente incrémente la quantité au lieu de dupliquer.
func (s *CartStore) AddItem(p models.Product, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID && s.items[i].Size == size {
			s.items[i].Qty++
			s.persist()
			return
		}
	}

	s.items = append(s.items, models.CartItem{
		ID:    p.ID,
		Size:  size,
		Qty:   1,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
	})
	s.persist()
}

// RemoveItem supprime les lignes correspondant exactement à (id, size).
func (s *CartStore) RemoveItem(id int, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != id || it.Size != size {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.persist()
}

// Clear vide le panier.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// Items renvoie une copie des lignes, dans l'ordre d'insertion.
func (s *CartStore) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// MergeOnLogin fusionne le panier anonyme courant avec le panier
// persisté de l'utilisateur : union des clés d'identité, quantités
// additionnées quand les deux côtés ont la clé. Le panier de
// l'utilisateur ET les ajouts anonymes survivent au login.
func (s *CartStore) MergeOnLogin(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userKey := CartKeyPrefix + username
	merged := loadItems[models.CartItem](s.storage, userKey)

	for _, anon := range s.items {
		found := false
		for i := range merged {
			if merged[i].ID == anon.ID && merged[i].Size == anon.Size {
				merged[i].Qty += anon.Qty
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, anon)
		}
	}

	s.items = merged
	s.activeKey = userKey
	s.persist()
}

// MergeOnLogout rebascule la persistance sur la clé anonyme sans
// toucher au contenu en mémoire.
func (s *CartStore) MergeOnLogout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeKey = CartKey
	s.persist()
}

// ActiveKey renvoie la clé de persistance courante.
func (s *CartStore) ActiveKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeKey
}

// persist écrit la collection sous la clé active. Un échec d'écriture
// (quota, Redis indisponible) est avalé : l'état mémoire reste autoritaire.
func (s *CartStore) persist() {
	data, err := json.Marshal(s.itemsOrEmpty())
	if err != nil {
		return
	}
	if err := s.storage.Set(context.Background(), s.activeKey, string(data)); err != nil {
		log.Printf("⚠️ Écriture %q échouée: %v", s.activeKey, err)
	}
}

func (s *CartStore) itemsOrEmpty() []models.CartItem {
	if s.items == nil {
		return []models.CartItem{}
	}
	return s.items
}
