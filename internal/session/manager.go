package session

import (
	"sync"

	"vibe_shop_back_end/internal/store"
)

// State regroupe les trois stores d'une session navigateur. Chaque
// store possède sa collection en exclusivité, miroir compris.
type State struct {
	Cart      *store.CartStore
	Favorites *store.FavoritesStore
	Compare   *store.CompareStore
}

// Manager construit paresseusement le State de chaque session. Les
// miroirs de persistance sont isolés par un préfixe sess:<sid>: pour
// que les clés logiques (cart, favorites, compare) ne se télescopent
// pas entre navigateurs.
type Manager struct {
	mu      sync.Mutex
	storage store.Storage
	states  map[string]*State
}

func NewManager(storage store.Storage) *Manager {
	return &Manager{
		storage: storage,
		states:  make(map[string]*State),
	}
}

func (m *Manager) State(sid string) *State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if st, ok := m.states[sid]; ok {
		return st
	}

	scoped := store.Namespaced(m.storage, "sess:"+sid+":")
	st := &State{
		Cart:      store.NewCartStore(scoped),
		Favorites: store.NewFavoritesStore(scoped),
		Compare:   store.NewCompareStore(scoped),
	}
	m.states[sid] = st
	return st
}
