package store

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Clés de persistance. La collection en mémoire reste la source de
// vérité pendant la session, le stockage n'est qu'un miroir passif.
const (
	CartKey       = "cart"
	CartKeyPrefix = "cart:"
	FavoritesKey  = "favorites"
	CompareKey    = "compare"
)

// stateTTL aligne la durée de vie des miroirs sur celle du panier
// utilisateur (30 jours).
const stateTTL = 30 * 24 * time.Hour

// Storage est le stockage clé/valeur (valeurs string JSON) derrière les
// stores. Get renvoie "" sans erreur quand la clé est absente.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

// RedisStorage persiste dans Redis.
type RedisStorage struct {
	Client *redis.Client
}

func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{Client: client}
}

func (s *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	val, err := s.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (s *RedisStorage) Set(ctx context.Context, key, value string) error {
	return s.Client.Set(ctx, key, value, stateTTL).Err()
}

func (s *RedisStorage) Del(ctx context.Context, key string) error {
	return s.Client.Del(ctx, key).Err()
}

// Namespaced préfixe toutes les clés, pour isoler les miroirs de
// chaque session navigateur dans le même Redis.
func Namespaced(inner Storage, prefix string) Storage {
	return &namespacedStorage{inner: inner, prefix: prefix}
}

type namespacedStorage struct {
	inner  Storage
	prefix string
}

func (s *namespacedStorage) Get(ctx context.Context, key string) (string, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *namespacedStorage) Set(ctx context.Context, key, value string) error {
	return s.inner.Set(ctx, s.prefix+key, value)
}

func (s *namespacedStorage) Del(ctx context.Context, key string) error {
	return s.inner.Del(ctx, s.prefix+key)
}

// MemoryStorage garde tout en mémoire (tests, dev sans Redis).
type MemoryStorage struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string]string)}
}

func (s *MemoryStorage) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[key], nil
}

func (s *MemoryStorage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemoryStorage) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
