package memory

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// LockRepository hands out one mutex per conversation key so concurrent
// posts to the same (job, session) pair are serialized. Entries expire
// once a conversation has been idle for a while; go-cache purges them in
// the background.
type LockRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewLockRepository() *LockRepository {
	// Locks for idle conversations expire after an hour and are purged
	// every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &LockRepository{
		cache: c,
	}
}

// Get returns the mutex for the given key, creating it if needed.
func (r *LockRepository) Get(key string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	if x, found := r.cache.Get(key); found {
		// Refresh the TTL on every access so an active conversation
		// never loses its lock.
		r.cache.Set(key, x, cache.DefaultExpiration)
		return x.(*sync.Mutex)
	}

	m := &sync.Mutex{}
	r.cache.Set(key, m, cache.DefaultExpiration)
	return m
}
