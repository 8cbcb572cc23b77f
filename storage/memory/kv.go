package memorystore

import (
	"context"
	"sync"
	"time"
)

type kvItem struct {
	value   []byte
	expires time.Time
}

// KV is a simple in-memory key-value store with TTL support.
// It is only safe for single-process deployments.
type KV struct {
	mu    sync.Mutex
	items map[string]kvItem
}

func NewKV() *KV {
	return &KV{items: make(map[string]kvItem)}
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	_ = ctx
	k.mu.Lock()
	defer k.mu.Unlock()
	it, ok := k.items[key]
	if !ok {
		return nil, false, nil
	}
	if !it.expires.IsZero() && time.Now().After(it.expires) {
		delete(k.items, key)
		return nil, false, nil
	}
	return it.value, true, nil
}

func (k *KV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_ = ctx
	k.mu.Lock()
	defer k.mu.Unlock()
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	k.items[key] = kvItem{value: append([]byte(nil), value...), expires: exp}
	return nil
}

func (k *KV) Del(ctx context.Context, key string) error {
	_ = ctx
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.items, key)
	return nil
}

// Sweep drops every expired entry and reports how many were removed. Get
// already expires lazily; Sweep exists so a scheduler can bound the memory
// held by keys that are never read again.
func (k *KV) Sweep() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	now := time.Now()
	removed := 0
	for key, it := range k.items {
		if !it.expires.IsZero() && now.After(it.expires) {
			delete(k.items, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of live entries, counting not-yet-swept expired ones.
func (k *KV) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.items)
}
