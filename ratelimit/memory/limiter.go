// Package memorylimiter is a fixed-window per-key rate limiter for
// single-node deployments.
package memorylimiter

import (
	"sync"
	"time"
)

type Limit struct {
	Limit  int
	Window time.Duration
}

type window struct {
	count int
	reset time.Time
}

type Limiter struct {
	mu      sync.Mutex
	limits  map[string]Limit
	windows map[string]window
}

// New builds a limiter from named bucket limits. A "default" bucket, if
// present, applies to unknown bucket names; otherwise unknown buckets are
// unlimited.
func New(limits map[string]Limit) *Limiter {
	return &Limiter{limits: limits, windows: make(map[string]window)}
}

func (l *Limiter) AllowNamed(bucket, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.limits[bucket]
	if !ok {
		lim, ok = l.limits["default"]
		if !ok {
			return true, nil
		}
	}
	now := time.Now()
	w, ok := l.windows[key]
	if !ok || now.After(w.reset) {
		w = window{count: 0, reset: now.Add(lim.Window)}
	}
	if w.count >= lim.Limit {
		l.windows[key] = w
		return false, nil
	}
	w.count++
	l.windows[key] = w
	return true, nil
}
