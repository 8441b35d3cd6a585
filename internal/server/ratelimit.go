package server

import (
	"sync"
	"time"
)

// rateLimiter bounds binary chunks per connection using a sliding
// window over the last second.
type rateLimiter struct {
	limit      int
	mu         sync.Mutex
	timestamps []time.Time
}

// allow reports whether another chunk may be accepted now and records
// it if so.
func (r *rateLimiter) allow() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-rateLimitWindow)

	valid := r.timestamps[:0]
	for _, t := range r.timestamps {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	r.timestamps = valid

	if len(r.timestamps) >= r.limit {
		return false
	}

	r.timestamps = append(r.timestamps, now)
	return true
}
