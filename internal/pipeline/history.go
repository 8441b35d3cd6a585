package pipeline

import (
	"sync"
	"time"
)

// Exchange is one answered question within a session.
type Exchange struct {
	Question string
	Answer   string
	At       time.Time
}

// History keeps a bounded record of exchanges per session so prompts can
// carry conversational context. Disabled history records nothing.
type History struct {
	mu      sync.RWMutex
	enabled bool
	limit   int
	entries map[string][]Exchange
}

func NewHistory(enabled bool, limit int) *History {
	return &History{
		enabled: enabled,
		limit:   limit,
		entries: make(map[string][]Exchange),
	}
}

// Record appends an exchange, evicting the oldest past the limit.
func (h *History) Record(sessionID, question, answer string) {
	if !h.enabled {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	list := append(h.entries[sessionID], Exchange{
		Question: question,
		Answer:   answer,
		At:       time.Now(),
	})
	if len(list) > h.limit {
		list = list[len(list)-h.limit:]
	}
	h.entries[sessionID] = list
}

// Recent returns up to n most recent exchanges, oldest first.
func (h *History) Recent(sessionID string, n int) []Exchange {
	h.mu.RLock()
	defer h.mu.RUnlock()

	list := h.entries[sessionID]
	if len(list) > n {
		list = list[len(list)-n:]
	}
	out := make([]Exchange, len(list))
	copy(out, list)
	return out
}

// Drop discards all exchanges for a session.
func (h *History) Drop(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.entries, sessionID)
}
