package session

import "context"

// Enqueue appends a window to the session's processing queue and starts
// a drain goroutine if one is not already running. Windows for a given
// session are processed strictly in the order they were enqueued, one at
// a time; windows for different sessions proceed independently.
func (s *Session) Enqueue(ctx context.Context, w Window) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.queue = append(s.queue, w)
	if !s.inflight {
		s.inflight = true
		go s.drain(ctx)
	}
}

func (s *Session) drain(ctx context.Context) {
	for {
		s.mu.Lock()
		if s.closed || len(s.queue) == 0 {
			s.inflight = false
			s.mu.Unlock()
			return
		}
		w := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		s.handler(ctx, s, w)
	}
}

// QueueLen reports the number of windows waiting to be processed. The
// window currently being handled is not counted.
func (s *Session) QueueLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}
