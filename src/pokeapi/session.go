package pokeapi

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Session serializes a caller's lookups with last-submitted-wins semantics:
// submitting cancels the query still in flight, and an outcome is handed to
// its callback only if no newer query was submitted before it completed.
type Session struct {
	client *Client

	mu      sync.Mutex
	current uuid.UUID
	cancel  context.CancelFunc

	deliverMu sync.Mutex
}

func NewSession(client *Client) *Session {
	return &Session{client: client}
}

func (s *Session) Submit(ctx context.Context, mode LookupMode, rawInput string, deliver func(Outcome)) uuid.UUID {
	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	id := uuid.New()
	s.current = id
	s.cancel = cancel
	s.mu.Unlock()

	go func() {
		defer cancel()
		outcome := <-s.client.Submit(ctx, mode, rawInput)
		outcome.Id = id

		s.deliverMu.Lock()
		defer s.deliverMu.Unlock()
		if !s.isCurrent(id) {
			return
		}
		deliver(outcome)
	}()
	return id
}

func (s *Session) isCurrent(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current == id
}

// Close cancels the in-flight query, if any; its outcome is dropped.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.current = uuid.Nil
}
