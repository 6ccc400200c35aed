package cart

import (
	"context"
	"sync"
)

// Store persists ledgers keyed by cart ID. The ledger is loaded once
// per request and saved after every mutation; the store is the only
// durable copy.
type Store interface {
	// Load returns (ledger, found, error). Absent carts are not an error.
	Load(ctx context.Context, cartID string) (*Ledger, bool, error)
	Save(ctx context.Context, cartID string, l *Ledger) error
	Delete(ctx context.Context, cartID string) error
}

// MemoryStore keeps encoded ledgers in a map. Used in tests and as a
// stand-in when no database is wired.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, cartID string) (*Ledger, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.data[cartID]
	if !ok {
		return nil, false, nil
	}
	l, err := DecodeLedger(b)
	if err != nil {
		return nil, false, err
	}
	return l, true, nil
}

func (s *MemoryStore) Save(_ context.Context, cartID string, l *Ledger) error {
	b, err := l.Encode()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[cartID] = b
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, cartID)
	return nil
}
