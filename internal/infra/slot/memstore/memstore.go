package memstore

import (
	"sync"

	"github.com/aalvaropc/forecounter/internal/domain"
	"github.com/aalvaropc/forecounter/internal/ports"
)

// Store keeps the slot in memory. Nothing survives the process.
type Store struct {
	mu      sync.Mutex
	payload []byte
	present bool
}

func New() *Store {
	return &Store{}
}

var _ ports.Slot = (*Store)(nil)

func (s *Store) Read() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.present {
		return nil, &domain.OpError{
			Op:   "memstore.read",
			Kind: domain.KindNotFound,
			Err:  domain.ErrNotFound,
		}
	}
	out := make([]byte, len(s.payload))
	copy(out, s.payload)
	return out, nil
}

func (s *Store) Write(payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payload = make([]byte, len(payload))
	copy(s.payload, payload)
	s.present = true
	return nil
}

func (s *Store) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payload = nil
	s.present = false
	return nil
}
