package roundstore

import (
	"io"
	"log/slog"

	"github.com/aalvaropc/forecounter/internal/domain"
	"github.com/aalvaropc/forecounter/internal/ports"
)

// Store adapts a raw Slot into a RoundStore.
// I/O and decoding failures are logged here and never reach the caller.
type Store struct {
	slot ports.Slot
	log  *slog.Logger
}

type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

func New(slot ports.Slot, opts ...Option) *Store {
	s := &Store{
		slot: slot,
		log:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.RoundStore = (*Store)(nil)

func (s *Store) Save(round domain.Round) {
	b, err := Encode(round)
	if err != nil {
		s.log.Error("round.save.encode_failed", "err", err)
		return
	}
	if err := s.slot.Write(b); err != nil {
		s.log.Error("round.save.failed", "err", err, "bytes", len(b))
		return
	}
	s.log.Debug("round.saved", "holes", round.HoleCount(), "total", round.TotalStrokes())
}

func (s *Store) Load() (domain.Round, bool) {
	b, err := s.slot.Read()
	if err != nil {
		if !domain.IsKind(err, domain.KindNotFound) {
			s.log.Warn("round.load.failed", "err", err)
		}
		return domain.Round{}, false
	}

	round, err := Decode(b)
	if err != nil {
		s.log.Warn("round.load.corrupt", "err", err, "bytes", len(b))
		return domain.Round{}, false
	}
	return round, true
}

func (s *Store) Clear() {
	if err := s.slot.Delete(); err != nil {
		s.log.Error("round.clear.failed", "err", err)
	}
}
