package ports

import "github.com/aalvaropc/forecounter/internal/domain"

// RoundStore persists the single active round.
// Implementations absorb their own failures: Save never fails loudly and Load reports
// corrupt or missing data as absent.
type RoundStore interface {
	Save(round domain.Round)
	Load() (domain.Round, bool)
	Clear()
}
