package domain

import (
	"fmt"
	"time"
)

// MaxHoles is the ceiling of a round.
const MaxHoles = 18

// Round is one in-progress or completed round.
// Holes are dense and 1-based: Holes[i].HoleNumber == i+1.
type Round struct {
	Holes     []HoleScore `json:"holes"`
	StartedAt time.Time   `json:"startedAt"`
}

// NewRound starts a round on hole 1 with no strokes.
func NewRound(now time.Time) Round {
	return Round{
		Holes:     []HoleScore{NewHoleScore(1)},
		StartedAt: now.UTC(),
	}
}

// CurrentHole is the most recently opened hole.
func (r Round) CurrentHole() HoleScore {
	if len(r.Holes) == 0 {
		return HoleScore{}
	}
	return r.Holes[len(r.Holes)-1]
}

func (r Round) HoleCount() int {
	return len(r.Holes)
}

func (r Round) TotalStrokes() int {
	total := 0
	for _, h := range r.Holes {
		total += h.Strokes
	}
	return total
}

// IsComplete reports whether every hole of the round has been opened.
func (r Round) IsComplete() bool {
	return len(r.Holes) >= MaxHoles
}

// Equal compares holes in order and the start time to the nanosecond.
func (r Round) Equal(other Round) bool {
	if len(r.Holes) != len(other.Holes) {
		return false
	}
	for i := range r.Holes {
		if r.Holes[i] != other.Holes[i] {
			return false
		}
	}
	return r.StartedAt.Equal(other.StartedAt)
}

// Clone returns a deep copy (does NOT share the holes slice).
func (r Round) Clone() Round {
	out := Round{StartedAt: r.StartedAt}
	if r.Holes != nil {
		out.Holes = make([]HoleScore, len(r.Holes))
		copy(out.Holes, r.Holes)
	}
	return out
}

// Validate checks the shape invariants of a round.
func (r Round) Validate() error {
	n := len(r.Holes)
	if n < 1 || n > MaxHoles {
		return corrupt(fmt.Errorf("hole count %d outside 1..%d", n, MaxHoles))
	}
	for i, h := range r.Holes {
		if h.HoleNumber != i+1 {
			return corrupt(fmt.Errorf("holes[%d].holeNumber: expected %d, got %d", i, i+1, h.HoleNumber))
		}
		if h.Strokes < 0 {
			return corrupt(fmt.Errorf("holes[%d].strokes: negative (%d)", i, h.Strokes))
		}
	}
	if r.StartedAt.IsZero() {
		return corrupt(fmt.Errorf("startedAt is missing"))
	}
	return nil
}

func corrupt(err error) error {
	return &OpError{
		Op:   "round.validate",
		Kind: KindCorruptData,
		Err:  fmt.Errorf("%w: %w", ErrCorruptData, err),
	}
}

// ActiveRoundSlot is the single logical slot every backend stores the round under.
const ActiveRoundSlot = "activeRound"
