package usecase

import (
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/forecounter/internal/domain"
	"github.com/aalvaropc/forecounter/internal/ports"
)

// RoundController owns the live round and is the only writer of the store.
// It is not safe for concurrent use; callers drive it from one goroutine (the UI loop).
type RoundController struct {
	store       ports.RoundStore
	now         func() time.Time
	log         *slog.Logger
	round       domain.Round
	showSummary bool
}

type ControllerOption func(*RoundController)

// WithClock is useful for tests.
func WithClock(now func() time.Time) ControllerOption {
	return func(c *RoundController) {
		if now != nil {
			c.now = now
		}
	}
}

func WithLogger(l *slog.Logger) ControllerOption {
	return func(c *RoundController) {
		if l != nil {
			c.log = l
		}
	}
}

// NewRoundController resumes the stored round, or starts a fresh one without saving it.
func NewRoundController(store ports.RoundStore, opts ...ControllerOption) *RoundController {
	if store == nil {
		store = discardStore{}
	}

	c := &RoundController{
		store: store,
		now:   time.Now,
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	r, ok := store.Load()
	if ok {
		if err := r.Validate(); err != nil {
			c.log.Warn("round.resume.invalid", "err", err)
			ok = false
		}
	}
	if ok {
		c.round = r
		c.log.Info("round.resumed", "hole", c.CurrentHoleNumber(), "total", c.TotalStrokes())
	} else {
		c.round = domain.NewRound(c.now())
		c.log.Info("round.started", "started_at", c.round.StartedAt)
	}
	return c
}

func (c *RoundController) IncrementStroke() {
	c.round.Holes[len(c.round.Holes)-1].Strokes++
	c.log.Debug("round.increment", "hole", c.CurrentHoleNumber(), "strokes", c.CurrentStrokes())
	c.persist()
}

// DecrementStroke is a no-op at zero strokes and does not save in that case.
func (c *RoundController) DecrementStroke() {
	last := len(c.round.Holes) - 1
	if c.round.Holes[last].Strokes <= 0 {
		c.log.Debug("round.decrement.floor", "hole", c.CurrentHoleNumber())
		return
	}
	c.round.Holes[last].Strokes--
	c.log.Debug("round.decrement", "hole", c.CurrentHoleNumber(), "strokes", c.CurrentStrokes())
	c.persist()
}

// AdvanceHole opens the next hole, or on the last hole switches to the summary.
func (c *RoundController) AdvanceHole() {
	if n := len(c.round.Holes); n < domain.MaxHoles {
		c.round.Holes = append(c.round.Holes, domain.NewHoleScore(n+1))
		c.log.Debug("round.advance", "hole", n+1)
	} else {
		c.showSummary = true
		c.log.Debug("round.summary", "total", c.TotalStrokes())
	}
	c.persist()
}

func (c *RoundController) NewRound() {
	c.round = domain.NewRound(c.now())
	c.showSummary = false
	c.log.Info("round.new", "started_at", c.round.StartedAt)
	c.persist()
}

// HideSummary leaves the scorecard without touching the round.
func (c *RoundController) HideSummary() {
	c.showSummary = false
}

func (c *RoundController) CurrentHoleNumber() int {
	return c.round.CurrentHole().HoleNumber
}

func (c *RoundController) CurrentStrokes() int {
	return c.round.CurrentHole().Strokes
}

func (c *RoundController) TotalStrokes() int {
	return c.round.TotalStrokes()
}

func (c *RoundController) ShowSummary() bool {
	return c.showSummary
}

// Round returns a snapshot; mutating it does not affect the controller.
func (c *RoundController) Round() domain.Round {
	return c.round.Clone()
}

func (c *RoundController) persist() {
	c.store.Save(c.round.Clone())
}

type discardStore struct{}

func (discardStore) Save(domain.Round)          {}
func (discardStore) Load() (domain.Round, bool) { return domain.Round{}, false }
func (discardStore) Clear()                     {}
