package cli

import (
	"log/slog"
	"strings"

	"github.com/aalvaropc/forecounter/internal/domain"
	"github.com/aalvaropc/forecounter/internal/infra/config"
	"github.com/aalvaropc/forecounter/internal/infra/logger"
	"github.com/aalvaropc/forecounter/internal/infra/roundstore"
	"github.com/aalvaropc/forecounter/internal/usecase"
)

// rootOptions carries the persistent flags shared by every command.
type rootOptions struct {
	home    string
	backend string
	debug   bool
}

// session is everything a round command needs: config, logger, store, controller.
type session struct {
	cfg   domain.Config
	log   *slog.Logger
	store *roundstore.Store
	ctrl  *usecase.RoundController

	closers []func() error
}

func loadConfig(opts *rootOptions) (domain.Config, error) {
	home, err := config.ResolveHome(opts.home)
	if err != nil {
		return domain.Config{}, err
	}

	cfg, err := config.Load(home)
	if err != nil {
		return domain.Config{}, err
	}

	if b := strings.TrimSpace(opts.backend); b != "" {
		cfg.Store.Backend = domain.Backend(strings.ToLower(b))
	}
	if opts.debug {
		cfg.Logging.Debug = true
	}
	if err := config.Validate(cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func openSession(opts *rootOptions) (*session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg}

	// A log file that cannot be opened leaves the discard logger in place.
	if cleanup, lerr := logger.Setup(logger.Config{Home: cfg.Home, Debug: cfg.Logging.Debug}); lerr == nil {
		s.closers = append(s.closers, cleanup)
	}
	s.log = logger.L()

	slot, closeSlot, err := openSlot(cfg)
	if err != nil {
		s.log.Error("store.open.failed", "backend", cfg.Store.Backend, "err", err)
		_ = s.Close()
		return nil, err
	}
	s.closers = append(s.closers, closeSlot)

	s.log.Info("store.opened", "backend", cfg.Store.Backend, "home", cfg.Home)

	s.store = roundstore.New(slot, roundstore.WithLogger(s.log))
	s.ctrl = usecase.NewRoundController(s.store, usecase.WithLogger(s.log))
	return s, nil
}

// Close releases resources in reverse order of acquisition.
func (s *session) Close() error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	s.closers = nil
	return first
}
