package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/forecounter/internal/domain"
	"github.com/aalvaropc/forecounter/internal/infra/slot/boltstore"
	"github.com/aalvaropc/forecounter/internal/infra/slot/filestore"
	"github.com/aalvaropc/forecounter/internal/infra/slot/memstore"
	"github.com/aalvaropc/forecounter/internal/infra/slot/sqlitestore"
	"github.com/aalvaropc/forecounter/internal/ports"
)

// openSlot opens the active-round slot for the configured backend.
// The returned close func is never nil.
func openSlot(cfg domain.Config) (ports.Slot, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store.Backend {
	case domain.BackendMemory:
		return memstore.New(), noop, nil

	case domain.BackendFile, "":
		return filestore.New(slotPath(cfg, filestore.DefaultFileName)), noop, nil

	case domain.BackendBolt:
		path := slotPath(cfg, boltstore.DefaultFileName)
		if err := ensureParent(path); err != nil {
			return nil, noop, err
		}
		s, err := boltstore.Open(path, domain.ActiveRoundSlot)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil

	case domain.BackendSQLite:
		path := slotPath(cfg, sqlitestore.DefaultFileName)
		if err := ensureParent(path); err != nil {
			return nil, noop, err
		}
		s, err := sqlitestore.Open(path, domain.ActiveRoundSlot)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil

	default:
		return nil, noop, &domain.OpError{
			Op:   "cli.open_slot",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unknown store backend %q: %w", cfg.Store.Backend, domain.ErrInvalidConfig),
		}
	}
}

// slotPath resolves the backend file: an explicit path (relative to home) or
// the backend default under home.
func slotPath(cfg domain.Config, defaultName string) string {
	p := cfg.Store.Path
	if p == "" {
		return filepath.Join(cfg.Home, defaultName)
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(cfg.Home, p)
	}
	return filepath.Clean(p)
}

func ensureParent(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "cli.mkdir",
			Kind: domain.KindStorage,
			Path: dir,
			Err:  err,
		}
	}
	return nil
}
