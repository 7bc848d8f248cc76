package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/forecounter/internal/domain"
)

// Load builds the effective configuration for home: defaults, then
// forecounter.yaml, then .env and FORECOUNTER_* variables.
// Command-line flags are applied by the caller.
func Load(home string) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	cfg.Home = filepath.Clean(home)

	if err := applyFile(&cfg, filepath.Join(cfg.Home, ConfigFileName)); err != nil {
		return domain.Config{}, err
	}
	if err := loadDotEnv(cfg.Home); err != nil {
		return domain.Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return domain.Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that cannot open a store.
func Validate(cfg domain.Config) error {
	if !cfg.Store.Backend.Valid() {
		return &domain.OpError{
			Op:   "config.validate",
			Kind: domain.KindInvalidConfig,
			Path: filepath.Join(cfg.Home, ConfigFileName),
			Err:  fmt.Errorf("unknown store backend %q: %w", cfg.Store.Backend, domain.ErrInvalidConfig),
		}
	}
	return nil
}

func applyFile(cfg *domain.Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &domain.OpError{
			Op:   "config.read",
			Kind: domain.KindStorage,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return &domain.OpError{
			Op:   "config.parse",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if v := strings.TrimSpace(dto.ForeCounter.Store.Backend); v != "" {
		cfg.Store.Backend = domain.Backend(strings.ToLower(v))
	}
	if v := strings.TrimSpace(dto.ForeCounter.Store.Path); v != "" {
		cfg.Store.Path = v
	}
	if dto.ForeCounter.Logging.Debug != nil {
		cfg.Logging.Debug = *dto.ForeCounter.Logging.Debug
	}
	return nil
}
