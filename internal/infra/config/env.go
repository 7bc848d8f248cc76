package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/aalvaropc/forecounter/internal/domain"
)

// envOverrides holds raw FORECOUNTER_* values; empty means unset.
type envOverrides struct {
	Backend   string `env:"FORECOUNTER_BACKEND"`
	StorePath string `env:"FORECOUNTER_STORE_PATH"`
	Debug     string `env:"FORECOUNTER_DEBUG"`
}

// loadDotEnv reads <home>/.env into the process environment without
// overriding variables that are already set.
func loadDotEnv(home string) error {
	path := filepath.Join(home, EnvFileName)
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &domain.OpError{
			Op:   "config.load_dotenv",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

func applyEnv(cfg *domain.Config) error {
	var raw envOverrides
	if err := env.Parse(&raw); err != nil {
		return &domain.OpError{
			Op:   "config.parse_env",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("parse env: %w", err),
		}
	}

	if v := strings.TrimSpace(raw.Backend); v != "" {
		cfg.Store.Backend = domain.Backend(strings.ToLower(v))
	}
	if v := strings.TrimSpace(raw.StorePath); v != "" {
		cfg.Store.Path = v
	}
	if v := strings.TrimSpace(raw.Debug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &domain.OpError{
				Op:   "config.parse_env",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("FORECOUNTER_DEBUG=%q: %w", v, err),
			}
		}
		cfg.Logging.Debug = b
	}
	return nil
}
