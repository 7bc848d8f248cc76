package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/forecounter/internal/domain"
)

const (
	// HomeEnv overrides the data home when no --home flag is given.
	HomeEnv = "FORECOUNTER_HOME"

	ConfigFileName = "forecounter.yaml"
	EnvFileName    = ".env"
)

// ResolveHome picks the data home: flag, then FORECOUNTER_HOME, then the
// user config dir.
func ResolveHome(flag string) (string, error) {
	if v := strings.TrimSpace(flag); v != "" {
		return filepath.Clean(v), nil
	}
	if v := strings.TrimSpace(os.Getenv(HomeEnv)); v != "" {
		return filepath.Clean(v), nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", &domain.OpError{
			Op:   "config.resolve_home",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}
	return filepath.Join(dir, "forecounter"), nil
}
