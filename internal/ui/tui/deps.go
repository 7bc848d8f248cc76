package tui

import (
	"log/slog"

	"github.com/aalvaropc/forecounter/internal/usecase"
)

type Deps struct {
	Controller *usecase.RoundController

	// Backend and LogPath label the footer in debug mode.
	Backend string
	LogPath string

	Logger *slog.Logger
	Debug  bool
}
