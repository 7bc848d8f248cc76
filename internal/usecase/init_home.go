package usecase

import (
	"github.com/aalvaropc/forecounter/internal/ports"
)

type InitHome struct {
	initializer ports.HomeInitializer
}

func NewInitHome(initializer ports.HomeInitializer) *InitHome {
	return &InitHome{initializer: initializer}
}

func (uc *InitHome) Execute(home string, force bool) error {
	return uc.initializer.Init(home, force)
}
