package command

import (
	"github.com/sandevgo/auralis/internal/config"
	"github.com/sandevgo/auralis/internal/service/profile"
)

// NewDefaultRouter wires every slash command shared by the chat surfaces.
func NewDefaultRouter(cfg config.ProviderConfig, models ModelLister, profiles *profile.Service) *Router {
	r := New(nil)
	r.Register(NewProfileCommand(profiles))
	r.Register(NewMemoriesCommand(profiles))
	r.Register(NewModelCommand(cfg, models))
	r.Register(NewHelpCommand(r))
	return r
}
