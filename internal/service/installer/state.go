package installer

import (
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/auralis/internal/config"
)

// Keys kept in the state while the wizard runs but never written out.
const (
	keyChannel = "_CHANNEL"
)

type InstallState struct {
	EnvVars map[string]string
}

func NewInstallState() *InstallState {
	return &InstallState{
		EnvVars: make(map[string]string),
	}
}

func (s *InstallState) Provider() string {
	return strings.ToLower(s.EnvVars["LLM_PROVIDER"])
}

// ProviderConfig parses the collected values the same way the runtime does,
// defaults included.
func (s *InstallState) ProviderConfig() (config.ProviderConfig, error) {
	var cfg config.ProviderConfig
	err := env.ParseWithOptions(&cfg, env.Options{Environment: s.EnvVars})
	return cfg, err
}

// Persisted returns the variables to write, without wizard-only keys and
// empty optional answers.
func (s *InstallState) Persisted() map[string]string {
	out := make(map[string]string, len(s.EnvVars))
	for k, v := range s.EnvVars {
		if strings.HasPrefix(k, "_") || v == "" {
			continue
		}
		out[k] = v
	}
	return out
}
