package installer

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sandevgo/auralis/internal/config"
)

// SaveEnvStep writes the collected configuration to <runtime>/.env
type SaveEnvStep struct {
	runtimePath string
	err         error
	saved       bool
}

func NewSaveEnvStep(runtimePath string) Step {
	return &SaveEnvStep{runtimePath: runtimePath}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.saved {
		return nil, nil
	}
	if s.err != nil {
		return s, nil
	}

	if err := SaveEnv(s.runtimePath, state); err != nil {
		s.err = err
		return s, nil
	}

	s.saved = true
	return nil, nil
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	if s.saved {
		return "Configuration saved successfully!\n"
	}
	return "Saving configuration...\n"
}

// SaveEnv writes the persisted variables, refusing to replace an existing
// file.
func SaveEnv(runtimePath string, state *InstallState) error {
	if err := os.MkdirAll(runtimePath, 0o755); err != nil {
		return fmt.Errorf("failed to create runtime directory: %w", err)
	}

	envPath := config.GetEnvPath(runtimePath)
	if _, err := os.Stat(envPath); err == nil {
		return fmt.Errorf(".env file already exists at %s", envPath)
	}

	if err := godotenv.Write(state.Persisted(), envPath); err != nil {
		return err
	}
	return os.Chmod(envPath, 0o600)
}
