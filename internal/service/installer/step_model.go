package installer

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/auralis/internal/core"
	"github.com/sandevgo/auralis/internal/providers/llm"
)

const modelFetchTimeout = 30 * time.Second

// ModelLoader lists the models of the provider described by the state.
type ModelLoader func(ctx context.Context, state *InstallState) ([]core.Model, error)

func loadProviderModels(ctx context.Context, state *InstallState) ([]core.Model, error) {
	cfg, err := state.ProviderConfig()
	if err != nil {
		return nil, err
	}
	p, err := llm.NewProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return p.Models(ctx)
}

// ModelStep lets the user pick a model from the provider's catalogue, or
// keep the provider default.
type ModelStep struct {
	list     list.Model
	load     ModelLoader
	loading  bool
	fetching bool // Ensures we only trigger the call once
	err      error
}

func NewModelStep(load ModelLoader) Step {
	if load == nil {
		load = loadProviderModels
	}

	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select the generation model"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return &ModelStep{
		list:    l,
		load:    load,
		loading: true,
	}
}

func (s *ModelStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *ModelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.loading && !s.fetching {
		s.fetching = true
		return s, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), modelFetchTimeout)
			defer cancel()

			models, err := s.load(ctx, state)
			if err != nil {
				return errMsg{err: err}
			}

			items := make([]list.Item, 0, len(models))
			for _, mod := range models {
				desc := "ID: " + mod.ID
				if mod.ContextLength > 0 {
					desc = fmt.Sprintf("ID: %s | Context: %d", mod.ID, mod.ContextLength)
				}
				title := mod.Name
				if title == "" {
					title = mod.ID
				}
				items = append(items, item{id: mod.ID, title: title, desc: desc})
			}
			return modelsMsg(items)
		}
	}

	s.list.SetSize(width, height-4)

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case modelsMsg:
		s.list.SetItems(msg)
		s.loading = false
		s.fetching = false
		return s, nil

	case errMsg:
		s.loading = false
		s.fetching = false
		s.err = msg.err
		return s, nil

	case tea.KeyMsg:
		if s.err != nil {
			switch msg.String() {
			case "enter":
				s.err = nil
				s.loading = true
				return s, func() tea.Msg { return nextMsg{} }
			case "s":
				// Keep the provider default
				return nil, nil
			}
			return s, nil
		}

		if msg.String() == "enter" {
			wasFiltering := s.list.FilterState() == list.Filtering
			s.list, cmd = s.list.Update(msg)

			if wasFiltering || s.list.FilterState() == list.Filtering {
				return s, cmd
			}

			if i, ok := s.list.SelectedItem().(item); ok {
				state.EnvVars["LLM_MODEL"] = i.id
				return nil, nil
			}
			return s, cmd
		}
	}

	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *ModelStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error fetching models: %v", s.err)) +
			"\n\nCheck your API key and connection.\n\n(press enter to retry, s to keep the default model, ctrl+c to quit)\n"
	}
	if s.loading {
		return fmt.Sprintf("Fetching models from %s...\n", providerLabel(state.Provider()))
	}
	return s.list.View()
}
