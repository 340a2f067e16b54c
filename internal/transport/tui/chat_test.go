package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/auralis/internal/core"
	"github.com/sandevgo/auralis/internal/service/chat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type responderFunc func(ctx context.Context, text string) (core.GenerationOutput, error)

func (f responderFunc) Respond(ctx context.Context, text string) (core.GenerationOutput, error) {
	return f(ctx, text)
}

type echoRouter struct{}

func (echoRouter) Execute(ctx context.Context, sessionID, input string) (string, bool) {
	return "ran " + input, true
}

func (echoRouter) Commands() []core.Command { return nil }

func newTestModel(t *testing.T, r chat.Responder) Model {
	t.Helper()
	s := chat.NewSession("tui", r, nil, chat.WithGreeting(chat.Greeting))
	m := New(context.Background(), s, echoRouter{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func typeText(m Model, text string) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(Model)
}

// runCmd executes cmd and returns the first message of the wanted type,
// descending into batches.
func runCmd[T tea.Msg](cmd tea.Cmd) (T, bool) {
	var zero T
	if cmd == nil {
		return zero, false
	}
	switch msg := cmd().(type) {
	case T:
		return msg, true
	case tea.BatchMsg:
		for _, c := range msg {
			if got, ok := runCmd[T](c); ok {
				return got, true
			}
		}
	}
	return zero, false
}

func TestChatWindow_SubmitTurn(t *testing.T) {
	m := newTestModel(t, responderFunc(func(ctx context.Context, text string) (core.GenerationOutput, error) {
		return core.GenerationOutput{Response: "**Olá!**", Reflection: "Um novo contato.", Emotion: "alegria", Importance: 4}, nil
	}))
	assert.Contains(t, m.View(), "Sou Auralis")

	m = typeText(m, "Hello")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	assert.Empty(t, m.input.Value())

	done, ok := runCmd[turnDoneMsg](cmd)
	require.True(t, ok)
	require.NoError(t, done.err)

	updated, _ = m.Update(done)
	m = updated.(Model)

	view := m.renderTranscript()
	assert.Contains(t, view, "Hello")
	assert.Contains(t, view, "Olá!")
	assert.Contains(t, view, "alegria · 4/10")
	assert.Empty(t, m.toast)
}

func TestChatWindow_ErrorShowsToast(t *testing.T) {
	m := newTestModel(t, responderFunc(func(ctx context.Context, text string) (core.GenerationOutput, error) {
		return core.GenerationOutput{}, errors.New("model unavailable")
	}))
	var events []chat.Event
	defer m.session.Subscribe(func(e chat.Event) { events = append(events, e) })()

	m = typeText(m, "Hello")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	done, ok := runCmd[turnDoneMsg](cmd)
	require.True(t, ok)

	updated, _ = m.Update(done)
	m = updated.(Model)
	assert.Empty(t, m.toast, "the toast comes from the failure event")

	for _, e := range events {
		updated, _ = m.Update(sessionEventMsg(e))
		m = updated.(Model)
	}
	assert.Equal(t, "Erro: model unavailable", m.toast)
	assert.Contains(t, m.renderTranscript(), "Erro: model unavailable")
}

func TestChatWindow_EventRedrawsPlaceholder(t *testing.T) {
	release := make(chan struct{})
	m := newTestModel(t, responderFunc(func(ctx context.Context, text string) (core.GenerationOutput, error) {
		<-release
		return core.GenerationOutput{Response: "Oi", Emotion: "alegria", Importance: 3}, nil
	}))
	typing := make(chan chat.Event, 1)
	defer m.session.Subscribe(func(e chat.Event) {
		if e.Kind == chat.EventAdded && e.Message.Typing {
			typing <- e
		}
	})()

	m = typeText(m, "Hello")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	done := make(chan turnDoneMsg, 1)
	go func() {
		msg, _ := runCmd[turnDoneMsg](cmd)
		done <- msg
	}()

	updated, _ = m.Update(sessionEventMsg(<-typing))
	m = updated.(Model)
	assert.Contains(t, m.viewport.View(), "pensando...")

	close(release)
	updated, _ = m.Update(<-done)
	m = updated.(Model)
	assert.NotContains(t, m.renderTranscript(), "pensando...")
}

func TestChatWindow_DoubleEnterKeepsText(t *testing.T) {
	calls := 0
	m := newTestModel(t, responderFunc(func(ctx context.Context, text string) (core.GenerationOutput, error) {
		calls++
		return core.GenerationOutput{Response: "Oi", Emotion: "alegria", Importance: 3}, nil
	}))

	m = typeText(m, "primeira")
	updated, first := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	// The first turn has not reached the session gate yet.
	m = typeText(m, "segunda")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	assert.Equal(t, "segunda", m.input.Value())
	assert.Equal(t, busyText, m.toast)

	done, ok := runCmd[turnDoneMsg](first)
	require.True(t, ok)
	updated, _ = m.Update(done)
	m = updated.(Model)
	assert.False(t, m.pending)
	assert.Equal(t, "segunda", m.input.Value())
	assert.Equal(t, 1, calls)
}

func TestChatWindow_BusyRestoresText(t *testing.T) {
	m := newTestModel(t, nil)

	updated, _ := m.Update(turnDoneMsg{text: "de novo", err: chat.ErrBusy})
	m = updated.(Model)
	assert.Equal(t, "de novo", m.input.Value())
	assert.Equal(t, busyText, m.toast)
}

func TestChatWindow_EmptyInputIgnored(t *testing.T) {
	called := false
	m := newTestModel(t, responderFunc(func(ctx context.Context, text string) (core.GenerationOutput, error) {
		called = true
		return core.GenerationOutput{}, nil
	}))

	m = typeText(m, "   ")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, ok := runCmd[turnDoneMsg](cmd)
	assert.False(t, ok)
	assert.False(t, called)
}

func TestChatWindow_SlashCommand(t *testing.T) {
	m := newTestModel(t, nil)

	m = typeText(m, "/profile")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, ok := runCmd[commandDoneMsg](cmd)
	require.True(t, ok)

	transcript := m.session.Transcript()
	assert.Equal(t, "ran /profile", transcript[len(transcript)-1].Text)
}

func TestChatWindow_ToastClears(t *testing.T) {
	m := newTestModel(t, nil)
	m.showToast("first")
	id := m.toastID

	updated, _ := m.Update(clearToastMsg{id: id - 1})
	m = updated.(Model)
	assert.Equal(t, "first", m.toast)

	updated, _ = m.Update(clearToastMsg{id: id})
	m = updated.(Model)
	assert.Empty(t, m.toast)
}
