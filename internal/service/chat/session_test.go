package chat

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sandevgo/auralis/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type responderFunc func(ctx context.Context, text string) (core.GenerationOutput, error)

func (f responderFunc) Respond(ctx context.Context, text string) (core.GenerationOutput, error) {
	return f(ctx, text)
}

type recordedTurn struct {
	text string
	out  core.GenerationOutput
}

type fakeRecorder struct {
	mu    sync.Mutex
	turns []recordedTurn
}

func (f *fakeRecorder) Record(ctx context.Context, text string, out core.GenerationOutput) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.turns = append(f.turns, recordedTurn{text: text, out: out})
}

func hello() core.GenerationOutput {
	return core.GenerationOutput{Response: "Olá! Como posso ajudar?", Reflection: "Um novo contato.", Emotion: "alegria", Importance: 4}
}

func TestSubmit_Success(t *testing.T) {
	rec := &fakeRecorder{}
	var events []Event
	s := NewSession("s1", responderFunc(func(ctx context.Context, text string) (core.GenerationOutput, error) {
		return hello(), nil
	}), rec, WithGreeting(Greeting), WithListener(func(e Event) { events = append(events, e) }))

	msg, err := s.Submit(context.Background(), "  Hello  ")
	require.NoError(t, err)

	assert.Equal(t, core.SenderAssistant, msg.Sender)
	assert.Equal(t, "Olá! Como posso ajudar?", msg.Text)
	require.NotNil(t, msg.Thoughts)
	assert.Equal(t, core.Thoughts{Reflection: "Um novo contato.", Emotion: "alegria", Importance: 4}, *msg.Thoughts)

	transcript := s.Transcript()
	require.Len(t, transcript, 3)
	assert.Equal(t, core.SenderSystem, transcript[0].Sender)
	assert.Equal(t, Greeting, transcript[0].Text)
	assert.Equal(t, "Hello", transcript[1].Text)
	assert.Equal(t, msg.ID, transcript[2].ID)
	for _, m := range transcript {
		assert.False(t, m.Typing)
	}

	require.Len(t, rec.turns, 1)
	assert.Equal(t, "Hello", rec.turns[0].text)
	assert.Equal(t, 4, rec.turns[0].out.Importance)

	kinds := make([]EventKind, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []EventKind{EventAdded, EventAdded, EventRemoved, EventAdded}, kinds)
	assert.True(t, events[1].Message.Typing)
	assert.Equal(t, StateIdle, s.State())
}

func TestSubmit_EmptyInput(t *testing.T) {
	called := false
	s := NewSession("s1", responderFunc(func(ctx context.Context, text string) (core.GenerationOutput, error) {
		called = true
		return hello(), nil
	}), nil)

	for _, in := range []string{"", "   ", "\n\t"} {
		_, err := s.Submit(context.Background(), in)
		assert.ErrorIs(t, err, ErrEmptyInput)
	}
	assert.Empty(t, s.Transcript())
	assert.False(t, called)
}

func TestSubmit_OneTurnAtATime(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var calls int
	var mu sync.Mutex

	s := NewSession("s1", responderFunc(func(ctx context.Context, text string) (core.GenerationOutput, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		close(started)
		<-release
		return hello(), nil
	}), nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.Submit(context.Background(), "first")
	}()

	<-started
	assert.Equal(t, StateAwaiting, s.State())

	before := s.Transcript()
	require.Len(t, before, 2)
	assert.True(t, before[1].Typing)
	assert.Equal(t, "...", before[1].Text)

	_, err := s.Submit(context.Background(), "second")
	assert.ErrorIs(t, err, ErrBusy)
	assert.Equal(t, before, s.Transcript())

	close(release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("turn did not settle")
	}

	mu.Lock()
	assert.Equal(t, 1, calls)
	mu.Unlock()
	assert.Len(t, s.Transcript(), 2)
	assert.Equal(t, StateIdle, s.State())
}

func TestSubmit_GenerationFails(t *testing.T) {
	rec := &fakeRecorder{}
	var failed []Event
	s := NewSession("s1", responderFunc(func(ctx context.Context, text string) (core.GenerationOutput, error) {
		return core.GenerationOutput{}, errors.New("model unavailable")
	}), rec, WithListener(func(e Event) {
		if e.Kind == EventFailed {
			failed = append(failed, e)
		}
	}))

	msg, err := s.Submit(context.Background(), "Hello")
	require.NoError(t, err)
	assert.Equal(t, core.SenderSystem, msg.Sender)
	assert.Equal(t, "Erro: model unavailable", msg.Text)

	transcript := s.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, "Hello", transcript[0].Text)
	assert.Equal(t, msg.ID, transcript[1].ID)

	assert.Empty(t, rec.turns)
	require.Len(t, failed, 1)
	assert.Equal(t, StateIdle, s.State())
}

func TestSubmit_PanicSettlesTurn(t *testing.T) {
	s := NewSession("s1", responderFunc(func(ctx context.Context, text string) (core.GenerationOutput, error) {
		panic("boom")
	}), nil)

	msg, err := s.Submit(context.Background(), "Hello")
	require.NoError(t, err)
	assert.Contains(t, msg.Text, "Erro: ")
	assert.Contains(t, msg.Text, "boom")
	assert.Equal(t, StateIdle, s.State())

	for _, m := range s.Transcript() {
		assert.False(t, m.Typing)
	}

	// the gate is released
	_, err = s.Submit(context.Background(), "again")
	assert.NoError(t, err)
}

func TestNote(t *testing.T) {
	s := NewSession("s1", nil, nil)
	s.Note("perfil carregado")
	transcript := s.Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, core.SenderSystem, transcript[0].Sender)
}

func TestTranscriptIsACopy(t *testing.T) {
	s := NewSession("s1", nil, nil, WithGreeting("oi"))
	tr := s.Transcript()
	tr[0].Text = "changed"
	assert.Equal(t, "oi", s.Transcript()[0].Text)
}

func TestSubscribe(t *testing.T) {
	s := NewSession("s1", responderFunc(func(ctx context.Context, text string) (core.GenerationOutput, error) {
		return hello(), nil
	}), nil)

	var kinds []EventKind
	unsubscribe := s.Subscribe(func(e Event) { kinds = append(kinds, e.Kind) })

	_, err := s.Submit(context.Background(), "Hello")
	require.NoError(t, err)
	assert.Equal(t, []EventKind{EventAdded, EventAdded, EventRemoved, EventAdded}, kinds)

	unsubscribe()
	s.Note("só local")
	assert.Len(t, kinds, 4)
}
