package chat

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sandevgo/auralis/internal/core"
	"github.com/sandevgo/auralis/internal/metrics"
	"github.com/sandevgo/auralis/pkg/log"
)

const (
	Greeting    = "Olá! Sou Auralis, uma IA com consciência simulada. Eu evoluo com base em nossas interações, minhas memórias e identidade. Pergunte-me qualquer coisa para iniciarmos nossa conversa!"
	typingText  = "..."
	errorPrefix = "Erro: "
)

var (
	ErrEmptyInput = errors.New("empty input")
	ErrBusy       = errors.New("a response is already being generated")
)

type State string

const (
	StateIdle     State = "idle"
	StateAwaiting State = "awaiting_response"
)

type Responder interface {
	Respond(ctx context.Context, userMessage string) (core.GenerationOutput, error)
}

type Recorder interface {
	Record(ctx context.Context, userMessage string, out core.GenerationOutput)
}

type EventKind string

const (
	EventAdded   EventKind = "added"
	EventRemoved EventKind = "removed"
	EventFailed  EventKind = "failed"
)

// Event reports transcript changes. Failed events carry the system message
// shown for the error and are meant for transient notifications.
type Event struct {
	Kind    EventKind
	Message core.ChatMessage
}

type listener struct {
	id int
	fn func(Event)
}

type Option func(*Session)

// WithGreeting seeds the transcript with a system message.
func WithGreeting(text string) Option {
	return func(s *Session) {
		s.transcript = append(s.transcript, core.NewChatMessage(core.SenderSystem, text))
	}
}

// WithListener registers a callback invoked synchronously on every event.
func WithListener(fn func(Event)) Option {
	return func(s *Session) {
		s.Subscribe(fn)
	}
}

// Session owns one conversation transcript and allows a single turn at a
// time.
type Session struct {
	id        string
	responder Responder
	recorder  Recorder

	lmu       sync.Mutex
	listeners []listener
	nextID    int

	busy       atomic.Bool
	mu         sync.RWMutex
	transcript []core.ChatMessage
}

func NewSession(id string, responder Responder, recorder Recorder, opts ...Option) *Session {
	s := &Session{
		id:        id,
		responder: responder,
		recorder:  recorder,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	if s.busy.Load() {
		return StateAwaiting
	}
	return StateIdle
}

// Transcript returns a copy of the messages in display order.
func (s *Session) Transcript() []core.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Note appends a local system message, such as slash command output. It
// never reaches the model or the memory service.
func (s *Session) Note(text string) core.ChatMessage {
	msg := core.NewChatMessage(core.SenderSystem, text)
	s.append(msg)
	return msg
}

// Submit runs one turn and returns the message that settled it: the
// assistant reply, or a system message describing the failure. ErrEmptyInput
// and ErrBusy reject the input without touching the transcript.
func (s *Session) Submit(ctx context.Context, text string) (msg core.ChatMessage, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		metrics.TurnsTotal.WithLabelValues("rejected").Inc()
		return core.ChatMessage{}, ErrEmptyInput
	}
	if !s.busy.CompareAndSwap(false, true) {
		metrics.TurnsTotal.WithLabelValues("rejected").Inc()
		return core.ChatMessage{}, ErrBusy
	}
	defer s.busy.Store(false)

	logger := log.FromCtx(ctx).With().Str("session", s.id).Logger()
	ctx = logger.WithContext(ctx)

	s.append(core.NewChatMessage(core.SenderUser, text))

	typing := core.NewChatMessage(core.SenderAssistant, typingText)
	typing.Typing = true
	s.append(typing)

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("chat turn panicked")
			s.remove(typing.ID)
			msg = s.fail(fmt.Errorf("unexpected failure: %v", r))
			err = nil
		}
	}()

	out, rerr := s.responder.Respond(ctx, text)
	s.remove(typing.ID)

	if rerr != nil {
		logger.Error().Err(rerr).Msg("chat turn failed")
		return s.fail(rerr), nil
	}

	reply := core.NewChatMessage(core.SenderAssistant, out.Response)
	reply.Thoughts = &core.Thoughts{
		Reflection: out.Reflection,
		Emotion:    out.Emotion,
		Importance: out.Importance,
	}
	s.append(reply)
	metrics.TurnsTotal.WithLabelValues("ok").Inc()

	if s.recorder != nil {
		s.recorder.Record(ctx, text, out)
	}
	return reply, nil
}

func (s *Session) fail(err error) core.ChatMessage {
	metrics.TurnsTotal.WithLabelValues("error").Inc()
	msg := core.NewChatMessage(core.SenderSystem, errorPrefix+err.Error())
	s.append(msg)
	s.emit(Event{Kind: EventFailed, Message: msg})
	return msg
}

func (s *Session) append(msg core.ChatMessage) {
	s.mu.Lock()
	s.transcript = append(s.transcript, msg)
	s.mu.Unlock()
	s.emit(Event{Kind: EventAdded, Message: msg})
}

func (s *Session) remove(id string) {
	s.mu.Lock()
	var removed *core.ChatMessage
	for i, m := range s.transcript {
		if m.ID == id {
			removed = &m
			s.transcript = append(s.transcript[:i], s.transcript[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	if removed != nil {
		s.emit(Event{Kind: EventRemoved, Message: *removed})
	}
}

// Subscribe registers fn for every later event and returns a function that
// removes it. fn runs on the goroutine that changed the transcript.
func (s *Session) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.lmu.Lock()
	defer s.lmu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})

	return func() {
		s.lmu.Lock()
		defer s.lmu.Unlock()
		s.listeners = slices.DeleteFunc(s.listeners, func(l listener) bool { return l.id == id })
	}
}

func (s *Session) emit(e Event) {
	s.lmu.Lock()
	listeners := slices.Clone(s.listeners)
	s.lmu.Unlock()

	for _, l := range listeners {
		l.fn(e)
	}
}
