package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sandevgo/auralis/internal/metrics"
)

const (
	DefaultMaxSessions = 1000
	DefaultIdleTTL     = 24 * time.Hour
)

type RegistryOption func(*registryOptions)

type registryOptions struct {
	maxSessions int
	idleTTL     time.Duration
}

// WithMaxSessions caps the number of live sessions. The least recently used
// one is dropped when a new key arrives at the cap.
func WithMaxSessions(n int) RegistryOption {
	return func(o *registryOptions) {
		if n > 0 {
			o.maxSessions = n
		}
	}
}

// WithIdleTTL drops sessions not used for d.
func WithIdleTTL(d time.Duration) RegistryOption {
	return func(o *registryOptions) {
		if d > 0 {
			o.idleTTL = d
		}
	}
}

// Registry keeps one Session per conversation key (a Telegram chat, an HTTP
// client session). Sessions idle for longer than the TTL, or pushed out by the
// cap, are forgotten along with their transcripts.
type Registry struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *Session]
	factory  func(id string) *Session
}

func NewRegistry(factory func(id string) *Session, opts ...RegistryOption) *Registry {
	o := registryOptions{maxSessions: DefaultMaxSessions, idleTTL: DefaultIdleTTL}
	for _, opt := range opts {
		opt(&o)
	}

	return &Registry{
		sessions: expirable.NewLRU(o.maxSessions, func(string, *Session) {
			metrics.SessionsEvictedTotal.Inc()
		}, o.idleTTL),
		factory: factory,
	}
}

// Get returns the session for id, creating it on first use. An empty id
// gets a fresh random one. Every call restarts the session's idle timer.
func (r *Registry) Get(id string) *Session {
	if id == "" {
		id = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions.Get(id)
	if !ok {
		s = r.factory(id)
	}
	r.sessions.Add(id, s)
	return s
}

// Lookup returns an existing session without creating or touching it.
func (r *Registry) Lookup(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions.Peek(id)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions.Len()
}
