package persona

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sandevgo/auralis/internal/core"
	"github.com/sandevgo/auralis/internal/metrics"
	"github.com/sandevgo/auralis/pkg/log"
)

const (
	defaultWriteTimeout = 15 * time.Second
	noReflection        = "Nenhuma reflexão específica."
)

type MemoryStore interface {
	AddMemory(ctx context.Context, payload core.MemoryPayload) (core.Memory, error)
}

// MemoryWriter persists one episodic memory per completed turn. Writes run
// detached from the turn and their failures are only logged.
type MemoryWriter struct {
	store   MemoryStore
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewMemoryWriter(store MemoryStore, timeout time.Duration) *MemoryWriter {
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}
	return &MemoryWriter{store: store, timeout: timeout}
}

// Payload builds the record for a turn. Importance is copied as is.
func Payload(userMessage string, out core.GenerationOutput) core.MemoryPayload {
	reflection := out.Reflection
	if strings.TrimSpace(reflection) == "" {
		reflection = noReflection
	}
	emotion := out.Emotion
	if strings.TrimSpace(emotion) == "" {
		emotion = string(core.EmotionNeutralidade)
	}

	return core.MemoryPayload{
		Type:       core.MemoryTypeEpisodic,
		Content:    userMessage,
		Reflection: reflection,
		Emotion:    strings.ToLower(emotion),
		Importance: out.Importance,
	}
}

// Record starts the write and returns immediately.
func (w *MemoryWriter) Record(ctx context.Context, userMessage string, out core.GenerationOutput) {
	payload := Payload(userMessage, out)
	wctx := context.WithoutCancel(ctx)

	w.wg.Go(func() {
		wctx, cancel := context.WithTimeout(wctx, w.timeout)
		defer cancel()

		logger := log.FromCtx(wctx)
		if _, err := w.store.AddMemory(wctx, payload); err != nil {
			metrics.MemoryWritesTotal.WithLabelValues("error").Inc()
			logger.Error().Err(err).Msg("failed to save memory")
			return
		}
		metrics.MemoryWritesTotal.WithLabelValues("ok").Inc()
		logger.Debug().Int("importance", payload.Importance).Msg("memory saved")
	})
}

// Wait blocks until every started write has finished.
func (w *MemoryWriter) Wait() {
	w.wg.Wait()
}

// Shutdown waits for in-flight writes or until ctx is done.
func (w *MemoryWriter) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
