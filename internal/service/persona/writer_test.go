package persona

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sandevgo/auralis/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeStore struct {
	mu       sync.Mutex
	payloads []core.MemoryPayload
	err      error
	block    chan struct{}
	ctxErr   error
}

func (f *fakeStore) AddMemory(ctx context.Context, payload core.MemoryPayload) (core.Memory, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads = append(f.payloads, payload)
	f.ctxErr = ctx.Err()
	return core.Memory{}, f.err
}

func TestPayload(t *testing.T) {
	tests := []struct {
		name string
		out  core.GenerationOutput
		want core.MemoryPayload
	}{
		{
			name: "fields copied and emotion lowercased",
			out:  core.GenerationOutput{Reflection: "r", Emotion: "Alegria", Importance: 4},
			want: core.MemoryPayload{Type: "episodic", Content: "Hello", Reflection: "r", Emotion: "alegria", Importance: 4},
		},
		{
			name: "blank fields get defaults",
			out:  core.GenerationOutput{Reflection: " ", Emotion: "", Importance: 7},
			want: core.MemoryPayload{Type: "episodic", Content: "Hello", Reflection: "Nenhuma reflexão específica.", Emotion: "neutralidade", Importance: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Payload("Hello", tt.out))
		})
	}
}

func TestMemoryWriter_RecordIsDetached(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := &fakeStore{block: make(chan struct{})}
	w := NewMemoryWriter(store, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	returned := make(chan struct{})
	go func() {
		w.Record(ctx, "Hello", core.GenerationOutput{Reflection: "r", Emotion: "alegria", Importance: 4})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Record blocked on the store")
	}

	// Cancelling the turn must not cancel the write.
	cancel()
	close(store.block)
	w.Wait()

	require.Len(t, store.payloads, 1)
	assert.Equal(t, "Hello", store.payloads[0].Content)
	assert.NoError(t, store.ctxErr)
}

func TestMemoryWriter_FailureIsSwallowed(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := &fakeStore{err: errors.New("503 Service Unavailable")}
	w := NewMemoryWriter(store, time.Second)

	w.Record(context.Background(), "Hello", core.GenerationOutput{Importance: 5})
	require.NoError(t, w.Shutdown(context.Background()))
	assert.Len(t, store.payloads, 1)
}

func TestMemoryWriter_ShutdownHonoursContext(t *testing.T) {
	store := &fakeStore{block: make(chan struct{})}
	w := NewMemoryWriter(store, time.Second)
	w.Record(context.Background(), "Hello", core.GenerationOutput{Importance: 5})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, w.Shutdown(ctx), context.DeadlineExceeded)

	close(store.block)
	w.Wait()
}
