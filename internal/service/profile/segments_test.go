package profile

import (
	"context"
	"testing"
	"time"

	"github.com/sandevgo/auralis/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentMemories(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2024, 5, 1, h, 0, 0, 0, time.UTC) }

	raw := []core.MemorySegment{
		{ID: 1, SegmentType: "Short-Term", Content: "old short", Timestamp: at(1)},
		{ID: 2, SegmentType: "short_term", Content: "new short", Timestamp: at(5)},
		{ID: 3, SegmentType: "LONG_TERM", Content: "long"},
		{ID: 4, SegmentType: "medium-term", Content: "medium low id"},
		{ID: 9, SegmentType: "medium_term", Content: "medium high id"},
		{ID: 5, SegmentType: "working", Content: "dropped"},
		{ID: 6, SegmentType: "", Content: "dropped too"},
	}

	got := SegmentMemories(raw)

	require.Len(t, got.ShortTerm, 2)
	assert.Equal(t, "new short", got.ShortTerm[0].Content)
	assert.Equal(t, "old short", got.ShortTerm[1].Content)
	assert.Equal(t, "short_term", got.ShortTerm[1].SegmentType)

	require.Len(t, got.MediumTerm, 2)
	assert.Equal(t, int64(9), got.MediumTerm[0].ID)

	require.Len(t, got.LongTerm, 1)
	assert.Equal(t, "long_term", got.LongTerm[0].SegmentType)
}

func TestSegmentMemories_Empty(t *testing.T) {
	got := SegmentMemories(nil)
	assert.NotNil(t, got.ShortTerm)
	assert.Empty(t, got.ShortTerm)
	assert.Empty(t, got.MediumTerm)
	assert.Empty(t, got.LongTerm)
}

func TestService_Segments(t *testing.T) {
	src := &fakeSource{segments: []core.MemorySegment{{ID: 1, SegmentType: "Short-Term"}}}
	got, err := NewService(src).Segments(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.ShortTerm, 1)
}
