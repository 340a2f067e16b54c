package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSegmentType(t *testing.T) {
	tests := []struct {
		raw    string
		want   SegmentType
		wantOK bool
	}{
		{raw: "short_term", want: SegmentShortTerm, wantOK: true},
		{raw: "Short-Term", want: SegmentShortTerm, wantOK: true},
		{raw: "MEDIUM-TERM", want: SegmentMediumTerm, wantOK: true},
		{raw: " long_term ", want: SegmentLongTerm, wantOK: true},
		{raw: "forever", want: "forever", wantOK: false},
		{raw: "", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := NormalizeSegmentType(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestEmotionKnown(t *testing.T) {
	assert.Len(t, Emotions, 22)
	assert.True(t, EmotionAlegria.Known())
	assert.True(t, Emotion("interesse").Known())
	assert.False(t, Emotion("Alegria").Known())
	assert.False(t, Emotion("euforia").Known())
}
