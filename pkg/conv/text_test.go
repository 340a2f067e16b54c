package conv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownToText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:  "empty",
			input: "   ",
		},
		{
			name:     "emphasis is stripped",
			input:    "Olá, **mundo**!",
			contains: []string{"Olá,", "mundo"},
			excludes: []string{"**", "<strong>"},
		},
		{
			name:     "list items survive",
			input:    "- um\n- dois",
			contains: []string{"um", "dois"},
			excludes: []string{"<li>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarkdownToText(tt.input)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestSplitChunks(t *testing.T) {
	t.Run("short text is one chunk", func(t *testing.T) {
		assert.Equal(t, []string{"abc"}, SplitChunks("abc", 10))
	})

	t.Run("prefers newline boundaries", func(t *testing.T) {
		text := strings.Repeat("a", 8) + "\n" + strings.Repeat("b", 8)
		assert.Equal(t, []string{strings.Repeat("a", 8), strings.Repeat("b", 8)}, SplitChunks(text, 10))
	})

	t.Run("hard cut without newline", func(t *testing.T) {
		chunks := SplitChunks(strings.Repeat("x", 25), 10)
		require.Len(t, chunks, 3)
		for _, c := range chunks {
			assert.LessOrEqual(t, len(c), 10)
		}
	})
}
