package llm

import (
	"testing"

	"github.com/sandevgo/auralis/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestToGenAIContents(t *testing.T) {
	system, contents := toGenAIContents([]core.Message{
		{Role: core.RoleSystem, Content: "você é Auralis"},
		{Role: core.RoleUser, Content: "oi"},
		{Role: core.RoleAssistant, Content: "olá"},
	})

	require.NotNil(t, system)
	require.Len(t, system.Parts, 1)
	assert.Equal(t, "você é Auralis", system.Parts[0].Text)

	require.Len(t, contents, 2)
	assert.Equal(t, string(genai.RoleUser), string(contents[0].Role))
	assert.Equal(t, string(genai.RoleModel), string(contents[1].Role))
}

func TestToGenAIContents_NoSystem(t *testing.T) {
	system, contents := toGenAIContents([]core.Message{{Role: core.RoleUser, Content: "oi"}})
	assert.Nil(t, system)
	assert.Len(t, contents, 1)
}

func TestSupportsGenerate(t *testing.T) {
	assert.True(t, supportsGenerate(nil))
	assert.True(t, supportsGenerate([]string{"countTokens", "generateContent"}))
	assert.False(t, supportsGenerate([]string{"embedContent"}))
}
