package persona

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/sandevgo/auralis/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	memories := make([]core.Memory, 0, 7)
	for i := 0; i < 7; i++ {
		memories = append(memories, core.Memory{Content: string(rune('a' + i)), Importance: float64(i)})
	}
	memories[0].Reflection = "pensei"
	memories[0].Emotion = "alegria"

	req := NewAssembler(5).Assemble("Hello", core.Context{
		Identity: core.DefaultIdentity(),
		Memories: memories,
	})

	assert.Equal(t, "Hello", req.UserMessage)
	assert.Equal(t, "Auralis", req.Identity.Name)
	assert.NotNil(t, req.Values)
	require.Len(t, req.Memories, 5)

	assert.Equal(t, "a", req.Memories[0].Content)
	assert.Equal(t, "pensei", req.Memories[0].Reflection)
	assert.Equal(t, 0.0, req.Memories[0].Importance)

	assert.Equal(t, "N/A", req.Memories[1].Reflection)
	assert.Equal(t, "N/A", req.Memories[1].Emotion)
	assert.Equal(t, "e", req.Memories[4].Content)
}

func TestNewAssembler_DefaultLimit(t *testing.T) {
	assert.Equal(t, DefaultMemoryLimit, NewAssembler(0).limit)
}

func TestRender(t *testing.T) {
	req := core.GenerationRequest{
		UserMessage: "Qual é o seu nome?",
		Identity:    core.Identity{Name: "Auralis", Gender: "feminino", Origin: "rede"},
		Values:      []core.Value{{Name: "empatia", Description: "cuidar", Strength: 0.9}},
		Memories: []core.PromptMemory{
			{Content: "conversamos sobre música", Reflection: "N/A", Emotion: "alegria", Importance: 7},
		},
	}

	msgs, err := Render(req)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	system := msgs[0].Content
	assert.Equal(t, core.RoleSystem, msgs[0].Role)
	assert.Contains(t, system, "Nome: Auralis, Gênero: feminino, Origem: rede.")
	assert.Contains(t, system, "- empatia: cuidar (Força: 0.9)")
	assert.Contains(t, system, "- conversamos sobre música (Reflexão: N/A, Emoção: alegria, Importância: 7)")
	assert.Contains(t, system, "curiosidade, tristeza, confusao")
	assert.Contains(t, system, "response, reflection, emotion, importance")

	assert.Equal(t, core.Message{Role: core.RoleUser, Content: "Qual é o seu nome?"}, msgs[1])
}

func TestRender_Empty(t *testing.T) {
	msgs, err := Render(core.GenerationRequest{UserMessage: "oi", Identity: core.DefaultIdentity()})
	require.NoError(t, err)
	assert.Contains(t, msgs[0].Content, "Nenhuma memória recente registrada.")
	assert.Contains(t, msgs[0].Content, "Nenhum valor registrado.")
	assert.False(t, strings.Contains(msgs[0].Content, "<no value>"))
}

func TestOutputSchema(t *testing.T) {
	var schema struct {
		Type                 string   `json:"type"`
		Required             []string `json:"required"`
		AdditionalProperties *bool    `json:"additionalProperties"`
		Properties           map[string]struct {
			Type    string   `json:"type"`
			Enum    []string `json:"enum"`
			Minimum *float64 `json:"minimum"`
			Maximum *float64 `json:"maximum"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(OutputSchema(), &schema))

	assert.Equal(t, "object", schema.Type)
	assert.ElementsMatch(t, []string{"response", "reflection", "emotion", "importance"}, schema.Required)
	require.NotNil(t, schema.AdditionalProperties)
	assert.False(t, *schema.AdditionalProperties)
	assert.Len(t, schema.Properties["emotion"].Enum, 22)
	assert.Equal(t, "integer", schema.Properties["importance"].Type)
	require.NotNil(t, schema.Properties["importance"].Maximum)
	assert.Equal(t, 10.0, *schema.Properties["importance"].Maximum)
}
