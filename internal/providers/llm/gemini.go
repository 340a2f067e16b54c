package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sandevgo/auralis/internal/core"
	"google.golang.org/genai"
)

// Gemini uses the Google GenAI SDK, which supports JSON schema constrained
// output natively.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Chat(ctx context.Context, history []core.Message, format *core.ResponseFormat) (core.Message, error) {
	system, contents := toGenAIContents(history)

	cfg := &genai.GenerateContentConfig{SystemInstruction: system}
	if format != nil {
		var schema map[string]any
		if err := json.Unmarshal(format.Schema, &schema); err != nil {
			return core.Message{}, fmt.Errorf("decode response schema: %w", err)
		}
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseJsonSchema = schema
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return core.Message{}, fmt.Errorf("gemini generate: %w", err)
	}

	return core.Message{Role: core.RoleAssistant, Content: resp.Text()}, nil
}

func (g *Gemini) Models(ctx context.Context) ([]core.Model, error) {
	var models []core.Model
	for m, err := range g.client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("list gemini models: %w", err)
		}
		if !supportsGenerate(m.SupportedActions) {
			continue
		}
		models = append(models, core.Model{
			ID:            strings.TrimPrefix(m.Name, "models/"),
			Name:          m.DisplayName,
			ContextLength: int(m.InputTokenLimit),
		})
	}
	return models, nil
}

// toGenAIContents splits system messages into the system instruction and
// maps the remaining roles onto user/model turns.
func toGenAIContents(history []core.Message) (*genai.Content, []*genai.Content) {
	var (
		system   []*genai.Part
		contents []*genai.Content
	)
	for _, m := range history {
		switch m.Role {
		case core.RoleSystem:
			system = append(system, genai.NewPartFromText(m.Content))
		case core.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	if len(system) == 0 {
		return nil, contents
	}
	return &genai.Content{Parts: system}, contents
}

func supportsGenerate(actions []string) bool {
	if len(actions) == 0 {
		return true
	}
	for _, a := range actions {
		if a == "generateContent" {
			return true
		}
	}
	return false
}
