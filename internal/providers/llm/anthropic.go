package llm

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/sandevgo/auralis/internal/core"
)

const (
	anthropicVersion   = "2023-06-01"
	anthropicMaxTokens = 4096
)

type Anthropic struct {
	baseProvider
}

func NewAnthropic(apiKey, model string) *Anthropic {
	return &Anthropic{
		baseProvider: newBaseProvider("https://api.anthropic.com", apiKey, model),
	}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat calls the messages API. Anthropic has no native JSON schema mode, so
// the schema is appended to the system prompt.
func (a *Anthropic) Chat(ctx context.Context, history []core.Message, format *core.ResponseFormat) (core.Message, error) {
	var (
		system   []string
		messages []anthropicMessage
	)
	for _, m := range history {
		if m.Role == core.RoleSystem {
			system = append(system, m.Content)
			continue
		}
		messages = append(messages, anthropicMessage{Role: m.Role, Content: m.Content})
	}
	if format != nil {
		system = append(system, "Responda somente com um objeto JSON válido que siga este JSON Schema, sem texto adicional:\n"+string(format.Schema))
	}

	payload := map[string]any{
		"model":      a.model,
		"max_tokens": anthropicMaxTokens,
		"messages":   messages,
	}
	if len(system) > 0 {
		payload["system"] = strings.Join(system, "\n\n")
	}

	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := a.call(ctx, http.MethodPost, "/v1/messages", payload, a.headers(), &result); err != nil {
		return core.Message{}, err
	}

	var text strings.Builder
	for _, c := range result.Content {
		if c.Type == "text" {
			text.WriteString(c.Text)
		}
	}
	return core.Message{Role: core.RoleAssistant, Content: text.String()}, nil
}

// Models pages through /v1/models. The API does not report context sizes.
func (a *Anthropic) Models(ctx context.Context) ([]core.Model, error) {
	var models []core.Model

	query := url.Values{"limit": {"1000"}}
	for {
		var page struct {
			Data []struct {
				ID          string `json:"id"`
				DisplayName string `json:"display_name"`
				Type        string `json:"type"`
			} `json:"data"`
			HasMore bool   `json:"has_more"`
			LastID  string `json:"last_id"`
		}
		if err := a.call(ctx, http.MethodGet, "/v1/models?"+query.Encode(), nil, a.headers(), &page); err != nil {
			return nil, err
		}

		for _, m := range page.Data {
			if m.Type == "model" {
				models = append(models, core.Model{ID: m.ID, Name: m.DisplayName})
			}
		}

		if !page.HasMore || page.LastID == "" {
			return models, nil
		}
		query.Set("after_id", page.LastID)
	}
}

func (a *Anthropic) headers() map[string]string {
	return map[string]string{
		"x-api-key":         a.apiKey,
		"anthropic-version": anthropicVersion,
	}
}
