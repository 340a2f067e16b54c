package llm

import "strings"

// CustomOpenAI targets any server speaking the OpenAI chat completions API
// (vLLM, LM Studio, llama.cpp server...).
type CustomOpenAI struct {
	*OpenAICompatible
}

func NewCustomOpenAI(baseURL, apiKey, model string) *CustomOpenAI {
	return &CustomOpenAI{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:    strings.TrimSuffix(strings.TrimRight(baseURL, "/"), "/v1"),
			APIKey:     apiKey,
			Model:      model,
			AuthHeader: "Authorization",
			AuthPrefix: "Bearer ",
		}),
	}
}
