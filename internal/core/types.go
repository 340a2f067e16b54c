package core

import "encoding/json"

const (
	AppName          = "Auralis"
	AppUserAgent     = "Auralis-Client/0.1"
	AppRepositoryURL = "https://github.com/sandevgo/auralis"
	AppVersion       = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Reasoning string `json:"reasoning,omitempty"`
}

type Model struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContextLength int    `json:"context_length,omitempty"`
}

// ResponseFormat asks a provider for JSON conforming to Schema.
type ResponseFormat struct {
	Name   string
	Schema json.RawMessage
}
