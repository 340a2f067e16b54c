package core

import (
	"time"

	"github.com/google/uuid"
)

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
	SenderSystem    Sender = "system"
)

// Thoughts is the introspection attached to assistant messages.
type Thoughts struct {
	Reflection string `json:"reflection"`
	Emotion    string `json:"emotion"`
	Importance int    `json:"importance"`
}

// ChatMessage is a transcript entry. It lives only in memory.
type ChatMessage struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Thoughts  *Thoughts `json:"thoughts,omitempty"`
	Typing    bool      `json:"typing,omitempty"`
}

func NewChatMessage(sender Sender, text string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	}
}
