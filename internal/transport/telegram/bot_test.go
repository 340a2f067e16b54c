package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionID(t *testing.T) {
	tests := []struct {
		chatID int64
		want   string
	}{
		{chatID: 42, want: "telegram-42"},
		{chatID: -1001234567890, want: "telegram--1001234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, sessionID(tt.chatID))
		})
	}
}
