package conv

import (
	"bytes"
	"strings"

	"github.com/inbucket/html2text"
)

// MarkdownToText flattens Markdown into plain terminal text.
func MarkdownToText(md string) (string, error) {
	if strings.TrimSpace(md) == "" {
		return "", nil
	}

	rendered := renderHTML(md)
	text, err := html2text.FromReader(bytes.NewReader(rendered), html2text.Options{
		OmitLinks:    false,
		PrettyTables: true,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// SplitChunks splits text into chunks of at most maxLen bytes, preferring
// newline boundaries in the latter two thirds of each chunk.
func SplitChunks(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := maxLen
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	return chunks
}
