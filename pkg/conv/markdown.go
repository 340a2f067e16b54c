package conv

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	tgPolicy   = telegramPolicy()
)

// telegramPolicy keeps the tags listed in https://core.telegram.org/bots/api#html-style
func telegramPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "strong", "i", "em", "u", "ins", "s", "strike", "del", "code", "pre", "blockquote")
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("class").OnElements("code")
	return p
}

func renderHTML(md string) []byte {
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.FlagsNone})
	return markdown.Render(p.Parse([]byte(md)), renderer)
}

// MarkdownToTelegramHTML renders md and strips every tag Telegram rejects.
// Headings and lists collapse to their text.
func MarkdownToTelegramHTML(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	return tgPolicy.Sanitize(string(renderHTML(md)))
}
