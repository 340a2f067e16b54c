package persona

import (
	_ "embed"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/sandevgo/auralis/internal/core"
)

var (
	//go:embed data/prompts/response.md.tmpl
	responseInst     string
	responseInstTmpl = template.Must(template.New("response").Funcs(funcMap()).Parse(responseInst))
)

func funcMap() template.FuncMap {
	return sprig.TxtFuncMap()
}

type promptData struct {
	core.GenerationRequest
	Emotions []string
	Fields   []string
}

// Render turns a request into the system prompt plus the user turn.
func Render(req core.GenerationRequest) ([]core.Message, error) {
	emotions := make([]string, 0, len(core.Emotions))
	for _, e := range core.Emotions {
		emotions = append(emotions, string(e))
	}

	var sb strings.Builder
	err := responseInstTmpl.Execute(&sb, promptData{
		GenerationRequest: req,
		Emotions:          emotions,
		Fields:            []string{"response", "reflection", "emotion", "importance"},
	})
	if err != nil {
		return nil, err
	}

	return []core.Message{
		{Role: core.RoleSystem, Content: strings.TrimSpace(sb.String())},
		{Role: core.RoleUser, Content: req.UserMessage},
	}, nil
}
