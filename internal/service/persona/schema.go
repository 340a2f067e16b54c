package persona

import (
	"encoding/json"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/sandevgo/auralis/internal/core"
)

const outputSchemaName = "auralis_response"

type outputShape struct {
	Response   string `json:"response" jsonschema:"description=Resposta de Auralis à mensagem do usuário em Markdown"`
	Reflection string `json:"reflection" jsonschema:"description=Reflexão de Auralis sobre a interação"`
	Emotion    string `json:"emotion" jsonschema:"description=Emoção associada à interação em português"`
	Importance int    `json:"importance" jsonschema:"description=Importância da interação,minimum=1,maximum=10"`
}

var (
	schemaOnce sync.Once
	schemaJSON json.RawMessage
)

// OutputSchema is the JSON schema of the structured answer, with the emotion
// enum filled from core.Emotions.
func OutputSchema() json.RawMessage {
	schemaOnce.Do(func() {
		r := &jsonschema.Reflector{
			DoNotReference: true,
			ExpandedStruct: true,
		}
		s := r.Reflect(&outputShape{})
		s.Version = ""
		s.ID = ""

		if emotion, ok := s.Properties.Get("emotion"); ok {
			for _, e := range core.Emotions {
				emotion.Enum = append(emotion.Enum, string(e))
			}
		}

		data, err := json.Marshal(s)
		if err != nil {
			panic(err)
		}
		schemaJSON = data
	})
	return schemaJSON
}

func ResponseFormat() *core.ResponseFormat {
	return &core.ResponseFormat{Name: outputSchemaName, Schema: OutputSchema()}
}
