package persona

import (
	"math"

	"github.com/sandevgo/auralis/internal/core"
)

const (
	DefaultMemoryLimit = 5
	notAvailable       = "N/A"
)

// Assembler builds generation requests from the fetched context.
type Assembler struct {
	limit int
}

func NewAssembler(limit int) *Assembler {
	if limit <= 0 {
		limit = DefaultMemoryLimit
	}
	return &Assembler{limit: limit}
}

// Assemble keeps the first limit memories, which arrive newest first, and
// fills blank memory fields so the prompt never shows empty slots.
func (a *Assembler) Assemble(userMessage string, c core.Context) core.GenerationRequest {
	memories := c.Memories
	if len(memories) > a.limit {
		memories = memories[:a.limit]
	}

	prompt := make([]core.PromptMemory, 0, len(memories))
	for _, m := range memories {
		pm := core.PromptMemory{
			Content:    m.Content,
			Reflection: m.Reflection,
			Emotion:    m.Emotion,
			Importance: m.Importance,
		}
		if pm.Reflection == "" {
			pm.Reflection = notAvailable
		}
		if pm.Emotion == "" {
			pm.Emotion = notAvailable
		}
		if math.IsNaN(pm.Importance) {
			pm.Importance = 0
		}
		prompt = append(prompt, pm)
	}

	values := c.Values
	if values == nil {
		values = []core.Value{}
	}

	return core.GenerationRequest{
		UserMessage: userMessage,
		Identity:    c.Identity,
		Values:      values,
		Memories:    prompt,
	}
}
