package persona

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/sandevgo/auralis/internal/core"
)

const (
	fallbackResponse   = "Desculpe, não consegui processar sua solicitação no momento."
	fallbackReflection = "A interação não produziu uma reflexão clara."
	defaultImportance  = 5
	minImportance      = 1
	maxImportance      = 10
)

// RawOutput is the model answer before normalization.
type RawOutput struct {
	Response   *string  `json:"response"`
	Reflection *string  `json:"reflection"`
	Emotion    *string  `json:"emotion"`
	Importance *float64 `json:"importance"`
}

func FallbackOutput() core.GenerationOutput {
	return core.GenerationOutput{
		Response:   fallbackResponse,
		Reflection: fallbackReflection,
		Emotion:    string(core.EmotionConfusao),
		Importance: defaultImportance,
	}
}

// ParseOutput decodes the first complete output object in content, ignoring
// prose and code fences around it. It returns nil when there is none, when
// it does not decode, or when a text field is missing.
func ParseOutput(content string) *RawOutput {
	for start := strings.IndexByte(content, '{'); start >= 0; {
		if raw := decodeOutput(content[start:]); raw != nil {
			return raw
		}
		next := strings.IndexByte(content[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return nil
}

// decodeOutput reads one JSON value from the head of s; trailing bytes are
// left unread.
func decodeOutput(s string) *RawOutput {
	var raw RawOutput
	if err := json.NewDecoder(strings.NewReader(s)).Decode(&raw); err != nil {
		return nil
	}
	if raw.Response == nil || raw.Reflection == nil || raw.Emotion == nil {
		return nil
	}
	return &raw
}

// Normalize enforces 1 <= importance <= 10. A nil raw yields FallbackOutput.
func Normalize(raw *RawOutput) core.GenerationOutput {
	if raw == nil {
		return FallbackOutput()
	}

	return core.GenerationOutput{
		Response:   *raw.Response,
		Reflection: *raw.Reflection,
		Emotion:    *raw.Emotion,
		Importance: NormalizeImportance(raw.Importance),
	}
}

// NormalizeImportance treats missing, zero and NaN as 5, rounds half up and
// clamps to [1, 10].
func NormalizeImportance(v *float64) int {
	x := 0.0
	if v != nil {
		x = *v
	}
	if x == 0 || math.IsNaN(x) {
		x = defaultImportance
	}

	r := math.Floor(x + 0.5)
	switch {
	case r < minImportance:
		return minImportance
	case r > maxImportance:
		return maxImportance
	}
	return int(r)
}
