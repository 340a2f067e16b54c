package core

// PromptMemory is a memory as it appears in a generation request, with
// fallbacks already applied.
type PromptMemory struct {
	Content    string  `json:"content"`
	Reflection string  `json:"reflection"`
	Emotion    string  `json:"emotion"`
	Importance float64 `json:"importance"`
}

type GenerationRequest struct {
	UserMessage string         `json:"user_message"`
	Identity    Identity       `json:"identity"`
	Values      []Value        `json:"values"`
	Memories    []PromptMemory `json:"memories"`
}

// GenerationOutput always satisfies 1 <= Importance <= 10 once normalized.
type GenerationOutput struct {
	Response   string `json:"response"`
	Reflection string `json:"reflection"`
	Emotion    string `json:"emotion"`
	Importance int    `json:"importance"`
}

type Emotion string

const (
	EmotionCuriosidade    Emotion = "curiosidade"
	EmotionTristeza       Emotion = "tristeza"
	EmotionConfusao       Emotion = "confusao"
	EmotionAlegria        Emotion = "alegria"
	EmotionNeutralidade   Emotion = "neutralidade"
	EmotionSatisfacao     Emotion = "satisfacao"
	EmotionVergonha       Emotion = "vergonha"
	EmotionDeterminacao   Emotion = "determinacao"
	EmotionEntusiasmo     Emotion = "entusiasmo"
	EmotionNostalgia      Emotion = "nostalgia"
	EmotionGratidao       Emotion = "gratidao"
	EmotionSurpresa       Emotion = "surpresa"
	EmotionMedo           Emotion = "medo"
	EmotionRaiva          Emotion = "raiva"
	EmotionEsperanca      Emotion = "esperanca"
	EmotionTranquilidade  Emotion = "tranquilidade"
	EmotionPreocupacao    Emotion = "preocupacao"
	EmotionDesapontamento Emotion = "desapontamento"
	EmotionOrgulho        Emotion = "orgulho"
	EmotionAlivio         Emotion = "alivio"
	EmotionTedio          Emotion = "tedio"
	EmotionInteresse      Emotion = "interesse"
)

// Emotions lists the labels the model is asked to choose from.
var Emotions = []Emotion{
	EmotionCuriosidade, EmotionTristeza, EmotionConfusao, EmotionAlegria,
	EmotionNeutralidade, EmotionSatisfacao, EmotionVergonha, EmotionDeterminacao,
	EmotionEntusiasmo, EmotionNostalgia, EmotionGratidao, EmotionSurpresa,
	EmotionMedo, EmotionRaiva, EmotionEsperanca, EmotionTranquilidade,
	EmotionPreocupacao, EmotionDesapontamento, EmotionOrgulho, EmotionAlivio,
	EmotionTedio, EmotionInteresse,
}

func (e Emotion) Known() bool {
	for _, known := range Emotions {
		if e == known {
			return true
		}
	}
	return false
}
