package persona

import (
	"math"
	"testing"
	"unicode/utf8"

	"github.com/sandevgo/auralis/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNormalizeImportance(t *testing.T) {
	tests := []struct {
		name string
		in   *float64
		want int
	}{
		{name: "missing", in: nil, want: 5},
		{name: "zero", in: ptr(0.0), want: 5},
		{name: "nan", in: ptr(math.NaN()), want: 5},
		{name: "rounds up", in: ptr(3.7), want: 4},
		{name: "rounds down", in: ptr(3.2), want: 3},
		{name: "half goes up", in: ptr(4.5), want: 5},
		{name: "negative clamps", in: ptr(-3.0), want: 1},
		{name: "small positive clamps", in: ptr(0.2), want: 1},
		{name: "above range clamps", in: ptr(11.0), want: 10},
		{name: "ten and a half clamps", in: ptr(10.5), want: 10},
		{name: "positive infinity", in: ptr(math.Inf(1)), want: 10},
		{name: "negative infinity", in: ptr(math.Inf(-1)), want: 1},
		{name: "already integral", in: ptr(7.0), want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeImportance(tt.in))
		})
	}
}

func TestNormalizeImportance_RangeAndMonotonic(t *testing.T) {
	prev := math.MinInt
	for x := -20.0; x <= 20.0; x += 0.05 {
		if x > -0.001 && x < 0.001 {
			continue // zero maps to the default
		}
		got := NormalizeImportance(ptr(x))
		require.GreaterOrEqual(t, got, 1, "x=%v", x)
		require.LessOrEqual(t, got, 10, "x=%v", x)
		if x > 0 {
			require.GreaterOrEqual(t, got, prev, "x=%v", x)
			prev = got
		}
	}
}

func TestNormalize(t *testing.T) {
	t.Run("nil yields fallback", func(t *testing.T) {
		assert.Equal(t, core.GenerationOutput{
			Response:   "Desculpe, não consegui processar sua solicitação no momento.",
			Reflection: "A interação não produziu uma reflexão clara.",
			Emotion:    "confusao",
			Importance: 5,
		}, Normalize(nil))
	})

	t.Run("strings pass through", func(t *testing.T) {
		out := Normalize(&RawOutput{
			Response:   ptr("Olá!"),
			Reflection: ptr("Um novo contato."),
			Emotion:    ptr("Euforia"),
			Importance: ptr(3.7),
		})
		assert.Equal(t, "Olá!", out.Response)
		assert.Equal(t, "Euforia", out.Emotion)
		assert.Equal(t, 4, out.Importance)
	})
}

func TestParseOutput(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantNil bool
		want    string
	}{
		{
			name:    "plain object",
			content: `{"response":"oi","reflection":"r","emotion":"alegria","importance":6}`,
			want:    "oi",
		},
		{
			name:    "fenced object",
			content: "```json\n{\"response\":\"oi\",\"reflection\":\"r\",\"emotion\":\"alegria\"}\n```",
			want:    "oi",
		},
		{
			name:    "prose around object",
			content: "Aqui está:\n{\"response\":\"oi\",\"reflection\":\"r\",\"emotion\":\"alegria\",\"importance\":2} fim",
			want:    "oi",
		},
		{
			name:    "brace in prose after object",
			content: "{\"response\":\"oi\",\"reflection\":\"r\",\"emotion\":\"alegria\"}\nObs: use {nome} no lugar.",
			want:    "oi",
		},
		{
			name:    "brace in prose before object",
			content: "Formato {resposta}:\n{\"response\":\"oi\",\"reflection\":\"r\",\"emotion\":\"alegria\"}",
			want:    "oi",
		},
		{
			name:    "nested braces in strings",
			content: `{"response":"use {x} e }","reflection":"r","emotion":"alegria"} }`,
			want:    "use {x} e }",
		},
		{name: "no object", content: "só texto", wantNil: true},
		{name: "broken json", content: `{"response": "oi",`, wantNil: true},
		{name: "missing emotion", content: `{"response":"oi","reflection":"r"}`, wantNil: true},
		{name: "wrong importance type", content: `{"response":"oi","reflection":"r","emotion":"x","importance":"alta"}`, wantNil: true},
		{name: "empty", content: "", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseOutput(tt.content)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got.Response)
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "short", in: "olá", n: 10, want: "olá"},
		{name: "ascii cut", in: "abcdef", n: 3, want: "abc..."},
		// "ã" is two bytes; a cut at 2 would split it.
		{name: "no split rune", in: "não sei", n: 2, want: "n..."},
		{name: "rune boundary", in: "não sei", n: 3, want: "nã..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
