package persona

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sandevgo/auralis/internal/core"
	"github.com/sandevgo/auralis/internal/metrics"
	"github.com/sandevgo/auralis/pkg/log"
)

var ErrUnavailable = errors.New("Auralis is currently unable to respond. Please try again later.")

type ContextSource interface {
	FetchContext(ctx context.Context) core.Context
}

// Responder runs one generation: fetch context, build the prompt, call the
// model and normalize its answer.
type Responder struct {
	source    ContextSource
	assembler *Assembler
	provider  core.AIProvider
	format    *core.ResponseFormat
}

func NewResponder(source ContextSource, assembler *Assembler, provider core.AIProvider) *Responder {
	return &Responder{
		source:    source,
		assembler: assembler,
		provider:  provider,
		format:    ResponseFormat(),
	}
}

func (r *Responder) Respond(ctx context.Context, userMessage string) (core.GenerationOutput, error) {
	logger := log.FromCtx(ctx)

	req := r.assembler.Assemble(userMessage, r.source.FetchContext(ctx))
	messages, err := Render(req)
	if err != nil {
		return core.GenerationOutput{}, fmt.Errorf("render prompt: %w", err)
	}

	start := time.Now()
	msg, err := r.provider.Chat(ctx, messages, r.format)
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return core.GenerationOutput{}, fmt.Errorf("generate: %w", err)
	}

	raw := ParseOutput(msg.Content)
	if raw == nil {
		metrics.NormalizerFallbacksTotal.Inc()
		logger.Warn().Str("content", truncate(msg.Content, 200)).Msg("model answer is not valid structured output, using fallback")
	}

	out := Normalize(raw)
	if !core.Emotion(out.Emotion).Known() {
		logger.Warn().Str("emotion", out.Emotion).Msg("emotion outside the known set")
	}
	if strings.TrimSpace(out.Response) == "" {
		return core.GenerationOutput{}, ErrUnavailable
	}

	logger.Debug().
		Str("emotion", out.Emotion).
		Int("importance", out.Importance).
		Msg("generation normalized")
	return out, nil
}

// truncate keeps at most n bytes of s without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
