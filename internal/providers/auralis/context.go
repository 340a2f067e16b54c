package auralis

import (
	"context"

	"github.com/sandevgo/auralis/internal/core"
	"github.com/sandevgo/auralis/internal/metrics"
	"github.com/sandevgo/auralis/pkg/log"
	"golang.org/x/sync/errgroup"
)

// FetchContext reads identity, values and recent memories concurrently.
// It never fails: each read that errors degrades to its default.
func (c *Client) FetchContext(ctx context.Context) core.Context {
	logger := log.FromCtx(ctx)

	var (
		identity *core.Identity
		values   []core.Value
		memories []core.Memory
	)

	// Goroutines never return errors so one failed read does not cancel
	// the others.
	var g errgroup.Group

	g.Go(func() error {
		id, err := c.GetIdentity(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("identity unavailable, using default")
			metrics.ContextFetchFailuresTotal.WithLabelValues("identity").Inc()
			return nil
		}
		identity = id
		return nil
	})

	g.Go(func() error {
		v, err := c.GetValues(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("values unavailable, continuing without")
			metrics.ContextFetchFailuresTotal.WithLabelValues("values").Inc()
			return nil
		}
		values = v
		return nil
	})

	g.Go(func() error {
		m, err := c.GetMemories(ctx, MemoryQuery{Limit: c.recent, OrderBy: "desc"})
		if err != nil {
			logger.Warn().Err(err).Msg("memories unavailable, continuing without")
			metrics.ContextFetchFailuresTotal.WithLabelValues("memories").Inc()
			return nil
		}
		memories = m
		return nil
	})

	_ = g.Wait()

	out := core.Context{
		Identity: core.DefaultIdentity(),
		Values:   values,
		Memories: memories,
	}
	if identity != nil {
		out.Identity = *identity
	}
	if out.Values == nil {
		out.Values = []core.Value{}
	}
	if out.Memories == nil {
		out.Memories = []core.Memory{}
	}

	logger.Debug().
		Str("identity", out.Identity.Name).
		Int("values", len(out.Values)).
		Int("memories", len(out.Memories)).
		Msg("context fetched")
	return out
}
