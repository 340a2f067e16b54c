package profile

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/sandevgo/auralis/internal/core"
	"github.com/sandevgo/auralis/internal/providers/auralis"
	"github.com/sandevgo/auralis/pkg/log"
	"golang.org/x/sync/errgroup"
)

const (
	recentMemories = 5
	latestIdeas    = 3
)

type Source interface {
	GetIdentity(ctx context.Context) (*core.Identity, error)
	GetValues(ctx context.Context) ([]core.Value, error)
	GetMemories(ctx context.Context, q auralis.MemoryQuery) ([]core.Memory, error)
	GetSelfConcept(ctx context.Context) (*core.SelfConcept, error)
	GetDailyIdeas(ctx context.Context) ([]core.DailyIdea, error)
	GetMemorySegments(ctx context.Context) ([]core.MemorySegment, error)
}

// Profile is what the service currently knows about Auralis.
type Profile struct {
	Identity       *core.Identity    `json:"identity"`
	Values         []core.Value      `json:"values"`
	RecentMemories []core.Memory     `json:"recent_memories"`
	SelfConcept    *core.SelfConcept `json:"self_concept"`
	DailyIdeas     []core.DailyIdea  `json:"daily_ideas"`
}

type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// Load reads every profile part concurrently. Parts that fail stay empty and
// their errors are joined into the returned error, so callers can show what
// did load.
func (s *Service) Load(ctx context.Context) (Profile, error) {
	var (
		p    Profile
		mu   sync.Mutex
		errs []error
		g    errgroup.Group
	)

	collect := func(part string, err error) {
		mu.Lock()
		defer mu.Unlock()
		errs = append(errs, fmt.Errorf("%s: %w", part, err))
	}

	g.Go(func() error {
		id, err := s.source.GetIdentity(ctx)
		if err != nil {
			collect("identity", err)
			return nil
		}
		p.Identity = id
		return nil
	})
	g.Go(func() error {
		values, err := s.source.GetValues(ctx)
		if err != nil {
			collect("values", err)
			return nil
		}
		p.Values = values
		return nil
	})
	g.Go(func() error {
		memories, err := s.source.GetMemories(ctx, auralis.MemoryQuery{Limit: recentMemories, OrderBy: "desc"})
		if err != nil {
			collect("memories", err)
			return nil
		}
		p.RecentMemories = memories
		return nil
	})
	g.Go(func() error {
		sc, err := s.source.GetSelfConcept(ctx)
		if err != nil {
			collect("self concept", err)
			return nil
		}
		p.SelfConcept = sc
		return nil
	})
	g.Go(func() error {
		ideas, err := s.source.GetDailyIdeas(ctx)
		if err != nil {
			collect("daily ideas", err)
			return nil
		}
		p.DailyIdeas = LatestIdeas(ideas, latestIdeas)
		return nil
	})

	_ = g.Wait()

	err := errors.Join(errs...)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("profile loaded partially")
	}
	return p, err
}

// LatestIdeas returns the n most recent ideas by date.
func LatestIdeas(ideas []core.DailyIdea, n int) []core.DailyIdea {
	sorted := slices.Clone(ideas)
	slices.SortStableFunc(sorted, func(a, b core.DailyIdea) int {
		return b.Date.Compare(a.Date)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
