package srv

import (
	"context"
	"errors"
	"time"

	"github.com/sandevgo/auralis/pkg/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Run starts every service and blocks until ctx is cancelled or one of them
// fails. Services are then shut down in reverse order.
func Run(ctx context.Context, services []Service) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, service := range services {
		g.Go(func() error {
			if err := service.Start(gctx); err != nil {
				log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to start", service)
				return err
			}
			return nil
		})
	}

	<-gctx.Done()
	shutdown(ctx, services)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func shutdown(ctx context.Context, services []Service) {
	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(sctx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", services[i])
		}
	}
}
