package storiesimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/wanderreel/wanderreel/internal/stories"
	"github.com/wanderreel/wanderreel/internal/store"
	"github.com/wanderreel/wanderreel/pkg/config"
	"github.com/wanderreel/wanderreel/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Store  store.Store
	Logger logger.Logger
	Config *config.Config
}

type SweeperImpl struct {
	Store  store.Store
	Logger logger.Logger
	Config *config.Config
}

func New(opts Opts) *SweeperImpl {
	return &SweeperImpl{
		Store:  opts.Store,
		Logger: opts.Logger,
		Config: opts.Config,
	}
}

var _ stories.Sweeper = (*SweeperImpl)(nil)

// ScheduleSweep sets up an hourly job that drops stories older than the
// configured TTL. The scheduler shuts down when ctx is cancelled.
func (s *SweeperImpl) ScheduleSweep(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create story sweep scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				s.Logger.Info("Context cancelled, stopping story sweep job")
				return
			}

			removed := s.Store.ExpireStories(s.Config.Stories.TTL)
			if removed > 0 {
				s.Logger.Info("Expired stories", "count", removed, "ttl", s.Config.Stories.TTL.String())
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule story sweep: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		s.Logger.Info("Stopping story sweep scheduler")
		if err := scheduler.Shutdown(); err != nil {
			s.Logger.Error("Failed to shut down story sweep scheduler", "error", err)
		}
	}()

	return nil
}
