package uploaderimpl

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/panjf2000/ants/v2"
	"github.com/wanderreel/wanderreel/internal/drafts"
	"github.com/wanderreel/wanderreel/internal/ratelimit"
	"github.com/wanderreel/wanderreel/internal/uploader"
	"github.com/wanderreel/wanderreel/pkg/config"
	pkgerrors "github.com/wanderreel/wanderreel/pkg/errors"
	"github.com/wanderreel/wanderreel/pkg/logger"
	"github.com/wanderreel/wanderreel/pkg/retry"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Publisher uploader.Publisher
	Validator *drafts.Validator
	Logger    logger.Logger
	Config    *config.Config
	Clock     clockwork.Clock
}

type UploaderImpl struct {
	publisher uploader.Publisher
	validator *drafts.Validator
	logger    logger.Logger
	cfg       *config.Config
	clock     clockwork.Clock
	limiter   ratelimit.Limiter
	pool      *ants.Pool
	wg        sync.WaitGroup

	// probe stands in for the player's playability check. Swappable in tests.
	probe func(rawURL string) error
}

func New(opts Opts) (*UploaderImpl, error) {
	pool, err := ants.NewPool(opts.Config.Uploader.Workers, ants.WithPreAlloc(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create upload worker pool: %w", err)
	}

	return &UploaderImpl{
		publisher: opts.Publisher,
		validator: opts.Validator,
		logger:    opts.Logger,
		cfg:       opts.Config,
		clock:     opts.Clock,
		limiter: ratelimit.NewInMemoryLimiter(
			1,
			opts.Config.Uploader.PerUserEvery,
			opts.Config.Uploader.PerUserBurst,
		),
		pool:  pool,
		probe: probePlayability,
	}, nil
}

var _ uploader.Client = (*UploaderImpl)(nil)

func (u *UploaderImpl) Enqueue(ctx context.Context, userID string, draft drafts.VideoDraft, onProgress uploader.ProgressFunc) (string, error) {
	if err := u.validator.VideoDraft(draft); err != nil {
		return "", pkgerrors.Wrap(err, "invalid video draft")
	}
	if !u.limiter.Allow(userID) {
		return "", uploader.ErrRateLimited
	}
	if onProgress == nil {
		onProgress = func(uploader.Progress) {}
	}

	jobID := uuid.NewString()
	u.wg.Add(1)

	err := u.pool.Submit(func() {
		defer u.wg.Done()
		u.run(ctx, jobID, draft, onProgress)
	})
	if err != nil {
		u.wg.Done()
		return "", fmt.Errorf("failed to submit upload job: %w", err)
	}

	u.logger.Info("Upload enqueued", "job_id", jobID, "user_id", userID, "title", draft.Title)
	return jobID, nil
}

func (u *UploaderImpl) run(ctx context.Context, jobID string, draft drafts.VideoDraft, onProgress uploader.ProgressFunc) {
	probeErr := retry.DoDefault(ctx, u.logger, "probe video url", func() error {
		err := u.probe(draft.VideoURL)
		if errors.Is(err, uploader.ErrUnplayable) {
			// A malformed url will not get better on retry.
			return backoff.Permanent(err)
		}
		return err
	})
	if probeErr != nil {
		if ctx.Err() != nil {
			u.logger.Info("Upload abandoned during probe", "job_id", jobID)
			return
		}
		u.logger.Warn("Upload rejected, url not playable", "job_id", jobID, "url", draft.VideoURL)
		onProgress(uploader.Progress{JobID: jobID, Done: true, Err: uploader.ErrUnplayable})
		return
	}

	for pct := 10; pct <= 100; pct += 10 {
		if ctx.Err() != nil {
			u.logger.Info("Upload abandoned", "job_id", jobID, "at_percent", pct)
			return
		}
		u.clock.Sleep(u.cfg.Uploader.TickInterval)
		onProgress(uploader.Progress{JobID: jobID, Percent: pct})
	}

	u.clock.Sleep(u.cfg.Uploader.FinalizeDelay)
	if ctx.Err() != nil {
		u.logger.Info("Upload abandoned before commit", "job_id", jobID)
		return
	}

	video := u.publisher.AddVideo(draft)
	onProgress(uploader.Progress{JobID: jobID, Percent: 100, Done: true, Video: &video})
	u.logger.Info("Upload completed", "job_id", jobID, "video_id", video.ID)
}

// Close waits for in-flight jobs and releases the pool.
func (u *UploaderImpl) Close() {
	u.wg.Wait()
	u.pool.Release()
}

func probePlayability(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse video url: %w", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return uploader.ErrUnplayable
	}
	return nil
}
