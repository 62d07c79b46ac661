package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/wanderreel/wanderreel/pkg/logger"
)

type Config struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

func DefaultConfig() Config {
	return Config{
		MaxRetries:      4,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     3 * time.Second,
		Multiplier:      2.0,
	}
}

// DoDefault runs the operation with the default backoff policy.
func DoDefault(ctx context.Context, log logger.Logger, operationName string, operation func() error) error {
	return Do(ctx, log, operationName, operation, DefaultConfig())
}

func Do(ctx context.Context, log logger.Logger, operationName string, operation func() error, cfg Config) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.InitialInterval
	bo.MaxInterval = cfg.MaxInterval
	bo.Multiplier = cfg.Multiplier
	bo.Reset()

	retryable := backoff.WithMaxRetries(bo, cfg.MaxRetries)
	retryableWithContext := backoff.WithContext(retryable, ctx)

	notify := func(err error, t time.Duration) {
		log.Warn(
			"Operation failed, retrying...",
			"operation", operationName,
			"error", err,
			"next_attempt_in", t.Round(time.Millisecond).String(),
		)
	}

	return backoff.RetryNotify(operation, retryableWithContext, notify)
}
