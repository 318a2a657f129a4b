package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// WithRetry invokes fn up to maxAttempts times, sleeping 2^attempt seconds
// between attempts. Only ClassOverloaded failures are retried; any other
// error returns immediately. The final error is returned when all attempts
// are exhausted.
func WithRetry(ctx context.Context, maxAttempts int, logger *zap.Logger, fn func(ctx context.Context) (string, error)) (string, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		reply, err := fn(ctx)
		if err == nil {
			return reply, nil
		}
		lastErr = err

		if !IsOverloaded(err) || attempt == maxAttempts-1 {
			return "", lastErr
		}

		wait := time.Duration(1<<uint(attempt)) * time.Second
		logger.Warn("upstream overloaded, backing off",
			zap.Int("attempt", attempt+1),
			zap.Int("max_attempts", maxAttempts),
			zap.Duration("wait", wait),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(wait):
		}
	}

	return "", lastErr
}
