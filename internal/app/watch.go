package app

import (
	"context"
	"errors"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

const defaultWatchInterval = 30 * time.Second

// Watch polls the dependency view at a fixed interval and hands each
// refresh to the callback, starting with an immediate fetch. A fetch
// error is logged and the loop keeps going; a transient backend outage
// must not kill a long-running watch. The loop stops when the context
// is cancelled or the callback returns an error.
func (s Service) Watch(ctx context.Context, req WatchRequest, refresh func(DependenciesResult) error) error {
	if refresh == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("watch callback is required")
	}
	interval := req.Interval
	if interval <= 0 {
		interval = defaultWatchInterval
	}

	if err := s.watchOnce(ctx, req, refresh); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.watchOnce(ctx, req, refresh); err != nil {
				return err
			}
		}
	}
}

func (s Service) watchOnce(ctx context.Context, req WatchRequest, refresh func(DependenciesResult) error) error {
	result, err := s.Dependencies(ctx, DependenciesRequest{
		Repository: req.Repository,
		Scope:      req.Scope,
		Page:       1,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		if errbuilder.CodeOf(err) == errbuilder.CodeInvalidArgument {
			return err
		}
		log.Ctx(ctx).Warn().Err(err).Str("repository", req.Repository).Msg("watch refresh failed")
		return nil
	}
	return refresh(result)
}
