package member

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module exposes the member service via Fx. Statuses are re-derived once at
// startup so the cached column catches up with the calendar.
var Module = fx.Options(
	fx.Provide(NewService),
	fx.Invoke(refreshStatusesOnStart),
)

func refreshStatusesOnStart(lc fx.Lifecycle, s *Service, log *zap.SugaredLogger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := s.RefreshStatuses(ctx, time.Now()); err != nil {
				log.Warnw("status refresh on start failed", "err", err)
			}
			return nil
		},
	})
}
