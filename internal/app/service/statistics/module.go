package statistics

import "go.uber.org/fx"

// Module exposes the reporting engine via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
