package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/fitpro/gym/internal/app/api/server"
	"github.com/fitpro/gym/internal/app/service/attendance"
	"github.com/fitpro/gym/internal/app/service/member"
	"github.com/fitpro/gym/internal/app/service/payment"
	"github.com/fitpro/gym/internal/app/service/statistics"
	"github.com/fitpro/gym/internal/platform/db"
	"github.com/fitpro/gym/pkg/config"
	"github.com/fitpro/gym/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	server.Module,
	member.Module,
	attendance.Module,
	payment.Module,
	statistics.Module,
)
