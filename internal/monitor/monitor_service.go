package monitor

import (
	"context"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/outreach"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/roster"

	"go.uber.org/zap"
)

type RosterStats interface {
	Stats(ctx context.Context) (roster.StatsResponse, error)
}

type LogQueries interface {
	StatsByPeriod(ctx context.Context, period string) (outreach.PeriodStats, error)
	ListByPeriod(ctx context.Context, period string) ([]outreach.LogResponse, error)
}

type Snapshot struct {
	RosterStats roster.StatsResponse   `json:"roster_stats"`
	LogStats    outreach.PeriodStats   `json:"log_stats"`
	Logs        []outreach.LogResponse `json:"logs"`
}

// Done reports that no log of the period is waiting on an outcome.
func (s Snapshot) Done() bool {
	return !s.LogStats.InFlight()
}

//go:generate mockgen -source=monitor_service.go -destination=mock/monitor_service_mock.go -package=mock
type Service interface {
	Snapshot(ctx context.Context, period string) (Snapshot, error)
}

type service struct {
	rosters RosterStats
	logs    LogQueries
	logger  *zap.Logger
}

func NewService(rosters RosterStats, logs LogQueries, logger ...*zap.Logger) Service {
	l := zap.L().Named("monitor.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("monitor.service")
	}
	return &service{rosters: rosters, logs: logs, logger: l}
}

func (s *service) Snapshot(ctx context.Context, period string) (Snapshot, error) {
	logStats, err := s.logs.StatsByPeriod(ctx, period)
	if err != nil {
		return Snapshot{}, err
	}
	logs, err := s.logs.ListByPeriod(ctx, logStats.Period)
	if err != nil {
		return Snapshot{}, err
	}
	rosterStats, err := s.rosters.Stats(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{RosterStats: rosterStats, LogStats: logStats, Logs: logs}, nil
}
