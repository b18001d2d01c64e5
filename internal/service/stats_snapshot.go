package service

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/Liuma02/trade-journal-reports/internal/analytics"
)

// StatsSnapshotService periodically logs a performance overview per
// session. It exists for operators tailing the logs; nothing reads the
// output programmatically.
type StatsSnapshotService struct {
	Sessions *Sessions
	Logger   *zap.Logger
}

func (s *StatsSnapshotService) RunOnce(ctx context.Context) error {
	if s == nil || s.Sessions == nil || s.Logger == nil {
		return nil
	}
	for _, key := range s.Sessions.Keys() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		trades := s.Sessions.Get(key).Trades()
		if len(trades) == 0 {
			continue
		}
		pf := analytics.ProfitFactor(trades)
		fields := []zap.Field{
			zap.String("session", key),
			zap.Int("trades", len(trades)),
			zap.String("total_pnl", analytics.TotalPnL(trades).String()),
			zap.Float64("win_rate", analytics.WinRate(trades)),
			zap.String("max_drawdown", analytics.MaxDrawdown(trades).String()),
		}
		if math.IsInf(pf, 1) {
			fields = append(fields, zap.String("profit_factor", "inf"))
		} else {
			fields = append(fields, zap.Float64("profit_factor", pf))
		}
		s.Logger.Info("stats snapshot", fields...)
	}
	return nil
}
