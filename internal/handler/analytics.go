package handler

import (
	"math"

	"github.com/gin-gonic/gin"

	"github.com/Liuma02/trade-journal-reports/internal/analytics"
	"github.com/Liuma02/trade-journal-reports/internal/service"
)

type AnalyticsHandler struct {
	Sessions *service.Sessions
}

func (h *AnalyticsHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/analytics")
	g.GET("/overview", h.overview)
	g.GET("/daily", h.daily)
	g.GET("/tags", h.tags)
	g.GET("/symbols", h.symbols)
	g.GET("/streaks", h.streaks)
}

// jsonFloat renders non-finite ratios as strings since JSON has no Inf.
func jsonFloat(v float64) any {
	if math.IsInf(v, 1) {
		return "inf"
	}
	if math.IsInf(v, -1) {
		return "-inf"
	}
	if math.IsNaN(v) {
		return nil
	}
	return v
}

func (h *AnalyticsHandler) overview(c *gin.Context) {
	trades := h.Sessions.Get(sessionKey(c)).Trades()
	best, worst := analytics.BestWorstTrades(trades)
	Ok(c, gin.H{
		"totalPnl":      analytics.TotalPnL(trades),
		"winRate":       analytics.WinRate(trades),
		"profitFactor":  jsonFloat(analytics.ProfitFactor(trades)),
		"maxDrawdown":   analytics.MaxDrawdown(trades),
		"averageRr":     analytics.AverageRR(trades),
		"tradeCount":    len(trades),
		"bestTrade":     best,
		"worstTrade":    worst,
		"streaks":       analytics.Streaks(trades),
	}, nil)
}

func (h *AnalyticsHandler) daily(c *gin.Context) {
	trades := h.Sessions.Get(sessionKey(c)).Trades()
	Ok(c, analytics.DailyPnL(trades), nil)
}

func (h *AnalyticsHandler) tags(c *gin.Context) {
	trades := h.Sessions.Get(sessionKey(c)).Trades()
	Ok(c, analytics.PerformanceByTag(trades), nil)
}

func (h *AnalyticsHandler) symbols(c *gin.Context) {
	trades := h.Sessions.Get(sessionKey(c)).Trades()
	Ok(c, analytics.PerformanceBySymbol(trades), nil)
}

func (h *AnalyticsHandler) streaks(c *gin.Context) {
	trades := h.Sessions.Get(sessionKey(c)).Trades()
	Ok(c, analytics.Streaks(trades), nil)
}
