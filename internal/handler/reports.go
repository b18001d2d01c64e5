package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Liuma02/trade-journal-reports/internal/report"
	"github.com/Liuma02/trade-journal-reports/internal/service"
)

type ReportsHandler struct {
	Sessions *service.Sessions
}

func (h *ReportsHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/reports")
	g.GET("", h.aggregate)
	g.GET("/summary", h.summary)
	g.GET("/categories", h.categories)
}

func reportParams(c *gin.Context) (report.KeyFunc, report.PnLMode, string, bool) {
	name := strings.ToLower(strQuery(c, "category", "instrument"))
	key, ok := report.ForCategory(name)
	if !ok {
		return nil, "", name, false
	}
	mode := report.ModeNet
	if strings.EqualFold(c.Query("pnl"), string(report.ModeGross)) {
		mode = report.ModeGross
	}
	return key, mode, name, true
}

func (h *ReportsHandler) aggregate(c *gin.Context) {
	key, mode, name, ok := reportParams(c)
	if !ok {
		Error(c, http.StatusBadRequest, "unknown category", map[string]any{
			"categories": report.CategoryNames(),
		})
		return
	}
	trades := h.Sessions.Get(sessionKey(c)).Trades()
	Ok(c, report.Aggregate(trades, key, mode), map[string]any{
		"category": name,
		"pnl":      string(mode),
	})
}

func (h *ReportsHandler) summary(c *gin.Context) {
	key, mode, name, ok := reportParams(c)
	if !ok {
		Error(c, http.StatusBadRequest, "unknown category", map[string]any{
			"categories": report.CategoryNames(),
		})
		return
	}
	trades := h.Sessions.Get(sessionKey(c)).Trades()
	Ok(c, report.Summary(trades, key, mode), map[string]any{
		"category": name,
		"pnl":      string(mode),
	})
}

func (h *ReportsHandler) categories(c *gin.Context) {
	Ok(c, report.CategoryNames(), nil)
}
