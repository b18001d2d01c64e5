package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Liuma02/trade-journal-reports/internal/models"
	"github.com/Liuma02/trade-journal-reports/internal/service"
	"github.com/Liuma02/trade-journal-reports/internal/store"
)

type TradesHandler struct {
	Sessions *service.Sessions
}

func (h *TradesHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/trades")
	g.GET("", h.list)
	g.POST("", h.create)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.remove)
	g.DELETE("", h.clear)
}

func (h *TradesHandler) list(c *gin.Context) {
	svc := h.Sessions.Get(sessionKey(c))
	trades := svc.Trades()

	if date := strings.TrimSpace(c.Query("date")); date != "" {
		filtered := trades[:0]
		for _, t := range trades {
			if t.DateKey() == date {
				filtered = append(filtered, t)
			}
		}
		trades = filtered
	}

	total := int64(len(trades))
	limit := intQuery(c, "limit", 100)
	offset := intQuery(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	if offset > len(trades) {
		offset = len(trades)
	}
	end := len(trades)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	Ok(c, trades[offset:end], paginationMeta(limit, offset, total))
}

type tradeRequest struct {
	Date       string          `json:"date"`
	Symbol     string          `json:"symbol"`
	Side       string          `json:"side"`
	EntryPrice decimal.Decimal `json:"entryPrice"`
	ExitPrice  decimal.Decimal `json:"exitPrice"`
	Quantity   decimal.Decimal `json:"quantity"`
	PnL        decimal.Decimal `json:"pnl"`
	Commission decimal.Decimal `json:"commission"`
	Duration   int             `json:"duration"`
	Setup      string          `json:"setup"`
	Notes      string          `json:"notes"`
	Tags       []string        `json:"tags"`
	Mistakes   []string        `json:"mistakes"`
}

func (h *TradesHandler) create(c *gin.Context) {
	var req tradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	date, ok := parseTimestamp(req.Date)
	if !ok {
		Error(c, http.StatusBadRequest, "invalid date", nil)
		return
	}
	if strings.TrimSpace(req.Symbol) == "" {
		Error(c, http.StatusBadRequest, "symbol is required", nil)
		return
	}
	quantity := req.Quantity
	if quantity.IsZero() {
		quantity = decimal.NewFromInt(1)
	}
	trade := models.Trade{
		Date:        date,
		Symbol:      req.Symbol,
		Side:        req.Side,
		EntryPrice:  req.EntryPrice,
		ExitPrice:   req.ExitPrice,
		Quantity:    quantity,
		PnL:         req.PnL,
		Commission:  req.Commission,
		DurationMin: req.Duration,
		Setup:       strings.TrimSpace(req.Setup),
		Notes:       strings.TrimSpace(req.Notes),
		Tags:        req.Tags,
		Mistakes:    req.Mistakes,
	}
	added, err := h.Sessions.Get(sessionKey(c)).AddTrade(c.Request.Context(), trade)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Created(c, added)
}

type tradePatchRequest struct {
	Date       *string          `json:"date"`
	Symbol     *string          `json:"symbol"`
	Side       *string          `json:"side"`
	EntryPrice *decimal.Decimal `json:"entryPrice"`
	ExitPrice  *decimal.Decimal `json:"exitPrice"`
	Quantity   *decimal.Decimal `json:"quantity"`
	PnL        *decimal.Decimal `json:"pnl"`
	Commission *decimal.Decimal `json:"commission"`
	Duration   *int             `json:"duration"`
	Setup      *string          `json:"setup"`
	Notes      *string          `json:"notes"`
	Tags       *[]string        `json:"tags"`
	Mistakes   *[]string        `json:"mistakes"`
}

func (req tradePatchRequest) toPatch() (store.TradePatch, bool) {
	patch := store.TradePatch{
		Symbol:      req.Symbol,
		Side:        req.Side,
		EntryPrice:  req.EntryPrice,
		ExitPrice:   req.ExitPrice,
		Quantity:    req.Quantity,
		PnL:         req.PnL,
		Commission:  req.Commission,
		DurationMin: req.Duration,
		Setup:       req.Setup,
		Notes:       req.Notes,
		Tags:        req.Tags,
		Mistakes:    req.Mistakes,
	}
	if req.Date != nil {
		ts, ok := parseTimestamp(*req.Date)
		if !ok {
			return store.TradePatch{}, false
		}
		patch.Date = &ts
	}
	return patch, true
}

func (h *TradesHandler) update(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var req tradePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	patch, ok := req.toPatch()
	if !ok {
		Error(c, http.StatusBadRequest, "invalid date", nil)
		return
	}
	updated, err := h.Sessions.Get(sessionKey(c)).UpdateTrade(c.Request.Context(), id, patch)
	if err != nil {
		if err == store.ErrNotFound {
			Error(c, http.StatusNotFound, "trade not found", nil)
			return
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, updated, nil)
}

func (h *TradesHandler) remove(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := h.Sessions.Get(sessionKey(c)).RemoveTrade(c.Request.Context(), id); err != nil {
		if err == store.ErrNotFound {
			Error(c, http.StatusNotFound, "trade not found", nil)
			return
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"id": id}, nil)
}

func (h *TradesHandler) clear(c *gin.Context) {
	if err := h.Sessions.Get(sessionKey(c)).ClearTrades(c.Request.Context()); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"cleared_at": time.Now().UTC()}, nil)
}
