package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	SideLong  = "long"
	SideShort = "short"
)

// Trade is one completed round-trip position. PnL is gross and supplied by
// the broker export; it is never derived from the entry/exit prices.
type Trade struct {
	ID         string          `json:"id"`
	Date       time.Time       `json:"date"`
	Symbol     string          `json:"symbol"`
	Side       string          `json:"side"`
	EntryPrice decimal.Decimal `json:"entryPrice"`
	ExitPrice  decimal.Decimal `json:"exitPrice"`
	Quantity   decimal.Decimal `json:"quantity"`
	PnL        decimal.Decimal `json:"pnl"`
	Commission decimal.Decimal `json:"commission"`

	// DurationMin is minutes held; exports rarely carry it.
	DurationMin int    `json:"duration"`
	Setup       string `json:"setup,omitempty"`
	Notes       string `json:"notes,omitempty"`

	Tags     []string `json:"tags"`
	Mistakes []string `json:"mistakes"`
}

// NetPnL is gross pnl minus commission. Every aggregate that reports a
// "net" figure goes through this.
func (t Trade) NetPnL() decimal.Decimal {
	return t.PnL.Sub(t.Commission)
}

// DateKey is the day-granularity grouping key.
func (t Trade) DateKey() string {
	return t.Date.Format("2006-01-02")
}

// Win reports whether the trade closed profitable on gross pnl.
// Zero-pnl trades count as neither wins nor losses.
func (t Trade) Win() bool {
	return t.PnL.IsPositive()
}
