// Package report provides the generalized "group trades by derived key"
// breakdown behind the reports screen.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Liuma02/trade-journal-reports/internal/models"
)

type PnLMode string

const (
	ModeNet   PnLMode = "net"
	ModeGross PnLMode = "gross"
)

// KeyFunc derives the grouping labels for a trade. Most keys are
// single-valued; tag and mistake keys return one label per set member,
// contributing the trade to every named group.
type KeyFunc func(models.Trade) []string

type Row struct {
	Label  string          `json:"label"`
	Trades int             `json:"trades"`
	PnL    decimal.Decimal `json:"pnl"`
}

// SummaryRow backs the per-group summary table.
type SummaryRow struct {
	Label        string          `json:"label"`
	NetProfit    decimal.Decimal `json:"netProfit"`
	WinRate      float64         `json:"winRate"`
	TotalProfits decimal.Decimal `json:"totalProfits"`
	TotalLoss    decimal.Decimal `json:"totalLoss"`
	Trades       int             `json:"trades"`
	Volume       decimal.Decimal `json:"volume"`
}

// tradePnL applies the net/gross toggle per trade, before summing.
// Commission is per-trade, so this cannot be a post-hoc group transform.
func tradePnL(t models.Trade, mode PnLMode) decimal.Decimal {
	if mode == ModeGross {
		return t.PnL
	}
	return t.NetPnL()
}

// Aggregate buckets trades by key and sums pnl per group, sorted
// descending by summed pnl. Group order is stable for equal sums.
func Aggregate(trades []models.Trade, key KeyFunc, mode PnLMode) []Row {
	order := []string{}
	sums := map[string]decimal.Decimal{}
	counts := map[string]int{}
	for _, t := range trades {
		pnl := tradePnL(t, mode)
		for _, label := range key(t) {
			if _, ok := sums[label]; !ok {
				order = append(order, label)
			}
			sums[label] = sums[label].Add(pnl)
			counts[label]++
		}
	}
	out := make([]Row, 0, len(order))
	for _, label := range order {
		out = append(out, Row{Label: label, Trades: counts[label], PnL: sums[label]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PnL.GreaterThan(out[j].PnL)
	})
	return out
}

// Summary expands each group with profit/loss split, win rate and traded
// volume, sorted descending by net profit.
func Summary(trades []models.Trade, key KeyFunc, mode PnLMode) []SummaryRow {
	order := []string{}
	rows := map[string]*SummaryRow{}
	wins := map[string]int{}
	for _, t := range trades {
		pnl := tradePnL(t, mode)
		for _, label := range key(t) {
			row, ok := rows[label]
			if !ok {
				row = &SummaryRow{Label: label}
				rows[label] = row
				order = append(order, label)
			}
			row.Trades++
			row.NetProfit = row.NetProfit.Add(pnl)
			if pnl.IsPositive() {
				row.TotalProfits = row.TotalProfits.Add(pnl)
			} else if pnl.IsNegative() {
				row.TotalLoss = row.TotalLoss.Add(pnl.Abs())
			}
			row.Volume = row.Volume.Add(t.Quantity)
			if t.Win() {
				wins[label]++
			}
		}
	}
	out := make([]SummaryRow, 0, len(order))
	for _, label := range order {
		row := rows[label]
		if row.Trades > 0 {
			row.WinRate = float64(wins[label]) / float64(row.Trades) * 100
		}
		out = append(out, *row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NetProfit.GreaterThan(out[j].NetProfit)
	})
	return out
}
