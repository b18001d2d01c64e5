// Package analytics computes derived statistics over a trade snapshot.
// Every function is pure and recomputes from scratch; trade counts are
// modest so correctness wins over caching.
//
// Conventions: "net" figures subtract commission per trade, win/loss
// classification uses gross pnl, and empty inputs yield zero-valued
// sentinels instead of NaN or panics.
package analytics

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Liuma02/trade-journal-reports/internal/models"
)

// DailyPoint is one day of the equity curve.
type DailyPoint struct {
	Date       string          `json:"date"`
	PnL        decimal.Decimal `json:"pnl"`
	Cumulative decimal.Decimal `json:"cumulative"`
}

type TagPerformance struct {
	Tag     string          `json:"tag"`
	PnL     decimal.Decimal `json:"pnl"`
	Count   int             `json:"count"`
	WinRate float64         `json:"winRate"`
}

type SymbolPerformance struct {
	Symbol  string          `json:"symbol"`
	PnL     decimal.Decimal `json:"pnl"`
	Count   int             `json:"count"`
	WinRate float64         `json:"winRate"`
}

type StreakSummary struct {
	Current     int `json:"currentStreak"`
	LongestWin  int `json:"longestWinStreak"`
	LongestLoss int `json:"longestLossStreak"`
}

// TotalPnL is the net sum over all trades.
func TotalPnL(trades []models.Trade) decimal.Decimal {
	total := decimal.Zero
	for _, t := range trades {
		total = total.Add(t.NetPnL())
	}
	return total
}

// WinRate is the share of gross-profitable trades in percent, 0 for an
// empty set.
func WinRate(trades []models.Trade) float64 {
	if len(trades) == 0 {
		return 0
	}
	wins := 0
	for _, t := range trades {
		if t.Win() {
			wins++
		}
	}
	return float64(wins) / float64(len(trades)) * 100
}

// ProfitFactor is gross winning pnl over the magnitude of gross losing pnl.
// With no losses it is +Inf when there are profits and 0 otherwise.
func ProfitFactor(trades []models.Trade) float64 {
	profits := decimal.Zero
	losses := decimal.Zero
	for _, t := range trades {
		if t.PnL.IsPositive() {
			profits = profits.Add(t.PnL)
		} else if t.PnL.IsNegative() {
			losses = losses.Add(t.PnL)
		}
	}
	if losses.IsZero() {
		if profits.IsPositive() {
			return math.Inf(1)
		}
		return 0
	}
	f, _ := profits.Div(losses.Abs()).Float64()
	return f
}

// DailyPnL groups net pnl by day, ascending by date, with a running
// cumulative sum.
func DailyPnL(trades []models.Trade) []DailyPoint {
	perDay := map[string]decimal.Decimal{}
	for _, t := range trades {
		key := t.DateKey()
		perDay[key] = perDay[key].Add(t.NetPnL())
	}
	dates := make([]string, 0, len(perDay))
	for d := range perDay {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]DailyPoint, 0, len(dates))
	cumulative := decimal.Zero
	for _, d := range dates {
		cumulative = cumulative.Add(perDay[d])
		out = append(out, DailyPoint{Date: d, PnL: perDay[d], Cumulative: cumulative})
	}
	return out
}

// MaxDrawdown is the largest peak-to-trough decline of the daily cumulative
// series. The peak starts at zero and only ever rises, so the result is
// never negative.
func MaxDrawdown(trades []models.Trade) decimal.Decimal {
	peak := decimal.Zero
	maxDD := decimal.Zero
	for _, p := range DailyPnL(trades) {
		if p.Cumulative.GreaterThan(peak) {
			peak = p.Cumulative
		}
		if dd := peak.Sub(p.Cumulative); dd.GreaterThan(maxDD) {
			maxDD = dd
		}
	}
	return maxDD
}

// AverageRR is mean winning pnl over the magnitude of mean losing pnl,
// 0 when either side is empty.
func AverageRR(trades []models.Trade) float64 {
	winSum, lossSum := decimal.Zero, decimal.Zero
	winCount, lossCount := 0, 0
	for _, t := range trades {
		if t.PnL.IsPositive() {
			winSum = winSum.Add(t.PnL)
			winCount++
		} else if t.PnL.IsNegative() {
			lossSum = lossSum.Add(t.PnL)
			lossCount++
		}
	}
	if winCount == 0 || lossCount == 0 {
		return 0
	}
	avgWin := winSum.Div(decimal.NewFromInt(int64(winCount)))
	avgLoss := lossSum.Div(decimal.NewFromInt(int64(lossCount))).Abs()
	f, _ := avgWin.Div(avgLoss).Float64()
	return f
}

// PerformanceByTag groups by tag in first-seen order; a trade tagged twice
// contributes its full net pnl to both groups.
func PerformanceByTag(trades []models.Trade) []TagPerformance {
	order := []string{}
	sums := map[string]decimal.Decimal{}
	counts := map[string]int{}
	wins := map[string]int{}
	for _, t := range trades {
		for _, tag := range t.Tags {
			if _, ok := sums[tag]; !ok {
				order = append(order, tag)
			}
			sums[tag] = sums[tag].Add(t.NetPnL())
			counts[tag]++
			if t.Win() {
				wins[tag]++
			}
		}
	}
	out := make([]TagPerformance, 0, len(order))
	for _, tag := range order {
		out = append(out, TagPerformance{
			Tag:     tag,
			PnL:     sums[tag],
			Count:   counts[tag],
			WinRate: float64(wins[tag]) / float64(counts[tag]) * 100,
		})
	}
	return out
}

// PerformanceBySymbol groups by symbol, sorted descending by net pnl.
func PerformanceBySymbol(trades []models.Trade) []SymbolPerformance {
	order := []string{}
	sums := map[string]decimal.Decimal{}
	counts := map[string]int{}
	wins := map[string]int{}
	for _, t := range trades {
		if _, ok := sums[t.Symbol]; !ok {
			order = append(order, t.Symbol)
		}
		sums[t.Symbol] = sums[t.Symbol].Add(t.NetPnL())
		counts[t.Symbol]++
		if t.Win() {
			wins[t.Symbol]++
		}
	}
	out := make([]SymbolPerformance, 0, len(order))
	for _, sym := range order {
		out = append(out, SymbolPerformance{
			Symbol:  sym,
			PnL:     sums[sym],
			Count:   counts[sym],
			WinRate: float64(wins[sym]) / float64(counts[sym]) * 100,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PnL.GreaterThan(out[j].PnL)
	})
	return out
}

// BestWorstTrades returns the trades with the highest and lowest gross pnl,
// first occurrence winning ties. Both are nil for an empty set.
func BestWorstTrades(trades []models.Trade) (best, worst *models.Trade) {
	for i := range trades {
		t := trades[i]
		if best == nil || t.PnL.GreaterThan(best.PnL) {
			c := t
			best = &c
		}
		if worst == nil || t.PnL.LessThan(worst.PnL) {
			c := t
			worst = &c
		}
	}
	return best, worst
}

// Streaks walks trades in date order tracking consecutive win/loss runs.
// Zero-pnl trades neither extend nor reset a run; Current is signed,
// negative for an active loss run.
func Streaks(trades []models.Trade) StreakSummary {
	sorted := make([]models.Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	win, loss := 0, 0
	maxWin, maxLoss := 0, 0
	for _, t := range sorted {
		switch {
		case t.PnL.IsPositive():
			win++
			loss = 0
			if win > maxWin {
				maxWin = win
			}
		case t.PnL.IsNegative():
			loss++
			win = 0
			if loss > maxLoss {
				maxLoss = loss
			}
		}
	}

	current := 0
	if len(sorted) > 0 {
		last := sorted[len(sorted)-1]
		switch {
		case last.PnL.IsPositive():
			current = win
		case last.PnL.IsNegative():
			current = -loss
		}
	}
	return StreakSummary{Current: current, LongestWin: maxWin, LongestLoss: maxLoss}
}

// TradesByDate filters to one day, order preserved.
func TradesByDate(trades []models.Trade, dateKey string) []models.Trade {
	out := []models.Trade{}
	for _, t := range trades {
		if t.DateKey() == dateKey {
			out = append(out, t)
		}
	}
	return out
}
