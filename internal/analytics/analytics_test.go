package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Liuma02/trade-journal-reports/internal/models"
)

func tr(date string, pnl, commission float64) models.Trade {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Trade{
		ID:         date + "-" + decimal.NewFromFloat(pnl).String(),
		Date:       d,
		Symbol:     "EURUSD",
		Side:       models.SideLong,
		Quantity:   decimal.NewFromInt(1),
		PnL:        decimal.NewFromFloat(pnl),
		Commission: decimal.NewFromFloat(commission),
	}
}

func TestTotalPnLSubtractsCommission(t *testing.T) {
	trades := []models.Trade{
		tr("2024-01-02", 100, 5),
		tr("2024-01-03", -40, 2),
	}
	got := TotalPnL(trades)
	if !got.Equal(decimal.NewFromInt(53)) {
		t.Fatalf("total=%s want=53", got)
	}
	if !TotalPnL(nil).IsZero() {
		t.Fatalf("empty total should be 0")
	}
}

func TestWinRateBounds(t *testing.T) {
	if got := WinRate(nil); got != 0 {
		t.Fatalf("empty win rate=%v want=0", got)
	}
	trades := []models.Trade{
		tr("2024-01-02", 100, 0),
		tr("2024-01-02", -50, 0),
		tr("2024-01-03", 0, 0), // break-even counts against the rate
		tr("2024-01-03", 25, 0),
	}
	if got := WinRate(trades); got != 50 {
		t.Fatalf("win rate=%v want=50", got)
	}
}

func TestProfitFactorSentinels(t *testing.T) {
	if got := ProfitFactor(nil); got != 0 {
		t.Fatalf("empty=%v want=0", got)
	}
	onlyWins := []models.Trade{tr("2024-01-02", 100, 0)}
	if got := ProfitFactor(onlyWins); !math.IsInf(got, 1) {
		t.Fatalf("no losses=%v want=+Inf", got)
	}
	breakEven := []models.Trade{tr("2024-01-02", 0, 0)}
	if got := ProfitFactor(breakEven); got != 0 {
		t.Fatalf("no profits no losses=%v want=0", got)
	}
	mixed := []models.Trade{
		tr("2024-01-02", 100, 3),
		tr("2024-01-03", -50, 3),
	}
	if got := ProfitFactor(mixed); got != 2 {
		t.Fatalf("factor=%v want=2", got)
	}
}

func TestDailyPnLCumulative(t *testing.T) {
	trades := []models.Trade{
		tr("2024-01-03", -30, 0),
		tr("2024-01-02", 100, 10),
		tr("2024-01-02", 20, 0),
	}
	points := DailyPnL(trades)
	if len(points) != 2 {
		t.Fatalf("points=%d want=2", len(points))
	}
	if points[0].Date != "2024-01-02" || !points[0].PnL.Equal(decimal.NewFromInt(110)) {
		t.Fatalf("day0=%+v", points[0])
	}
	if !points[1].Cumulative.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("cumulative=%s want=80", points[1].Cumulative)
	}
	// Cumulative is the prefix sum of the per-day values.
	run := decimal.Zero
	for _, p := range points {
		run = run.Add(p.PnL)
		if !p.Cumulative.Equal(run) {
			t.Fatalf("cumulative mismatch at %s: %s vs %s", p.Date, p.Cumulative, run)
		}
	}
}

func TestMaxDrawdown(t *testing.T) {
	if !MaxDrawdown(nil).IsZero() {
		t.Fatalf("empty drawdown should be 0")
	}
	rising := []models.Trade{
		tr("2024-01-02", 10, 0),
		tr("2024-01-03", 20, 0),
	}
	if !MaxDrawdown(rising).IsZero() {
		t.Fatalf("non-decreasing series should have 0 drawdown")
	}
	// Peaks at 100, troughs at -20: drawdown 120.
	trades := []models.Trade{
		tr("2024-01-02", 100, 0),
		tr("2024-01-03", -120, 0),
		tr("2024-01-04", 50, 0),
	}
	if got := MaxDrawdown(trades); !got.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("drawdown=%s want=120", got)
	}
	// A series that never rises above zero still measures from peak 0.
	losing := []models.Trade{tr("2024-01-02", -40, 0)}
	if got := MaxDrawdown(losing); !got.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("drawdown=%s want=40", got)
	}
}

func TestAverageRR(t *testing.T) {
	if got := AverageRR(nil); got != 0 {
		t.Fatalf("empty=%v want=0", got)
	}
	onlyWins := []models.Trade{tr("2024-01-02", 100, 0)}
	if got := AverageRR(onlyWins); got != 0 {
		t.Fatalf("no losses=%v want=0", got)
	}
	trades := []models.Trade{
		tr("2024-01-02", 100, 0),
		tr("2024-01-02", 50, 0),
		tr("2024-01-03", -25, 0),
	}
	if got := AverageRR(trades); got != 3 {
		t.Fatalf("rr=%v want=3", got)
	}
}

func TestPerformanceByTagMultiMembership(t *testing.T) {
	trade := tr("2024-01-02", 80, 10)
	trade.Tags = []string{"FOMO", "BREAKOUT"}
	other := tr("2024-01-03", -20, 0)
	other.Tags = []string{"FOMO"}

	rows := PerformanceByTag([]models.Trade{trade, other})
	if len(rows) != 2 {
		t.Fatalf("rows=%d want=2", len(rows))
	}
	if rows[0].Tag != "FOMO" || rows[1].Tag != "BREAKOUT" {
		t.Fatalf("tag order=%v,%v", rows[0].Tag, rows[1].Tag)
	}
	if !rows[0].PnL.Equal(decimal.NewFromInt(50)) || rows[0].Count != 2 {
		t.Fatalf("fomo=%+v", rows[0])
	}
	// Full net pnl lands in both groups, not a split.
	if !rows[1].PnL.Equal(decimal.NewFromInt(70)) || rows[1].Count != 1 {
		t.Fatalf("breakout=%+v", rows[1])
	}
	if rows[0].WinRate != 50 || rows[1].WinRate != 100 {
		t.Fatalf("win rates=%v,%v", rows[0].WinRate, rows[1].WinRate)
	}
}

func TestPerformanceBySymbolSorted(t *testing.T) {
	a := tr("2024-01-02", 10, 0)
	b := tr("2024-01-02", 90, 0)
	b.Symbol = "GBPUSD"
	c := tr("2024-01-03", -5, 0)

	rows := PerformanceBySymbol([]models.Trade{a, b, c})
	if len(rows) != 2 {
		t.Fatalf("rows=%d want=2", len(rows))
	}
	if rows[0].Symbol != "GBPUSD" || rows[1].Symbol != "EURUSD" {
		t.Fatalf("order=%v,%v", rows[0].Symbol, rows[1].Symbol)
	}
	if rows[1].Count != 2 || !rows[1].PnL.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("eurusd=%+v", rows[1])
	}
}

func TestBestWorstTrades(t *testing.T) {
	best, worst := BestWorstTrades(nil)
	if best != nil || worst != nil {
		t.Fatalf("empty set should yield nil/nil")
	}
	single := []models.Trade{tr("2024-01-02", 10, 0)}
	best, worst = BestWorstTrades(single)
	if best == nil || worst == nil || best.ID != single[0].ID || worst.ID != single[0].ID {
		t.Fatalf("single trade should be both best and worst")
	}
	// First occurrence wins ties.
	tied := []models.Trade{tr("2024-01-02", 10, 0), tr("2024-01-03", 10, 0)}
	best, _ = BestWorstTrades(tied)
	if best.ID != tied[0].ID {
		t.Fatalf("tie should keep first occurrence")
	}
}

func TestStreaks(t *testing.T) {
	empty := Streaks(nil)
	if empty.Current != 0 || empty.LongestWin != 0 || empty.LongestLoss != 0 {
		t.Fatalf("empty=%+v", empty)
	}
	pnls := []float64{10, 5, -3, -2, -1, 7}
	trades := make([]models.Trade, 0, len(pnls))
	for i, p := range pnls {
		trades = append(trades, tr(time.Date(2024, 1, i+1, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), p, 0))
	}
	got := Streaks(trades)
	if got.LongestWin != 2 || got.LongestLoss != 3 || got.Current != 1 {
		t.Fatalf("streaks=%+v want win=2 loss=3 current=1", got)
	}

	// Ends on a loss run: current is negative.
	losing := []models.Trade{
		tr("2024-01-02", 10, 0),
		tr("2024-01-03", -1, 0),
		tr("2024-01-04", -1, 0),
	}
	got = Streaks(losing)
	if got.Current != -2 {
		t.Fatalf("current=%d want=-2", got.Current)
	}
}

func TestTradesByDate(t *testing.T) {
	a := tr("2024-01-02", 10, 0)
	b := tr("2024-01-03", 20, 0)
	c := tr("2024-01-02", -5, 0)
	got := TradesByDate([]models.Trade{a, b, c}, "2024-01-02")
	if len(got) != 2 || got[0].ID != a.ID || got[1].ID != c.ID {
		t.Fatalf("got=%v", got)
	}
	if n := len(TradesByDate([]models.Trade{a}, "2024-02-02")); n != 0 {
		t.Fatalf("n=%d want=0", n)
	}
}
