package importer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Liuma02/trade-journal-reports/internal/models"
)

func TestNormalizeGenericHeader(t *testing.T) {
	csv := "date,symbol,side,entry,exit,quantity,pnl,commission\n" +
		"2024-01-02,EURUSD,long,1.05,1.06,1.0,100,5\n"

	res := Normalize(csv)
	if !res.Success || res.Count != 1 {
		t.Fatalf("success=%v count=%d errors=%v", res.Success, res.Count, res.Errors)
	}
	tr := res.Trades[0]
	if tr.Symbol != "EURUSD" {
		t.Fatalf("symbol=%q want=EURUSD", tr.Symbol)
	}
	if tr.Side != models.SideLong {
		t.Fatalf("side=%q want=long", tr.Side)
	}
	if !tr.PnL.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("pnl=%s want=100", tr.PnL)
	}
	if !tr.Commission.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("commission=%s want=5", tr.Commission)
	}
	if !tr.NetPnL().Equal(decimal.NewFromInt(95)) {
		t.Fatalf("net=%s want=95", tr.NetPnL())
	}
	if tr.DateKey() != "2024-01-02" {
		t.Fatalf("date=%s want=2024-01-02", tr.DateKey())
	}
}

func TestNormalizeAliasDetection(t *testing.T) {
	// MetaTrader-ish header: different names, different order.
	csv := "Open Time,Ticker,Direction,Open Price,Close Price,Lots,Profit,Fee\n" +
		"2024-03-05 14:30:00,gbpusd,SELL,1.27,1.26,0.5,42.5,1.2\n"

	res := Normalize(csv)
	if res.Count != 1 {
		t.Fatalf("count=%d errors=%v", res.Count, res.Errors)
	}
	tr := res.Trades[0]
	if tr.Symbol != "GBPUSD" {
		t.Fatalf("symbol=%q", tr.Symbol)
	}
	if tr.Side != models.SideShort {
		t.Fatalf("side=%q want=short", tr.Side)
	}
	if !tr.Quantity.Equal(decimal.NewFromFloat(0.5)) {
		t.Fatalf("quantity=%s", tr.Quantity)
	}
	if tr.Date.Hour() != 14 {
		t.Fatalf("hour=%d want=14", tr.Date.Hour())
	}
}

func TestNormalizeFallbackColumns(t *testing.T) {
	// Header with no recognizable names: date falls back to column 0,
	// symbol to column 1, side to long.
	csv := "a,b,c\n2024-02-01,spy,whatever\n"

	res := Normalize(csv)
	if res.Count != 1 {
		t.Fatalf("count=%d errors=%v", res.Count, res.Errors)
	}
	tr := res.Trades[0]
	if tr.Symbol != "SPY" || tr.Side != models.SideLong {
		t.Fatalf("symbol=%q side=%q", tr.Symbol, tr.Side)
	}
	if !tr.Quantity.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("quantity=%s want=1", tr.Quantity)
	}
	if tr.DurationMin != 60 {
		t.Fatalf("duration=%d want=60", tr.DurationMin)
	}
}

func TestNormalizeInvalidDate(t *testing.T) {
	csv := "date,symbol,side,entry,exit,quantity,pnl,commission\n" +
		"not-a-date,EURUSD,long,1.05,1.06,1.0,100,5\n"

	res := Normalize(csv)
	if res.Success || res.Count != 0 {
		t.Fatalf("success=%v count=%d", res.Success, res.Count)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("errors=%v want one", res.Errors)
	}
	if !strings.Contains(res.Errors[0], "Row 2") || !strings.Contains(res.Errors[0], "not-a-date") {
		t.Fatalf("error=%q", res.Errors[0])
	}
}

func TestNormalizePartialSuccess(t *testing.T) {
	csv := "date,symbol,side,entry,exit,quantity,pnl,commission\n" +
		"2024-01-02,EURUSD,long,1.05,1.06,1.0,100,5\n" +
		"bogus,EURUSD,long,1.05,1.06,1.0,100,5\n" +
		"2024-01-03,EURUSD,short,1.06,1.05,1.0,-40,5\n"

	res := Normalize(csv)
	if !res.Success || res.Count != 2 {
		t.Fatalf("success=%v count=%d", res.Success, res.Count)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("errors=%v", res.Errors)
	}
}

func TestNormalizeNumericDefaults(t *testing.T) {
	// Unparseable numerics are defaulted, never reported.
	csv := "date,symbol,side,entry,exit,quantity,pnl,commission\n" +
		"2024-01-02,EURUSD,long,oops,,junk,,bad\n"

	res := Normalize(csv)
	if res.Count != 1 || len(res.Errors) != 0 {
		t.Fatalf("count=%d errors=%v", res.Count, res.Errors)
	}
	tr := res.Trades[0]
	if !tr.EntryPrice.IsZero() || !tr.ExitPrice.IsZero() || !tr.PnL.IsZero() || !tr.Commission.IsZero() {
		t.Fatalf("numeric defaults not applied: %+v", tr)
	}
	if !tr.Quantity.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("quantity=%s want=1", tr.Quantity)
	}
}

func TestNormalizeNegativeSizesAbs(t *testing.T) {
	csv := "date,symbol,side,entry,exit,quantity,pnl,commission\n" +
		"2024-01-02,EURUSD,sell,1.05,1.06,-2,-50,-3\n"

	res := Normalize(csv)
	if res.Count != 1 {
		t.Fatalf("count=%d errors=%v", res.Count, res.Errors)
	}
	tr := res.Trades[0]
	if !tr.Quantity.Equal(decimal.NewFromInt(2)) {
		t.Fatalf("quantity=%s want=2", tr.Quantity)
	}
	if !tr.Commission.Equal(decimal.NewFromInt(3)) {
		t.Fatalf("commission=%s want=3", tr.Commission)
	}
	if !tr.PnL.Equal(decimal.NewFromInt(-50)) {
		t.Fatalf("pnl=%s want=-50", tr.PnL)
	}
}

func TestNormalizeQuotedValues(t *testing.T) {
	csv := "\"date\",\"symbol\",\"side\",\"entry\",\"exit\",\"quantity\",\"pnl\",\"commission\"\n" +
		"\"2024-01-02\",\"eurusd\",\"long\",\"1.05\",\"1.06\",\"1\",\"100\",\"5\"\n"

	res := Normalize(csv)
	if res.Count != 1 {
		t.Fatalf("count=%d errors=%v", res.Count, res.Errors)
	}
	if res.Trades[0].Symbol != "EURUSD" {
		t.Fatalf("symbol=%q", res.Trades[0].Symbol)
	}
}

func TestNormalizeSkipsShortRows(t *testing.T) {
	csv := "date,symbol,side,entry,exit,quantity,pnl,commission\n" +
		"\n" +
		"just,two\n" +
		"2024-01-02,EURUSD,long,1.05,1.06,1.0,100,5\n"

	res := Normalize(csv)
	if res.Count != 1 || len(res.Errors) != 0 {
		t.Fatalf("count=%d errors=%v", res.Count, res.Errors)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	for _, csv := range []string{"", "date,symbol,pnl\n"} {
		res := Normalize(csv)
		if res.Success || res.Count != 0 {
			t.Fatalf("success=%v count=%d for %q", res.Success, res.Count, csv)
		}
		if len(res.Errors) == 0 {
			t.Fatalf("expected fallback error for %q", csv)
		}
	}
}

func TestParseDateLayouts(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-02", "2024-01-02"},
		{"2024-01-02 09:30:00", "2024-01-02"},
		{"2024/01/02", "2024-01-02"},
		{"01/02/2024", "2024-01-02"},
		{"2024.01.02", "2024-01-02"},
		{"Jan 2, 2024", "2024-01-02"},
		{"20240102", "2024-01-02"},
	}
	for _, tt := range tests {
		got, ok := parseDate(tt.in)
		if !ok {
			t.Fatalf("parseDate(%q) failed", tt.in)
		}
		if got.Format("2006-01-02") != tt.want {
			t.Fatalf("parseDate(%q) = %s want %s", tt.in, got.Format("2006-01-02"), tt.want)
		}
	}
	if _, ok := parseDate("yesterday"); ok {
		t.Fatalf("expected failure for free text")
	}
}
