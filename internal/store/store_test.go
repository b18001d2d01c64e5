package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Liuma02/trade-journal-reports/internal/models"
)

func newTrade(symbol string, pnl float64) models.Trade {
	return models.Trade{
		Date:     time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC),
		Symbol:   symbol,
		Side:     models.SideLong,
		Quantity: decimal.NewFromInt(1),
		PnL:      decimal.NewFromFloat(pnl),
	}
}

func TestAddTradeAssignsIDAndSanitizes(t *testing.T) {
	s := New(Options{})
	added := s.AddTrade(models.Trade{
		Date:       time.Now().UTC(),
		Symbol:     " eurusd ",
		Side:       "buy",
		Quantity:   decimal.NewFromInt(-2),
		Commission: decimal.NewFromFloat(-1.5),
		Tags:       []string{"fomo", "FOMO", " breakout "},
	})
	if added.ID == "" {
		t.Fatalf("expected generated id")
	}
	if added.Symbol != "EURUSD" {
		t.Fatalf("symbol=%q", added.Symbol)
	}
	if added.Side != models.SideLong {
		t.Fatalf("side=%q", added.Side)
	}
	if !added.Quantity.Equal(decimal.NewFromInt(2)) {
		t.Fatalf("quantity=%s", added.Quantity)
	}
	if !added.Commission.Equal(decimal.NewFromFloat(1.5)) {
		t.Fatalf("commission=%s", added.Commission)
	}
	want := []string{"FOMO", "BREAKOUT"}
	if len(added.Tags) != len(want) {
		t.Fatalf("tags=%v", added.Tags)
	}
	for i := range want {
		if added.Tags[i] != want[i] {
			t.Fatalf("tags=%v want=%v", added.Tags, want)
		}
	}
}

func TestUpdateTradeUnknownIDIsNoOp(t *testing.T) {
	s := New(Options{})
	s.AddTrade(newTrade("EURUSD", 10))

	notes := "late entry"
	updated, err := s.UpdateTrade("missing", TradePatch{Notes: &notes})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated != nil {
		t.Fatalf("expected nil trade for unknown id")
	}
	if got := len(s.Trades()); got != 1 {
		t.Fatalf("trades=%d want=1", got)
	}
}

func TestUpdateTradeStrictReturnsNotFound(t *testing.T) {
	s := New(Options{Strict: true})
	if _, err := s.UpdateTrade("missing", TradePatch{}); err != ErrNotFound {
		t.Fatalf("err=%v want=%v", err, ErrNotFound)
	}
	if err := s.RemoveTrade("missing"); err != ErrNotFound {
		t.Fatalf("err=%v want=%v", err, ErrNotFound)
	}
}

func TestUpdateTradeAppliesPatch(t *testing.T) {
	s := New(Options{})
	added := s.AddTrade(newTrade("EURUSD", 10))

	pnl := decimal.NewFromInt(25)
	symbol := "gbpusd"
	updated, err := s.UpdateTrade(added.ID, TradePatch{PnL: &pnl, Symbol: &symbol})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated == nil {
		t.Fatalf("expected updated trade")
	}
	if !updated.PnL.Equal(pnl) {
		t.Fatalf("pnl=%s want=%s", updated.PnL, pnl)
	}
	if updated.Symbol != "GBPUSD" {
		t.Fatalf("symbol=%q", updated.Symbol)
	}
}

func TestRemoveAndClearTrades(t *testing.T) {
	s := New(Options{})
	a := s.AddTrade(newTrade("EURUSD", 10))
	s.AddTrade(newTrade("GBPUSD", -5))

	if err := s.RemoveTrade(a.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := len(s.Trades()); got != 1 {
		t.Fatalf("trades=%d want=1", got)
	}
	s.ClearTrades()
	if got := len(s.Trades()); got != 0 {
		t.Fatalf("trades=%d want=0", got)
	}
}

func TestTradesReturnsSnapshotCopies(t *testing.T) {
	s := New(Options{})
	tr := newTrade("EURUSD", 10)
	tr.Tags = []string{"TREND"}
	s.AddTrade(tr)

	snap := s.Trades()
	snap[0].Tags[0] = "MUTATED"
	snap[0].Symbol = "MUTATED"

	fresh := s.Trades()
	if fresh[0].Tags[0] != "TREND" {
		t.Fatalf("tags leaked: %v", fresh[0].Tags)
	}
	if fresh[0].Symbol != "EURUSD" {
		t.Fatalf("symbol leaked: %q", fresh[0].Symbol)
	}
}

func TestJournalEntryLifecycle(t *testing.T) {
	s := New(Options{})
	added := s.AddEntry(models.JournalEntry{
		Date:  time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Notes: "choppy session",
		Mood:  models.MoodNegative,
	})
	if added.ID == "" {
		t.Fatalf("expected generated id")
	}

	notes := "choppy session, stopped early"
	updated, err := s.UpdateEntry(added.ID, EntryPatch{Notes: &notes})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated == nil || updated.Notes != notes {
		t.Fatalf("updated=%+v", updated)
	}

	if err := s.RemoveEntry(added.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := len(s.Entries()); got != 0 {
		t.Fatalf("entries=%d want=0", got)
	}
}

func TestCustomTagCatalog(t *testing.T) {
	s := New(Options{})
	if got, want := len(s.CustomTags()), len(DefaultTags); got != want {
		t.Fatalf("tags=%d want=%d", got, want)
	}

	s.AddCustomTag(" scalp ")
	s.AddCustomTag("SCALP")
	tags := s.CustomTags()
	if tags[len(tags)-1] != "SCALP" {
		t.Fatalf("tags=%v", tags)
	}
	if len(tags) != len(DefaultTags)+1 {
		t.Fatalf("duplicate tag added: %v", tags)
	}

	s.RemoveCustomTag("scalp")
	if got := len(s.CustomTags()); got != len(DefaultTags) {
		t.Fatalf("tags=%d want=%d", got, len(DefaultTags))
	}
}
