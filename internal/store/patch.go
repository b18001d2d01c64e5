package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Liuma02/trade-journal-reports/internal/models"
)

// TradePatch is a partial update; nil fields are left untouched.
type TradePatch struct {
	Date        *time.Time
	Symbol      *string
	Side        *string
	EntryPrice  *decimal.Decimal
	ExitPrice   *decimal.Decimal
	Quantity    *decimal.Decimal
	PnL         *decimal.Decimal
	Commission  *decimal.Decimal
	DurationMin *int
	Setup       *string
	Notes       *string
	Tags        *[]string
	Mistakes    *[]string
}

func (p TradePatch) Apply(t *models.Trade) {
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Symbol != nil {
		t.Symbol = *p.Symbol
	}
	if p.Side != nil {
		t.Side = *p.Side
	}
	if p.EntryPrice != nil {
		t.EntryPrice = *p.EntryPrice
	}
	if p.ExitPrice != nil {
		t.ExitPrice = *p.ExitPrice
	}
	if p.Quantity != nil {
		t.Quantity = *p.Quantity
	}
	if p.PnL != nil {
		t.PnL = *p.PnL
	}
	if p.Commission != nil {
		t.Commission = *p.Commission
	}
	if p.DurationMin != nil {
		t.DurationMin = *p.DurationMin
	}
	if p.Setup != nil {
		t.Setup = *p.Setup
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.Tags != nil {
		t.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.Mistakes != nil {
		t.Mistakes = append([]string(nil), (*p.Mistakes)...)
	}
}

// EntryPatch is the journal-entry counterpart of TradePatch.
type EntryPatch struct {
	Date    *time.Time
	Notes   *string
	Mood    *string
	Lessons *string
}

func (p EntryPatch) Apply(e *models.JournalEntry) {
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	if p.Mood != nil {
		e.Mood = *p.Mood
	}
	if p.Lessons != nil {
		e.Lessons = *p.Lessons
	}
}
