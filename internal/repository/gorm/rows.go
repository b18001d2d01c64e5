package gormrepository

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/Liuma02/trade-journal-reports/internal/models"
)

// tradeRow is the persistence schema for a trade. Column naming follows the
// hosted database (snake_case, trade_date), so all translation to the
// engine's Trade happens in this file and nowhere else.
type tradeRow struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	UserID string `gorm:"type:varchar(64);not null;index"`

	TradeDate  time.Time       `gorm:"type:timestamptz;not null;index"`
	Symbol     string          `gorm:"type:varchar(32);not null;index"`
	Side       string          `gorm:"type:varchar(8);not null"`
	EntryPrice decimal.Decimal `gorm:"type:numeric(30,10)"`
	ExitPrice  decimal.Decimal `gorm:"type:numeric(30,10)"`
	Quantity   decimal.Decimal `gorm:"type:numeric(30,10)"`
	// Explicit column name because default GORM naming turns "PnL" into "pn_l".
	PnL         decimal.Decimal `gorm:"column:pnl;type:numeric(30,10)"`
	Commission  decimal.Decimal `gorm:"type:numeric(30,10)"`
	DurationMin int             `gorm:"not null;default:0"`
	Setup       *string         `gorm:"type:varchar(100)"`
	Notes       *string         `gorm:"type:text"`
	Tags        datatypes.JSON  `gorm:"type:jsonb"`
	Mistakes    datatypes.JSON  `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (tradeRow) TableName() string {
	return "trades"
}

type journalRow struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	UserID string `gorm:"type:varchar(64);not null;index"`

	TradeDate time.Time `gorm:"type:timestamptz;not null;index"`
	Notes     string    `gorm:"type:text"`
	Mood      *string   `gorm:"type:varchar(16)"`
	Lessons   *string   `gorm:"type:text"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (journalRow) TableName() string {
	return "journal_entries"
}

func tradeToRow(userID string, t models.Trade) tradeRow {
	tagsRaw, _ := json.Marshal(emptyIfNil(t.Tags))
	mistakesRaw, _ := json.Marshal(emptyIfNil(t.Mistakes))
	return tradeRow{
		ID:          t.ID,
		UserID:      userID,
		TradeDate:   t.Date.UTC(),
		Symbol:      t.Symbol,
		Side:        t.Side,
		EntryPrice:  t.EntryPrice,
		ExitPrice:   t.ExitPrice,
		Quantity:    t.Quantity,
		PnL:         t.PnL,
		Commission:  t.Commission,
		DurationMin: t.DurationMin,
		Setup:       strPtr(t.Setup),
		Notes:       strPtr(t.Notes),
		Tags:        datatypes.JSON(tagsRaw),
		Mistakes:    datatypes.JSON(mistakesRaw),
	}
}

func rowToTrade(row tradeRow) models.Trade {
	return models.Trade{
		ID:          row.ID,
		Date:        row.TradeDate.UTC(),
		Symbol:      row.Symbol,
		Side:        row.Side,
		EntryPrice:  row.EntryPrice,
		ExitPrice:   row.ExitPrice,
		Quantity:    row.Quantity,
		PnL:         row.PnL,
		Commission:  row.Commission,
		DurationMin: row.DurationMin,
		Setup:       strVal(row.Setup),
		Notes:       strVal(row.Notes),
		Tags:        jsonLabels(row.Tags),
		Mistakes:    jsonLabels(row.Mistakes),
	}
}

func entryToRow(userID string, e models.JournalEntry) journalRow {
	return journalRow{
		ID:        e.ID,
		UserID:    userID,
		TradeDate: e.Date.UTC(),
		Notes:     e.Notes,
		Mood:      strPtr(e.Mood),
		Lessons:   strPtr(e.Lessons),
	}
}

func rowToEntry(row journalRow) models.JournalEntry {
	return models.JournalEntry{
		ID:      row.ID,
		Date:    row.TradeDate.UTC(),
		Notes:   row.Notes,
		Mood:    strVal(row.Mood),
		Lessons: strVal(row.Lessons),
	}
}

func jsonLabels(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	return out
}

func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func strPtr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func strVal(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
