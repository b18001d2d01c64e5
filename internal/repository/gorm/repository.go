package gormrepository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Liuma02/trade-journal-reports/internal/models"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates the persistence tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&tradeRow{}, &journalRow{})
}

// --- trades -----------------------------------------------------------------

func (s *Store) ListTrades(ctx context.Context, userID string) ([]models.Trade, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var rows []tradeRow
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("trade_date asc, created_at asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]models.Trade, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToTrade(row))
	}
	return out, nil
}

func (s *Store) InsertTrade(ctx context.Context, userID string, t *models.Trade) error {
	if s == nil || s.db == nil || t == nil {
		return nil
	}
	row := tradeToRow(userID, *t)
	return s.db.WithContext(ctx).Create(&row).Error
}

func (s *Store) InsertTrades(ctx context.Context, userID string, items []models.Trade) error {
	if s == nil || s.db == nil || len(items) == 0 {
		return nil
	}
	rows := make([]tradeRow, 0, len(items))
	for _, t := range items {
		rows = append(rows, tradeToRow(userID, t))
	}
	return s.db.WithContext(ctx).CreateInBatches(rows, 200).Error
}

func (s *Store) UpdateTrade(ctx context.Context, userID string, t models.Trade) error {
	if s == nil || s.db == nil {
		return nil
	}
	row := tradeToRow(userID, t)
	return s.db.WithContext(ctx).
		Model(&tradeRow{}).
		Where("id = ? AND user_id = ?", t.ID, userID).
		Updates(map[string]any{
			"trade_date":   row.TradeDate,
			"symbol":       row.Symbol,
			"side":         row.Side,
			"entry_price":  row.EntryPrice,
			"exit_price":   row.ExitPrice,
			"quantity":     row.Quantity,
			"pnl":          row.PnL,
			"commission":   row.Commission,
			"duration_min": row.DurationMin,
			"setup":        row.Setup,
			"notes":        row.Notes,
			"tags":         row.Tags,
			"mistakes":     row.Mistakes,
		}).Error
}

func (s *Store) DeleteTrade(ctx context.Context, userID string, id string) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&tradeRow{}).Error
}

func (s *Store) DeleteAllTrades(ctx context.Context, userID string) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&tradeRow{}).Error
}

// --- journal entries --------------------------------------------------------

func (s *Store) ListJournalEntries(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var rows []journalRow
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("trade_date asc, created_at asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]models.JournalEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToEntry(row))
	}
	return out, nil
}

func (s *Store) InsertJournalEntry(ctx context.Context, userID string, e *models.JournalEntry) error {
	if s == nil || s.db == nil || e == nil {
		return nil
	}
	row := entryToRow(userID, *e)
	return s.db.WithContext(ctx).Create(&row).Error
}

func (s *Store) UpdateJournalEntry(ctx context.Context, userID string, e models.JournalEntry) error {
	if s == nil || s.db == nil {
		return nil
	}
	row := entryToRow(userID, e)
	return s.db.WithContext(ctx).
		Model(&journalRow{}).
		Where("id = ? AND user_id = ?", e.ID, userID).
		Updates(map[string]any{
			"trade_date": row.TradeDate,
			"notes":      row.Notes,
			"mood":       row.Mood,
			"lessons":    row.Lessons,
		}).Error
}

func (s *Store) DeleteJournalEntry(ctx context.Context, userID string, id string) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&journalRow{}).Error
}
