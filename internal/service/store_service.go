package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Liuma02/trade-journal-reports/internal/importer"
	"github.com/Liuma02/trade-journal-reports/internal/models"
	"github.com/Liuma02/trade-journal-reports/internal/repository"
	"github.com/Liuma02/trade-journal-reports/internal/store"
)

// StoreService fronts one session's in-memory store and writes through to
// the repository when one is configured. Persistence happens before the
// local mutation so a failed write leaves the working set untouched.
type StoreService struct {
	Store  *store.Store
	Repo   repository.Repository
	Logger *zap.Logger
	UserID string
}

// Refresh reloads the working set from the repository. A nil repository
// is a no-op so purely in-memory sessions keep working.
func (s *StoreService) Refresh(ctx context.Context) error {
	if s == nil || s.Store == nil || s.Repo == nil {
		return nil
	}
	trades, err := s.Repo.ListTrades(ctx, s.UserID)
	if err != nil {
		return err
	}
	entries, err := s.Repo.ListJournalEntries(ctx, s.UserID)
	if err != nil {
		return err
	}
	s.Store.ReplaceTrades(trades)
	s.Store.ReplaceEntries(entries)
	if s.Logger != nil {
		s.Logger.Debug("session refreshed",
			zap.String("user_id", s.UserID),
			zap.Int("trades", len(trades)),
			zap.Int("entries", len(entries)))
	}
	return nil
}

func (s *StoreService) Trades() []models.Trade {
	if s == nil || s.Store == nil {
		return nil
	}
	return s.Store.Trades()
}

func (s *StoreService) AddTrade(ctx context.Context, t models.Trade) (models.Trade, error) {
	if s == nil || s.Store == nil {
		return models.Trade{}, errors.New("store service not configured")
	}
	added := s.Store.AddTrade(t)
	if s.Repo != nil {
		if err := s.Repo.InsertTrade(ctx, s.UserID, &added); err != nil {
			_ = s.Store.RemoveTrade(added.ID)
			return models.Trade{}, err
		}
	}
	return added, nil
}

func (s *StoreService) AddTrades(ctx context.Context, items []models.Trade) ([]models.Trade, error) {
	if s == nil || s.Store == nil {
		return nil, errors.New("store service not configured")
	}
	added := s.Store.AddTrades(items)
	if s.Repo != nil && len(added) > 0 {
		if err := s.Repo.InsertTrades(ctx, s.UserID, added); err != nil {
			for _, t := range added {
				_ = s.Store.RemoveTrade(t.ID)
			}
			return nil, err
		}
	}
	return added, nil
}

func (s *StoreService) UpdateTrade(ctx context.Context, id string, patch store.TradePatch) (*models.Trade, error) {
	if s == nil || s.Store == nil {
		return nil, errors.New("store service not configured")
	}
	if s.Repo != nil {
		// Persist the patched copy first; only touch the store on success.
		for _, t := range s.Store.Trades() {
			if t.ID != id {
				continue
			}
			patch.Apply(&t)
			if err := s.Repo.UpdateTrade(ctx, s.UserID, t); err != nil {
				return nil, err
			}
			break
		}
	}
	return s.Store.UpdateTrade(id, patch)
}

func (s *StoreService) RemoveTrade(ctx context.Context, id string) error {
	if s == nil || s.Store == nil {
		return errors.New("store service not configured")
	}
	if s.Repo != nil {
		if err := s.Repo.DeleteTrade(ctx, s.UserID, id); err != nil {
			return err
		}
	}
	return s.Store.RemoveTrade(id)
}

func (s *StoreService) ClearTrades(ctx context.Context) error {
	if s == nil || s.Store == nil {
		return errors.New("store service not configured")
	}
	if s.Repo != nil {
		if err := s.Repo.DeleteAllTrades(ctx, s.UserID); err != nil {
			return err
		}
	}
	s.Store.ClearTrades()
	return nil
}

// ImportCSV normalizes raw CSV text and appends every recovered trade.
// The normalizer result is returned as-is so callers can surface row
// errors next to the imported count.
func (s *StoreService) ImportCSV(ctx context.Context, csvText string) (importer.Result, error) {
	if s == nil || s.Store == nil {
		return importer.Result{}, errors.New("store service not configured")
	}
	res := importer.Normalize(csvText)
	if !res.Success {
		return res, nil
	}
	added, err := s.AddTrades(ctx, res.Trades)
	if err != nil {
		return importer.Result{}, err
	}
	res.Trades = added
	if s.Logger != nil {
		s.Logger.Info("csv import",
			zap.String("user_id", s.UserID),
			zap.Int("imported", res.Count),
			zap.Int("row_errors", len(res.Errors)))
	}
	return res, nil
}

// --- journal entries --------------------------------------------------------

func (s *StoreService) Entries() []models.JournalEntry {
	if s == nil || s.Store == nil {
		return nil
	}
	return s.Store.Entries()
}

func (s *StoreService) AddEntry(ctx context.Context, e models.JournalEntry) (models.JournalEntry, error) {
	if s == nil || s.Store == nil {
		return models.JournalEntry{}, errors.New("store service not configured")
	}
	added := s.Store.AddEntry(e)
	if s.Repo != nil {
		if err := s.Repo.InsertJournalEntry(ctx, s.UserID, &added); err != nil {
			_ = s.Store.RemoveEntry(added.ID)
			return models.JournalEntry{}, err
		}
	}
	return added, nil
}

func (s *StoreService) UpdateEntry(ctx context.Context, id string, patch store.EntryPatch) (*models.JournalEntry, error) {
	if s == nil || s.Store == nil {
		return nil, errors.New("store service not configured")
	}
	if s.Repo != nil {
		for _, e := range s.Store.Entries() {
			if e.ID != id {
				continue
			}
			patch.Apply(&e)
			if err := s.Repo.UpdateJournalEntry(ctx, s.UserID, e); err != nil {
				return nil, err
			}
			break
		}
	}
	return s.Store.UpdateEntry(id, patch)
}

func (s *StoreService) RemoveEntry(ctx context.Context, id string) error {
	if s == nil || s.Store == nil {
		return errors.New("store service not configured")
	}
	if s.Repo != nil {
		if err := s.Repo.DeleteJournalEntry(ctx, s.UserID, id); err != nil {
			return err
		}
	}
	return s.Store.RemoveEntry(id)
}
