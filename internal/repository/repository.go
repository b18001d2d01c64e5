// Package repository defines the optional persistence collaborator. The
// in-memory store is the system of record; implementations here only make
// it durable. A nil Repository means pure in-memory operation.
package repository

import (
	"context"

	"github.com/Liuma02/trade-journal-reports/internal/models"
)

// Repository persists trades and journal entries per user. Implementations
// must not assume the engine's field naming: schema mapping stays behind
// this boundary.
type Repository interface {
	ListTrades(ctx context.Context, userID string) ([]models.Trade, error)
	InsertTrade(ctx context.Context, userID string, t *models.Trade) error
	InsertTrades(ctx context.Context, userID string, items []models.Trade) error
	UpdateTrade(ctx context.Context, userID string, t models.Trade) error
	DeleteTrade(ctx context.Context, userID string, id string) error
	DeleteAllTrades(ctx context.Context, userID string) error

	ListJournalEntries(ctx context.Context, userID string) ([]models.JournalEntry, error)
	InsertJournalEntry(ctx context.Context, userID string, e *models.JournalEntry) error
	UpdateJournalEntry(ctx context.Context, userID string, e models.JournalEntry) error
	DeleteJournalEntry(ctx context.Context, userID string, id string) error
}
