// Package store holds the in-memory working set of trades and journal
// entries for one session. It is the system of record the analytics
// engine reads from; analytics never mutate it.
package store

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Liuma02/trade-journal-reports/internal/models"
)

var ErrNotFound = errors.New("store: record not found")

// DefaultTags seeds the tag catalog offered in the UI.
var DefaultTags = []string{
	"FOMO", "REVENGE", "OVERSIZE", "PATIENCE", "BREAKOUT", "TREND", "REVERSAL", "NEWS",
}

type Options struct {
	// Strict makes update/remove of an unknown id return ErrNotFound
	// instead of the compatible silent no-op.
	Strict bool
}

// Store is safe for concurrent use; writes are serialized and reads return
// snapshot copies.
type Store struct {
	mu         sync.RWMutex
	strict     bool
	trades     []models.Trade
	entries    []models.JournalEntry
	customTags []string
}

func New(opts Options) *Store {
	tags := make([]string, len(DefaultTags))
	copy(tags, DefaultTags)
	return &Store{
		strict:     opts.Strict,
		customTags: tags,
	}
}

// --- trades -----------------------------------------------------------------

func (s *Store) AddTrade(t models.Trade) models.Trade {
	s.mu.Lock()
	defer s.mu.Unlock()
	t = sanitizeTrade(t)
	s.trades = append(s.trades, t)
	return t
}

func (s *Store) AddTrades(items []models.Trade) []models.Trade {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Trade, 0, len(items))
	for _, t := range items {
		t = sanitizeTrade(t)
		s.trades = append(s.trades, t)
		out = append(out, t)
	}
	return out
}

func (s *Store) UpdateTrade(id string, patch TradePatch) (*models.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.trades {
		if s.trades[i].ID != id {
			continue
		}
		patch.Apply(&s.trades[i])
		s.trades[i] = sanitizeExisting(s.trades[i])
		t := cloneTrade(s.trades[i])
		return &t, nil
	}
	if s.strict {
		return nil, ErrNotFound
	}
	return nil, nil
}

func (s *Store) RemoveTrade(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.trades {
		if s.trades[i].ID == id {
			s.trades = append(s.trades[:i], s.trades[i+1:]...)
			return nil
		}
	}
	if s.strict {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ClearTrades() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trades = nil
}

// ReplaceTrades swaps the whole working set, used when reloading from the
// persistence collaborator.
func (s *Store) ReplaceTrades(items []models.Trade) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trades = make([]models.Trade, 0, len(items))
	for _, t := range items {
		s.trades = append(s.trades, sanitizeExisting(cloneTrade(t)))
	}
}

// Trades returns a snapshot copy in insertion order.
func (s *Store) Trades() []models.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Trade, 0, len(s.trades))
	for _, t := range s.trades {
		out = append(out, cloneTrade(t))
	}
	return out
}

// --- journal entries --------------------------------------------------------

func (s *Store) AddEntry(e models.JournalEntry) models.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	s.entries = append(s.entries, e)
	return e
}

func (s *Store) UpdateEntry(id string, patch EntryPatch) (*models.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID != id {
			continue
		}
		patch.Apply(&s.entries[i])
		e := s.entries[i]
		return &e, nil
	}
	if s.strict {
		return nil, ErrNotFound
	}
	return nil, nil
}

func (s *Store) RemoveEntry(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	if s.strict {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ReplaceEntries(items []models.JournalEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]models.JournalEntry(nil), items...)
}

func (s *Store) Entries() []models.JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.JournalEntry(nil), s.entries...)
}

// --- tag catalog ------------------------------------------------------------

func (s *Store) CustomTags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.customTags...)
}

func (s *Store) AddCustomTag(tag string) {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	if tag == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.customTags {
		if existing == tag {
			return
		}
	}
	s.customTags = append(s.customTags, tag)
}

func (s *Store) RemoveCustomTag(tag string) {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.customTags {
		if existing == tag {
			s.customTags = append(s.customTags[:i], s.customTags[i+1:]...)
			return
		}
	}
}

// --- helpers ----------------------------------------------------------------

func sanitizeTrade(t models.Trade) models.Trade {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return sanitizeExisting(t)
}

func sanitizeExisting(t models.Trade) models.Trade {
	t.Symbol = strings.ToUpper(strings.TrimSpace(t.Symbol))
	if t.Side != models.SideShort {
		t.Side = models.SideLong
	}
	t.Quantity = t.Quantity.Abs()
	t.Commission = t.Commission.Abs()
	if t.DurationMin < 0 {
		t.DurationMin = 0
	}
	t.Tags = normalizeLabels(t.Tags)
	t.Mistakes = normalizeLabels(t.Mistakes)
	return t
}

// normalizeLabels upper-cases and dedupes while preserving first-seen order.
func normalizeLabels(in []string) []string {
	out := make([]string, 0, len(in))
	seen := map[string]struct{}{}
	for _, raw := range in {
		label := strings.ToUpper(strings.TrimSpace(raw))
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out
}

func cloneTrade(t models.Trade) models.Trade {
	t.Tags = append([]string(nil), t.Tags...)
	t.Mistakes = append([]string(nil), t.Mistakes...)
	return t
}
