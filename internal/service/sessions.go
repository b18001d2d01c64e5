package service

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Liuma02/trade-journal-reports/internal/repository"
	"github.com/Liuma02/trade-journal-reports/internal/store"
)

const DefaultSession = "default"

// Sessions hands out one StoreService per session key, creating stores
// lazily. All sessions share the same repository and logger.
type Sessions struct {
	mu     sync.Mutex
	items  map[string]*StoreService
	repo   repository.Repository
	logger *zap.Logger
	opts   store.Options
}

func NewSessions(repo repository.Repository, logger *zap.Logger, opts store.Options) *Sessions {
	return &Sessions{
		items:  map[string]*StoreService{},
		repo:   repo,
		logger: logger,
		opts:   opts,
	}
}

func (m *Sessions) Get(key string) *StoreService {
	if key == "" {
		key = DefaultSession
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if svc, ok := m.items[key]; ok {
		return svc
	}
	svc := &StoreService{
		Store:  store.New(m.opts),
		Repo:   m.repo,
		Logger: m.logger,
		UserID: key,
	}
	m.items[key] = svc
	return svc
}

// Keys returns the active session keys in no particular order.
func (m *Sessions) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.items))
	for k := range m.items {
		out = append(out, k)
	}
	return out
}
