package session

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
)

// Repository хранилище сессий в памяти процесса
// Сессии не переживают рестарт: состояние страницы пересобирается при новой загрузке
type Repository struct {
	mu           sync.RWMutex
	sessions     map[string]*domain.Session
	timeProvider TimeProvider
}

// NewRepository создает пустое хранилище с реальными часами
func NewRepository() *Repository {
	return NewRepositoryWithClock(realTimeProvider{})
}

// NewRepositoryWithClock создает пустое хранилище с заданным источником времени
func NewRepositoryWithClock(timeProvider TimeProvider) *Repository {
	return &Repository{
		sessions:     make(map[string]*domain.Session),
		timeProvider: timeProvider,
	}
}

// Create сохраняет новую сессию
func (r *Repository) Create(_ context.Context, s *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID]; ok {
		return ErrSessionExists
	}
	if s.LastAccessedAt.IsZero() {
		s.LastAccessedAt = s.CreatedAt
	}
	r.sessions[s.ID] = s
	return nil
}

// GetByID возвращает сессию по ID и продлевает ее жизнь
func (r *Repository) GetByID(_ context.Context, id string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.LastAccessedAt = r.timeProvider.Now()
	return s, nil
}

// Count количество сессий в памяти
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

// DeleteInactiveSince удаляет сессии, к которым не обращались с threshold, и возвращает их количество
func (r *Repository) DeleteInactiveSince(threshold time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if s.LastAccessedAt.Before(threshold) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}
