package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
)

func TestRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	s := &domain.Session{ID: "s-1", CreatedAt: time.Now(), Ledger: domain.NewLedger()}
	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.GetByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 1, repo.Count())

	assert.ErrorIs(t, repo.Create(ctx, s), ErrSessionExists)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func TestRepository_DeleteInactiveSince(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)
	repo := NewRepositoryWithClock(&fixedClock{now: now})

	require.NoError(t, repo.Create(ctx, &domain.Session{ID: "old", CreatedAt: now.Add(-2 * time.Hour)}))
	require.NoError(t, repo.Create(ctx, &domain.Session{ID: "new", CreatedAt: now}))

	removed := repo.DeleteInactiveSince(now.Add(-time.Hour))

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, repo.Count())
	_, err := repo.GetByID(ctx, "old")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRepository_GetByIDKeepsSessionAlive(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)
	clock := &fixedClock{now: created}
	repo := NewRepositoryWithClock(clock)

	require.NoError(t, repo.Create(ctx, &domain.Session{ID: "s-1", CreatedAt: created}))

	// Пользователь продолжает работать через 2 часа после открытия страницы
	clock.now = created.Add(2 * time.Hour)
	s, err := repo.GetByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, clock.now, s.LastAccessedAt)
	assert.Equal(t, created, s.CreatedAt)

	// TTL 1 час: сессия создана давно, но использовалась недавно
	assert.Equal(t, 0, repo.DeleteInactiveSince(clock.now.Add(-time.Hour)))
	assert.Equal(t, 1, repo.Count())

	// Ещё 2 часа без обращений
	clock.now = clock.now.Add(2 * time.Hour)
	assert.Equal(t, 1, repo.DeleteInactiveSince(clock.now.Add(-time.Hour)))
	assert.Equal(t, 0, repo.Count())
}
