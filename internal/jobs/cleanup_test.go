package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/discordpilot/dashboard-server-go/internal/model"
)

type mockSessionRepo struct {
	deleteExpiredCalls atomic.Int64
}

func (m *mockSessionRepo) FindByTokenHash(ctx context.Context, tokenHash string) (*model.AuthSession, error) {
	return nil, nil
}

func (m *mockSessionRepo) Create(ctx context.Context, params model.CreateAuthSessionParams) (*model.AuthSession, error) {
	return nil, nil
}

func (m *mockSessionRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	m.deleteExpiredCalls.Add(1)
	return 2, nil
}

func TestCleanupJob(t *testing.T) {
	t.Run("creates job with correct interval", func(t *testing.T) {
		job := NewCleanupJob(nil, 5*time.Minute)

		assert.NotNil(t, job)
		assert.Equal(t, 5*time.Minute, job.interval)
	})

	t.Run("runs a sweep on start and stops cleanly", func(t *testing.T) {
		repo := &mockSessionRepo{}
		job := NewCleanupJob(repo, 1*time.Hour)

		job.Start()
		time.Sleep(20 * time.Millisecond)
		job.Stop()

		assert.GreaterOrEqual(t, repo.deleteExpiredCalls.Load(), int64(1))
	})
}
