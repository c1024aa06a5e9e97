package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/entity"
	domainRepo "github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/repository"
	"github.com/sirupsen/logrus"
)

type idempotencyEntryKey struct {
	userID uuid.UUID
	key    string
}

type memoryIdempotencyRepository struct {
	mu   sync.RWMutex
	keys map[idempotencyEntryKey]entity.IdempotencyKey
	now  func() time.Time
}

// NewMemoryIdempotencyRepository creates an in-process idempotency repository.
// Keys are lost on restart.
func NewMemoryIdempotencyRepository() domainRepo.IdempotencyRepository {
	return &memoryIdempotencyRepository{
		keys: make(map[idempotencyEntryKey]entity.IdempotencyKey),
		now:  time.Now,
	}
}

func (r *memoryIdempotencyRepository) GetByKey(_ context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ikey, ok := r.keys[idempotencyEntryKey{userID: userID, key: key}]
	if !ok {
		return nil, nil
	}
	return &ikey, nil
}

func (r *memoryIdempotencyRepository) Create(_ context.Context, ikey *entity.IdempotencyKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ikey.ID == uuid.Nil {
		ikey.ID = uuid.New()
	}
	if ikey.CreatedAt.IsZero() {
		ikey.CreatedAt = r.now()
	}
	r.keys[idempotencyEntryKey{userID: ikey.UserID, key: ikey.Key}] = *ikey
	return nil
}

func (r *memoryIdempotencyRepository) DeleteExpired(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for k, ikey := range r.keys {
		if now.After(ikey.ExpiresAt) {
			delete(r.keys, k)
		}
	}
	return nil
}

// PurgeExpiredKeys deletes expired idempotency keys every interval until ctx
// is done
func PurgeExpiredKeys(ctx context.Context, repo domainRepo.IdempotencyRepository, interval time.Duration, log *logrus.Entry) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := repo.DeleteExpired(ctx); err != nil && ctx.Err() == nil {
				log.WithError(err).Warn("failed to purge expired idempotency keys")
			}
		}
	}
}
