package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/entity"
)

// IdempotencyRepository defines the storage of replayable submissions
type IdempotencyRepository interface {
	// GetByKey returns the stored submission or nil when the key is unknown
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	// Create stores a processed submission
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	// DeleteExpired removes keys past their expiry
	DeleteExpired(ctx context.Context) error
}
