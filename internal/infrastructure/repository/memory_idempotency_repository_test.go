package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/entity"
)

func TestMemoryIdempotencyRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryIdempotencyRepository()
	alice, bob := uuid.New(), uuid.New()

	got, err := repo.GetByKey(ctx, "k1", alice)
	if err != nil || got != nil {
		t.Fatalf("GetByKey() on empty store = %v, %v; want nil, nil", got, err)
	}

	stored := &entity.IdempotencyKey{
		Key:          "k1",
		UserID:       alice,
		Endpoint:     "POST /api/v1/orders/ord123/payments/cash",
		ResponseCode: 201,
		ResponseBody: `{"status":"success"}`,
		ExpiresAt:    time.Now().Add(time.Hour),
	}
	if err := repo.Create(ctx, stored); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if stored.ID == uuid.Nil {
		t.Error("Create() did not assign an ID")
	}

	got, err = repo.GetByKey(ctx, "k1", alice)
	if err != nil || got == nil {
		t.Fatalf("GetByKey() = %v, %v", got, err)
	}
	if got.ResponseCode != 201 || got.ResponseBody != stored.ResponseBody {
		t.Errorf("GetByKey() = %+v", got)
	}

	if got, _ := repo.GetByKey(ctx, "k1", bob); got != nil {
		t.Error("keys must be scoped to their user")
	}
}

func TestMemoryIdempotencyRepositoryDeleteExpired(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryIdempotencyRepository()
	userID := uuid.New()

	_ = repo.Create(ctx, &entity.IdempotencyKey{Key: "old", UserID: userID, ExpiresAt: time.Now().Add(-time.Minute)})
	_ = repo.Create(ctx, &entity.IdempotencyKey{Key: "fresh", UserID: userID, ExpiresAt: time.Now().Add(time.Hour)})

	if err := repo.DeleteExpired(ctx); err != nil {
		t.Fatalf("DeleteExpired() error = %v", err)
	}

	if got, _ := repo.GetByKey(ctx, "old", userID); got != nil {
		t.Error("expired key survived DeleteExpired")
	}
	if got, _ := repo.GetByKey(ctx, "fresh", userID); got == nil {
		t.Error("fresh key was deleted")
	}
}

func TestPurgeExpiredKeysStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	repo := NewMemoryIdempotencyRepository()
	userID := uuid.New()
	_ = repo.Create(ctx, &entity.IdempotencyKey{Key: "old", UserID: userID, ExpiresAt: time.Now().Add(-time.Minute)})

	done := make(chan struct{})
	go func() {
		PurgeExpiredKeys(ctx, repo, time.Millisecond, nil)
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if got, _ := repo.GetByKey(context.Background(), "old", userID); got == nil {
			break
		}
		time.Sleep(time.Millisecond)
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("PurgeExpiredKeys did not return after cancel")
	}

	if got, _ := repo.GetByKey(context.Background(), "old", userID); got != nil {
		t.Error("expired key was not purged")
	}
}
