package redis

import (
	"context"
	"time"
)

// CacheStoreInterface defines the interface for dashboard snapshot caching.
type CacheStoreInterface interface {
	GetOverview(ctx context.Context, dest any) (bool, error)
	SetOverview(ctx context.Context, snapshot any) error
	InvalidateOverview(ctx context.Context) error
	GetTrends(ctx context.Context, windowDays int, dest any) (bool, error)
	SetTrends(ctx context.Context, windowDays int, snapshot any) error
	InvalidateTrends(ctx context.Context) error
}

// LockStoreInterface defines the interface for distributed locking.
type LockStoreInterface interface {
	AcquirePaymentLock(ctx context.Context, paymentID string, ttl time.Duration) (bool, error)
	ReleasePaymentLock(ctx context.Context, paymentID string) error
}

// Ensure concrete types implement interfaces.
var (
	_ CacheStoreInterface = (*CacheStore)(nil)
	_ LockStoreInterface  = (*LockStore)(nil)
)
