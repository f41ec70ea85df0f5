package tests

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"tridash/internal/commission"
	"tridash/internal/domain"
	"tridash/internal/service"
)

// ──────────────────────────────────────────────
// COMMISSION APPLICATION
// ──────────────────────────────────────────────

func newPaymentService(paymentRepo *MockPaymentRepository, lockStore *MockLockStore) *service.PaymentService {
	engine := commission.NewEngine(commission.DefaultConfig())
	if lockStore == nil {
		return service.NewPaymentService(paymentRepo, engine, nil, nil)
	}
	return service.NewPaymentService(paymentRepo, engine, lockStore, nil)
}

func TestApplyCommission_FreshApplyPersistsSplit(t *testing.T) {
	t.Parallel()

	paymentRepo := NewMockPaymentRepository()
	lockStore := NewMockLockStore()
	paymentRepo.AddPayment(&domain.Payment{
		ID:     "pay-1",
		RideID: "ride-1",
		Amount: 100.0,
		Status: domain.PaymentStatusSuccess,
	})

	svc := newPaymentService(paymentRepo, lockStore)

	split, err := svc.ApplyCommission(context.Background(), service.ApplyCommissionRequest{
		PaymentID: "pay-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if split.AlreadyApplied {
		t.Error("fresh apply should not report already applied")
	}
	if split.PlatformCommission != 20.0 || split.DriverPayout != 80.0 {
		t.Errorf("expected 20/80 split, got %v/%v", split.PlatformCommission, split.DriverPayout)
	}

	stored := paymentRepo.GetPayment("pay-1")
	if stored.Commission != 20.0 || stored.DriverPayout != 80.0 {
		t.Errorf("split not persisted, got %v/%v", stored.Commission, stored.DriverPayout)
	}
	if stored.CommissionAppliedAt == nil {
		t.Error("expected commission_applied_at to be set")
	}
	if count := atomic.LoadInt32(&paymentRepo.ApplySplitCallCount); count != 1 {
		t.Errorf("expected 1 ApplySplit call, got %d", count)
	}
}

func TestApplyCommission_SecondApplyIsNoOp(t *testing.T) {
	t.Parallel()

	paymentRepo := NewMockPaymentRepository()
	paymentRepo.AddPayment(&domain.Payment{
		ID:     "pay-1",
		Amount: 100.0,
		Status: domain.PaymentStatusSuccess,
	})

	svc := newPaymentService(paymentRepo, NewMockLockStore())
	ctx := context.Background()

	if _, err := svc.ApplyCommission(ctx, service.ApplyCommissionRequest{PaymentID: "pay-1"}); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}

	// A different rate on the second call must not recompute.
	split, err := svc.ApplyCommission(ctx, service.ApplyCommissionRequest{PaymentID: "pay-1", Rate: 30.0})
	if err != nil {
		t.Fatalf("second apply failed: %v", err)
	}
	if !split.AlreadyApplied {
		t.Error("expected already-applied result")
	}
	if split.PlatformCommission != 20.0 || split.DriverPayout != 80.0 {
		t.Errorf("recorded values not echoed, got %v/%v", split.PlatformCommission, split.DriverPayout)
	}
	if count := atomic.LoadInt32(&paymentRepo.ApplySplitCallCount); count != 1 {
		t.Errorf("second apply should not write, got %d ApplySplit calls", count)
	}
}

func TestApplyCommission_BackendRecordedSplitIsRespected(t *testing.T) {
	t.Parallel()

	// A split written by another system has no commission_applied_at; the
	// nonzero commission and earnings alone must protect it.
	earnings := 135.0
	paymentRepo := NewMockPaymentRepository()
	paymentRepo.AddPayment(&domain.Payment{
		ID:             "pay-1",
		Amount:         150.0,
		Status:         domain.PaymentStatusSuccess,
		Commission:     15.0,
		DriverEarnings: &earnings,
	})

	svc := newPaymentService(paymentRepo, NewMockLockStore())

	split, err := svc.ApplyCommission(context.Background(), service.ApplyCommissionRequest{PaymentID: "pay-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !split.AlreadyApplied {
		t.Fatal("expected already-applied result")
	}
	if split.PlatformCommission != 15.0 || split.DriverPayout != 135.0 {
		t.Errorf("expected recorded 15/135, got %v/%v", split.PlatformCommission, split.DriverPayout)
	}
	if split.PlatformPercentage != 10.0 {
		t.Errorf("expected back-computed 10%% platform share, got %v", split.PlatformPercentage)
	}
	if count := atomic.LoadInt32(&paymentRepo.ApplySplitCallCount); count != 0 {
		t.Errorf("expected no writes, got %d", count)
	}
}

func TestApplyCommission_OverrideRecomputes(t *testing.T) {
	t.Parallel()

	appliedAt := time.Now().UTC().Add(-time.Hour)
	paymentRepo := NewMockPaymentRepository()
	paymentRepo.AddPayment(&domain.Payment{
		ID:                  "pay-1",
		Amount:              100.0,
		Status:              domain.PaymentStatusSuccess,
		Commission:          20.0,
		DriverPayout:        80.0,
		CommissionRate:      20.0,
		CommissionAppliedAt: &appliedAt,
	})

	svc := newPaymentService(paymentRepo, NewMockLockStore())

	split, err := svc.ApplyCommission(context.Background(), service.ApplyCommissionRequest{
		PaymentID: "pay-1",
		Rate:      25.0,
		Override:  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if split.AlreadyApplied {
		t.Error("override should recompute, not echo")
	}
	if split.PlatformCommission != 25.0 || split.DriverPayout != 75.0 {
		t.Errorf("expected 25/75 split, got %v/%v", split.PlatformCommission, split.DriverPayout)
	}

	stored := paymentRepo.GetPayment("pay-1")
	if stored.Commission != 25.0 {
		t.Errorf("override not persisted, commission=%v", stored.Commission)
	}
	if !stored.CommissionAppliedAt.After(appliedAt) {
		t.Error("expected commission_applied_at to advance on override")
	}
}

func TestApplyCommission_FailsWhenLockHeld(t *testing.T) {
	t.Parallel()

	paymentRepo := NewMockPaymentRepository()
	paymentRepo.AddPayment(&domain.Payment{ID: "pay-1", Amount: 100.0})

	lockStore := NewMockLockStore()
	lockStore.HoldLock("pay-1")

	svc := newPaymentService(paymentRepo, lockStore)

	_, err := svc.ApplyCommission(context.Background(), service.ApplyCommissionRequest{PaymentID: "pay-1"})
	if err != service.ErrPaymentLocked {
		t.Errorf("expected ErrPaymentLocked, got %v", err)
	}
	if count := atomic.LoadInt32(&paymentRepo.ApplySplitCallCount); count != 0 {
		t.Errorf("locked apply must not write, got %d ApplySplit calls", count)
	}
}

func TestApplyCommission_ReleasesLockAfterApply(t *testing.T) {
	t.Parallel()

	paymentRepo := NewMockPaymentRepository()
	paymentRepo.AddPayment(&domain.Payment{ID: "pay-1", Amount: 100.0})

	lockStore := NewMockLockStore()
	svc := newPaymentService(paymentRepo, lockStore)
	ctx := context.Background()

	if _, err := svc.ApplyCommission(ctx, service.ApplyCommissionRequest{PaymentID: "pay-1"}); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	if count := atomic.LoadInt32(&lockStore.ReleaseCallCount); count != 1 {
		t.Fatalf("expected 1 lock release, got %d", count)
	}

	// Lock must be free again for the next operator.
	if _, err := svc.ApplyCommission(ctx, service.ApplyCommissionRequest{PaymentID: "pay-1"}); err != nil {
		t.Errorf("re-apply after release failed: %v", err)
	}
}

func TestApplyCommission_InvalidatesDashboardSnapshots(t *testing.T) {
	t.Parallel()

	paymentRepo := NewMockPaymentRepository()
	paymentRepo.AddPayment(&domain.Payment{ID: "pay-1", Amount: 100.0})

	cacheStore := NewMockCacheStore()
	engine := commission.NewEngine(commission.DefaultConfig())
	svc := service.NewPaymentService(paymentRepo, engine, nil, cacheStore)
	ctx := context.Background()

	if _, err := svc.ApplyCommission(ctx, service.ApplyCommissionRequest{PaymentID: "pay-1"}); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if n := atomic.LoadInt32(&cacheStore.InvalidateCallCount); n != 1 {
		t.Errorf("expected 1 overview invalidation, got %d", n)
	}
	if n := atomic.LoadInt32(&cacheStore.InvalidateTrendsCallCount); n != 1 {
		t.Errorf("expected 1 trends invalidation, got %d", n)
	}

	// A no-op re-apply writes nothing and must leave the caches alone.
	if _, err := svc.ApplyCommission(ctx, service.ApplyCommissionRequest{PaymentID: "pay-1"}); err != nil {
		t.Fatalf("re-apply failed: %v", err)
	}
	if n := atomic.LoadInt32(&cacheStore.InvalidateCallCount); n != 1 {
		t.Errorf("already-applied must not invalidate, got %d calls", n)
	}
}

func TestApplyCommission_EmptyPaymentID(t *testing.T) {
	t.Parallel()

	svc := newPaymentService(NewMockPaymentRepository(), NewMockLockStore())

	_, err := svc.ApplyCommission(context.Background(), service.ApplyCommissionRequest{})
	if err != service.ErrInvalidPaymentID {
		t.Errorf("expected ErrInvalidPaymentID, got %v", err)
	}
}
