package tests

import (
	"context"
	"sync/atomic"
	"testing"

	"tridash/internal/commission"
	"tridash/internal/domain"
	"tridash/internal/repository"
	"tridash/internal/service"
)

// ──────────────────────────────────────────────
// PAYMENT VERIFICATION
// ──────────────────────────────────────────────

func TestVerifyPayment_PendingBecomesSuccess(t *testing.T) {
	t.Parallel()

	paymentRepo := NewMockPaymentRepository()
	paymentRepo.AddPayment(&domain.Payment{
		ID:     "pay-1",
		Amount: 45.0,
		Status: domain.PaymentStatusPending,
	})

	svc := newPaymentService(paymentRepo, nil)

	payment, err := svc.VerifyPayment(context.Background(), "pay-1")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if payment.Status != domain.PaymentStatusSuccess {
		t.Errorf("expected success, got %s", payment.Status)
	}
	if stored := paymentRepo.GetPayment("pay-1"); stored.Status != domain.PaymentStatusSuccess {
		t.Errorf("status not persisted, got %s", stored.Status)
	}
}

func TestVerifyPayment_RejectsNonPending(t *testing.T) {
	t.Parallel()

	paymentRepo := NewMockPaymentRepository()
	paymentRepo.AddPayment(&domain.Payment{ID: "pay-1", Status: domain.PaymentStatusSuccess})
	paymentRepo.AddPayment(&domain.Payment{ID: "pay-2", Status: domain.PaymentStatusFailed})

	svc := newPaymentService(paymentRepo, nil)
	ctx := context.Background()

	for _, id := range []string{"pay-1", "pay-2"} {
		if _, err := svc.VerifyPayment(ctx, id); err != service.ErrPaymentNotPending {
			t.Errorf("payment %s: expected ErrPaymentNotPending, got %v", id, err)
		}
	}
}

func TestVerifyPayment_InvalidatesDashboardSnapshots(t *testing.T) {
	t.Parallel()

	paymentRepo := NewMockPaymentRepository()
	paymentRepo.AddPayment(&domain.Payment{ID: "pay-1", Status: domain.PaymentStatusPending})

	cacheStore := NewMockCacheStore()
	engine := commission.NewEngine(commission.DefaultConfig())
	svc := service.NewPaymentService(paymentRepo, engine, nil, cacheStore)

	if _, err := svc.VerifyPayment(context.Background(), "pay-1"); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if n := atomic.LoadInt32(&cacheStore.InvalidateCallCount); n != 1 {
		t.Errorf("expected 1 overview invalidation, got %d", n)
	}
	if n := atomic.LoadInt32(&cacheStore.InvalidateTrendsCallCount); n != 1 {
		t.Errorf("expected 1 trends invalidation, got %d", n)
	}
}

func TestVerifyPayment_UnknownPayment(t *testing.T) {
	t.Parallel()

	svc := newPaymentService(NewMockPaymentRepository(), nil)

	if _, err := svc.VerifyPayment(context.Background(), "nope"); err != repository.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
