package service

import (
	"context"
	"time"

	"tridash/internal/commission"
	"tridash/internal/domain"
	"tridash/internal/redis"
	"tridash/internal/repository"
)

// paymentLockTTL bounds how long an apply can hold a payment lock.
const paymentLockTTL = 10 * time.Second

// PaymentService handles payment verification and commission application.
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	engine      *commission.Engine
	lockStore   redis.LockStoreInterface
	cacheStore  redis.CacheStoreInterface
}

// NewPaymentService creates a new PaymentService. lockStore may be nil, in
// which case concurrent applies fall back to the repository's already-applied
// check alone. cacheStore may be nil; when set, payment writes invalidate the
// dashboard snapshots so revenue figures never lag a settlement.
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	engine *commission.Engine,
	lockStore redis.LockStoreInterface,
	cacheStore redis.CacheStoreInterface,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		engine:      engine,
		lockStore:   lockStore,
		cacheStore:  cacheStore,
	}
}

// ListPayments returns all payments.
func (s *PaymentService) ListPayments(ctx context.Context) ([]*domain.Payment, error) {
	return s.paymentRepo.GetAll(ctx)
}

// GetPayment retrieves a payment by ID.
func (s *PaymentService) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if paymentID == "" {
		return nil, ErrInvalidPaymentID
	}
	return s.paymentRepo.GetByID(ctx, paymentID)
}

// ApplyCommissionRequest contains the parameters for applying a commission split.
type ApplyCommissionRequest struct {
	PaymentID string
	Rate      float64 // <= 0 means use the configured default
	Override  bool    // recompute even if a split is already recorded
}

// ApplyCommission computes and persists the platform/driver split for a payment.
//
// The operation is idempotent: if the payment already carries a durable split,
// the recorded values are returned untouched unless Override is set. A
// per-payment Redis lock covers the read-compute-write window.
func (s *PaymentService) ApplyCommission(ctx context.Context, req ApplyCommissionRequest) (*commission.Split, error) {
	if req.PaymentID == "" {
		return nil, ErrInvalidPaymentID
	}

	if s.lockStore != nil {
		ok, err := s.lockStore.AcquirePaymentLock(ctx, req.PaymentID, paymentLockTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrPaymentLocked
		}
		defer func() {
			_ = s.lockStore.ReleasePaymentLock(ctx, req.PaymentID)
		}()
	}

	payment, err := s.paymentRepo.GetByID(ctx, req.PaymentID)
	if err != nil {
		return nil, err
	}

	var existing *commission.Applied
	if !req.Override && payment.SplitApplied() {
		existing = &commission.Applied{
			Commission:   payment.Commission,
			DriverPayout: payment.EarningsAmount(),
		}
	}

	split := s.engine.ComputeSplit(payment.Amount, req.Rate, existing)
	if split.AlreadyApplied {
		// Recorded values stand; nothing to persist.
		return &split, nil
	}

	appliedAt := time.Now().UTC()
	err = s.paymentRepo.ApplySplit(ctx, payment.ID,
		split.PlatformCommission, split.DriverPayout, split.CommissionRate, appliedAt)
	if err != nil {
		return nil, err
	}

	s.invalidateSnapshots(ctx)
	return &split, nil
}

// VerifyPayment marks a pending payment as successful after manual review.
func (s *PaymentService) VerifyPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if paymentID == "" {
		return nil, ErrInvalidPaymentID
	}

	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status != domain.PaymentStatusPending {
		return nil, ErrPaymentNotPending
	}

	if err := s.paymentRepo.UpdateStatus(ctx, paymentID, domain.PaymentStatusSuccess); err != nil {
		return nil, err
	}
	payment.Status = domain.PaymentStatusSuccess

	s.invalidateSnapshots(ctx)
	return payment, nil
}

// invalidateSnapshots drops the cached dashboard aggregates after a payment
// write. Verification moves a payment into the revenue series and a split
// changes commission totals, so both snapshots are stale.
func (s *PaymentService) invalidateSnapshots(ctx context.Context) {
	if s.cacheStore == nil {
		return
	}
	_ = s.cacheStore.InvalidateOverview(ctx)
	_ = s.cacheStore.InvalidateTrends(ctx)
}
