package domain

import "time"

// PaymentStatus represents the current status of a payment.
type PaymentStatus string

const (
	PaymentStatusSuccess  PaymentStatus = "success"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
	PaymentStatusDisputed PaymentStatus = "disputed"
)

// PaymentType represents what a payment record settles.
type PaymentType string

const (
	PaymentTypeRidePayment  PaymentType = "ride_payment"
	PaymentTypeDriverPayout PaymentType = "driver_payout"
	PaymentTypeWalletTopup  PaymentType = "wallet_topup"
	PaymentTypeRefund       PaymentType = "refund"
)

// Payment represents a payment row from the backend.
//
// Commission fields may be unset on rows the split has never been applied to.
// Once CommissionAppliedAt is set (or Commission > 0 and DriverPayout > 0) the
// split is durable and a blind recompute must not overwrite it.
type Payment struct {
	ID                  string
	RideID              string
	Amount              float64
	Currency            string
	Status              PaymentStatus
	PaymentType         PaymentType
	Commission          float64
	DriverPayout        float64
	DriverEarnings      *float64 // legacy column; nil when the backend wrote driver_payout instead
	CommissionRate      float64
	CommissionAppliedAt *time.Time
	CreatedAt           time.Time
}

// EarningsAmount returns the driver's cut of this payment, preferring the
// legacy driver_earnings column when present.
func (p Payment) EarningsAmount() float64 {
	if p.DriverEarnings != nil {
		return *p.DriverEarnings
	}
	return p.DriverPayout
}

// SplitApplied reports whether a commission split has already been durably
// recorded on this payment.
func (p Payment) SplitApplied() bool {
	if p.CommissionAppliedAt != nil {
		return true
	}
	return p.Commission > 0 && p.EarningsAmount() > 0
}
