package repository

import (
	"context"
	"time"

	"tridash/internal/domain"
)

// PaymentRepository defines the persistence operations for payments.
type PaymentRepository interface {
	// GetByID retrieves a payment by ID.
	GetByID(ctx context.Context, id string) (*domain.Payment, error)

	// GetAll retrieves all payments, newest first.
	GetAll(ctx context.Context) ([]*domain.Payment, error)

	// GetCreatedSince retrieves payments created at or after the given time.
	GetCreatedSince(ctx context.Context, since time.Time) ([]*domain.Payment, error)

	// ApplySplit persists a commission split onto a payment row.
	ApplySplit(ctx context.Context, id string, commission, driverPayout, rate float64, appliedAt time.Time) error

	// UpdateStatus updates the status of a payment.
	UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error
}
