package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tridash/internal/domain"
	"tridash/internal/repository"
)

// PaymentRepository is a PostgreSQL implementation of repository.PaymentRepository.
type PaymentRepository struct {
	q Querier
}

// NewPaymentRepository creates a new PostgreSQL payment repository.
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{q: db}
}

// NewPaymentRepositoryWithTx creates a payment repository using a transaction.
func NewPaymentRepositoryWithTx(tx *sql.Tx) *PaymentRepository {
	return &PaymentRepository{q: tx}
}

const paymentColumns = `
	id, COALESCE(ride_id, ''), COALESCE(amount, 0), COALESCE(currency, 'PHP'),
	status, COALESCE(payment_type, 'ride_payment'),
	COALESCE(commission, 0), COALESCE(driver_payout, 0), driver_earnings,
	COALESCE(commission_rate, 0), commission_applied_at, created_at
`

// GetByID retrieves a payment by ID.
func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	payment, err := scanPayment(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return payment, nil
}

// GetAll retrieves all payments, newest first.
func (r *PaymentRepository) GetAll(ctx context.Context) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY created_at DESC`
	return r.queryPayments(ctx, query)
}

// GetCreatedSince retrieves payments created at or after the given time.
func (r *PaymentRepository) GetCreatedSince(ctx context.Context, since time.Time) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE created_at >= $1 ORDER BY created_at`
	return r.queryPayments(ctx, query, since)
}

func (r *PaymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]*domain.Payment, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

// ApplySplit persists a commission split onto a payment row.
func (r *PaymentRepository) ApplySplit(ctx context.Context, id string, commission, driverPayout, rate float64, appliedAt time.Time) error {
	query := `
		UPDATE payments
		SET commission = $1, driver_payout = $2, driver_earnings = $2,
		    commission_rate = $3, commission_applied_at = $4
		WHERE id = $5
	`

	result, err := r.q.ExecContext(ctx, query, commission, driverPayout, rate, appliedAt, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// UpdateStatus updates the status of a payment.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	query := `UPDATE payments SET status = $1 WHERE id = $2`

	result, err := r.q.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var payment domain.Payment
	var earnings sql.NullFloat64
	var appliedAt sql.NullTime

	err := row.Scan(
		&payment.ID,
		&payment.RideID,
		&payment.Amount,
		&payment.Currency,
		&payment.Status,
		&payment.PaymentType,
		&payment.Commission,
		&payment.DriverPayout,
		&earnings,
		&payment.CommissionRate,
		&appliedAt,
		&payment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if earnings.Valid {
		payment.DriverEarnings = &earnings.Float64
	}
	if appliedAt.Valid {
		payment.CommissionAppliedAt = &appliedAt.Time
	}
	return &payment, nil
}
