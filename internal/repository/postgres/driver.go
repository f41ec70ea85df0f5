package postgres

import (
	"context"
	"database/sql"
	"errors"

	"tridash/internal/domain"
	"tridash/internal/repository"
)

// DriverRepository is a PostgreSQL implementation of repository.DriverRepository.
type DriverRepository struct {
	q Querier
}

// NewDriverRepository creates a new PostgreSQL driver repository.
func NewDriverRepository(db *sql.DB) *DriverRepository {
	return &DriverRepository{q: db}
}

// NewDriverRepositoryWithTx creates a driver repository using a transaction.
func NewDriverRepositoryWithTx(tx *sql.Tx) *DriverRepository {
	return &DriverRepository{q: tx}
}

const driverColumns = `
	id, COALESCE(user_id, ''), COALESCE(approved, false), COALESCE(rejected, false),
	COALESCE(suspended, false), COALESCE(verification_status, 'pending'),
	COALESCE(online, false), COALESCE(rating, 0),
	COALESCE(total_rides, 0), COALESCE(completed_rides, 0),
	COALESCE(total_earnings, 0), created_at
`

// GetByID retrieves a driver by ID.
func (r *DriverRepository) GetByID(ctx context.Context, id string) (*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`

	var driver domain.Driver
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&driver.ID,
		&driver.UserID,
		&driver.Approved,
		&driver.Rejected,
		&driver.Suspended,
		&driver.VerificationStatus,
		&driver.Online,
		&driver.Rating,
		&driver.TotalRides,
		&driver.CompletedRides,
		&driver.TotalEarnings,
		&driver.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &driver, nil
}

// GetAll retrieves all drivers.
func (r *DriverRepository) GetAll(ctx context.Context) ([]*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers ORDER BY created_at DESC`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drivers []*domain.Driver
	for rows.Next() {
		var driver domain.Driver
		if err := rows.Scan(
			&driver.ID,
			&driver.UserID,
			&driver.Approved,
			&driver.Rejected,
			&driver.Suspended,
			&driver.VerificationStatus,
			&driver.Online,
			&driver.Rating,
			&driver.TotalRides,
			&driver.CompletedRides,
			&driver.TotalEarnings,
			&driver.CreatedAt,
		); err != nil {
			return nil, err
		}
		drivers = append(drivers, &driver)
	}
	return drivers, rows.Err()
}

// SetDisposition updates the moderation flags on a driver.
func (r *DriverRepository) SetDisposition(ctx context.Context, id string, approved, rejected, suspended bool, status domain.VerificationStatus) error {
	query := `
		UPDATE drivers
		SET approved = $1, rejected = $2, suspended = $3, verification_status = $4
		WHERE id = $5
	`

	result, err := r.q.ExecContext(ctx, query, approved, rejected, suspended, status, id)
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

// VehicleRepository is a PostgreSQL implementation of repository.VehicleRepository.
type VehicleRepository struct {
	q Querier
}

// NewVehicleRepository creates a new PostgreSQL vehicle repository.
func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{q: db}
}

// GetByDriverID retrieves all vehicles registered to a driver.
func (r *VehicleRepository) GetByDriverID(ctx context.Context, driverID string) ([]*domain.DriverVehicle, error) {
	query := `
		SELECT id, driver_id, COALESCE(plate, ''), COALESCE(model, ''),
		       COALESCE(color, ''), COALESCE(capacity, 0)
		FROM driver_vehicles WHERE driver_id = $1 ORDER BY id
	`

	rows, err := r.q.QueryContext(ctx, query, driverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*domain.DriverVehicle
	for rows.Next() {
		var v domain.DriverVehicle
		if err := rows.Scan(&v.ID, &v.DriverID, &v.Plate, &v.Model, &v.Color, &v.Capacity); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, &v)
	}
	return vehicles, rows.Err()
}
