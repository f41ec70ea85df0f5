package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tridash/internal/domain"
	"tridash/internal/repository"
)

// RideRepository is a PostgreSQL implementation of repository.RideRepository.
type RideRepository struct {
	q Querier
}

// NewRideRepository creates a new PostgreSQL ride repository.
func NewRideRepository(db *sql.DB) *RideRepository {
	return &RideRepository{q: db}
}

// NewRideRepositoryWithTx creates a ride repository using a transaction.
func NewRideRepositoryWithTx(tx *sql.Tx) *RideRepository {
	return &RideRepository{q: tx}
}

const rideColumns = `
	id, COALESCE(passenger_id, ''), COALESCE(driver_id, ''), status,
	COALESCE(fare, 0), actual_fare,
	COALESCE(pickup_address, ''), COALESCE(dropoff_address, ''),
	COALESCE(distance_km, 0), COALESCE(duration_min, 0), created_at
`

// GetByID retrieves a ride by ID.
func (r *RideRepository) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`

	ride, err := scanRide(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return ride, nil
}

// GetAll retrieves all rides, newest first.
func (r *RideRepository) GetAll(ctx context.Context) ([]*domain.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides ORDER BY created_at DESC`
	return r.queryRides(ctx, query)
}

// GetCreatedSince retrieves rides created at or after the given time.
func (r *RideRepository) GetCreatedSince(ctx context.Context, since time.Time) ([]*domain.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE created_at >= $1 ORDER BY created_at`
	return r.queryRides(ctx, query, since)
}

func (r *RideRepository) queryRides(ctx context.Context, query string, args ...any) ([]*domain.Ride, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rides []*domain.Ride
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, err
		}
		rides = append(rides, ride)
	}
	return rides, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRide(row rowScanner) (*domain.Ride, error) {
	var ride domain.Ride
	var actualFare sql.NullFloat64

	err := row.Scan(
		&ride.ID,
		&ride.PassengerID,
		&ride.DriverID,
		&ride.Status,
		&ride.Fare,
		&actualFare,
		&ride.PickupAddress,
		&ride.DropoffAddress,
		&ride.DistanceKm,
		&ride.DurationMin,
		&ride.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if actualFare.Valid {
		ride.ActualFare = &actualFare.Float64
	}
	return &ride, nil
}
