package postgres

import (
	"context"
	"database/sql"
	"errors"

	"tridash/internal/domain"
	"tridash/internal/repository"
)

// ProfileRepository is a PostgreSQL implementation of repository.ProfileRepository.
type ProfileRepository struct {
	q Querier
}

// NewProfileRepository creates a new PostgreSQL profile repository.
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{q: db}
}

const profileColumns = `
	id, COALESCE(email, ''), COALESCE(full_name, ''), COALESCE(phone, ''),
	role, COALESCE(password_hash, ''), COALESCE(is_driver_approved, false),
	COALESCE(online, false), COALESCE(is_active, true), COALESCE(rating, 0), created_at
`

// GetByID retrieves a profile by ID.
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByEmail retrieves a profile by email address.
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *ProfileRepository) getOne(ctx context.Context, query string, arg any) (*domain.Profile, error) {
	var p domain.Profile
	err := r.q.QueryRowContext(ctx, query, arg).Scan(
		&p.ID,
		&p.Email,
		&p.FullName,
		&p.Phone,
		&p.Role,
		&p.PasswordHash,
		&p.IsDriverApproved,
		&p.Online,
		&p.Active,
		&p.Rating,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetAll retrieves all profiles.
func (r *ProfileRepository) GetAll(ctx context.Context) ([]*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(
			&p.ID,
			&p.Email,
			&p.FullName,
			&p.Phone,
			&p.Role,
			&p.PasswordHash,
			&p.IsDriverApproved,
			&p.Online,
			&p.Active,
			&p.Rating,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, &p)
	}
	return profiles, rows.Err()
}

// SetActive enables or disables a profile.
func (r *ProfileRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE profiles SET is_active = $1 WHERE id = $2`

	result, err := r.q.ExecContext(ctx, query, active, id)
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
