// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/zooner-app/zooner-backend/internal/adapter/postgres"
	"github.com/zooner-app/zooner-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, username, password_hash, phone_number, bio, location,
	role, avatar_url, is_verified, is_active, last_active, created_at, updated_at`

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row userRow
	err := pgxscan.Get(ctx, q, &row,
		`INSERT INTO users (id, email, username, password_hash, phone_number, bio, location, role, last_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+userColumns,
		u.ID, u.Email, u.Username, u.PasswordHash, u.PhoneNumber, u.Bio, u.Location,
		string(u.Role), u.LastActive, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	result := row.toDomain()
	return &result, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row userRow
	err := pgxscan.Get(ctx, q, &row, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := row.toDomain()
	return &u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row userRow
	err := pgxscan.Get(ctx, q, &row, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	u := row.toDomain()
	return &u, nil
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row userRow
	err := pgxscan.Get(ctx, q, &row, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	u := row.toDomain()
	return &u, nil
}

// Update modifies the mutable profile fields of the given user.
func (r *Repo) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row userRow
	err := pgxscan.Get(ctx, q, &row,
		`UPDATE users
		 SET username = $2, phone_number = $3, bio = $4, location = $5, avatar_url = $6, updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		u.ID, u.Username, u.PhoneNumber, u.Bio, u.Location, u.AvatarURL,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	result := row.toDomain()
	return &result, nil
}

// UpdateRole changes the role of the given user.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE users SET role = $2, updated_at = now() WHERE id = $1`,
		id, string(role),
	)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}

	return nil
}

// UpdatePassword replaces the stored password hash of the given user.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}

	return nil
}

// TouchLastActive updates the last_active timestamp. Failures are not fatal
// for callers, so the row count is not checked.
func (r *Repo) TouchLastActive(ctx context.Context, id uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, `UPDATE users SET last_active = $2 WHERE id = $1`, id, at)
	return postgres.MapError(err, "user", id)
}

// SetActive toggles the is_active flag of the given user.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE users SET is_active = $2, updated_at = now() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}

	return nil
}

// userRow mirrors the users table for scany.
type userRow struct {
	ID           uuid.UUID  `db:"id"`
	Email        string     `db:"email"`
	Username     string     `db:"username"`
	PasswordHash string     `db:"password_hash"`
	PhoneNumber  *string    `db:"phone_number"`
	Bio          string     `db:"bio"`
	Location     string     `db:"location"`
	Role         string     `db:"role"`
	AvatarURL    *string    `db:"avatar_url"`
	IsVerified   bool       `db:"is_verified"`
	IsActive     bool       `db:"is_active"`
	LastActive   time.Time  `db:"last_active"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (row userRow) toDomain() domain.User {
	return domain.User{
		ID:           row.ID,
		Email:        row.Email,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		PhoneNumber:  row.PhoneNumber,
		Bio:          row.Bio,
		Location:     row.Location,
		Role:         domain.UserRole(row.Role),
		AvatarURL:    row.AvatarURL,
		IsVerified:   row.IsVerified,
		IsActive:     row.IsActive,
		LastActive:   row.LastActive,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
