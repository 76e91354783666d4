package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateEmail is returned by CreateUser when the email unique
// constraint is violated. The existence pre-check cannot catch two
// concurrent signups, so callers must handle this too.
var ErrDuplicateEmail = errors.New("email already registered")

const userColumns = `id, role, email, password_hash, contact_number,
	COALESCE(full_name, ''), COALESCE(name_with_initials, ''), birthday, COALESCE(gender, ''),
	COALESCE(company_name, ''), COALESCE(industry, ''), COALESCE(registration_number, ''),
	COALESCE(branch_location, ''), created_at`

// scanUser scans a full user row in userColumns order.
func scanUser(row pgx.Row) (*User, error) {
	var user User
	var birthday *time.Time
	err := row.Scan(&user.ID, &user.Role, &user.Email, &user.PasswordHash, &user.ContactNumber,
		&user.FullName, &user.NameWithInitials, &birthday, &user.Gender,
		&user.CompanyName, &user.Industry, &user.RegistrationNumber,
		&user.BranchLocation, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	if birthday != nil {
		user.Birthday = &Date{Time: *birthday}
	}
	return &user, nil
}

// CheckEmailExists reports whether a user with the given email is registered.
func (db *DB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

// CreateUser persists a new user record and returns its ID.
func (db *DB) CreateUser(ctx context.Context, input *UserInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (role, email, password_hash, contact_number,
		        full_name, name_with_initials, birthday, gender,
		        company_name, industry, registration_number, branch_location)
		 VALUES ($1, $2, $3, $4,
		         NULLIF($5, ''), NULLIF($6, ''), $7, NULLIF($8, ''),
		         NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''), NULLIF($12, ''))
		 RETURNING id`,
		input.Role, input.Email, input.PasswordHash, input.ContactNumber,
		input.FullName, input.NameWithInitials, input.Birthday, input.Gender,
		input.CompanyName, input.Industry, input.RegistrationNumber, input.BranchLocation,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return uuid.Nil, ErrDuplicateEmail
		}
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// GetUser retrieves a user by ID. Returns nil without error when no user
// matches.
func (db *DB) GetUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	user, err := scanUser(db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email. Returns nil without error when
// no user matches.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	user, err := scanUser(db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// UpdateUserProfile applies the non-nil fields of input to the user record
// and returns the updated row. Returns nil without error when no user
// matches.
func (db *DB) UpdateUserProfile(ctx context.Context, userID uuid.UUID, input *ProfileUpdateInput) (*User, error) {
	query := `UPDATE users SET id = id`
	args := []any{}
	argNum := 1

	set := func(column string, value any) {
		query += fmt.Sprintf(", %s = $%d", column, argNum)
		args = append(args, value)
		argNum++
	}

	if input.ContactNumber != nil {
		set("contact_number", *input.ContactNumber)
	}
	if input.FullName != nil {
		set("full_name", *input.FullName)
	}
	if input.NameWithInitials != nil {
		set("name_with_initials", *input.NameWithInitials)
	}
	if input.Birthday != nil {
		set("birthday", input.Birthday)
	}
	if input.Gender != nil {
		set("gender", *input.Gender)
	}
	if input.CompanyName != nil {
		set("company_name", *input.CompanyName)
	}
	if input.Industry != nil {
		set("industry", *input.Industry)
	}
	if input.RegistrationNumber != nil {
		set("registration_number", *input.RegistrationNumber)
	}
	if input.BranchLocation != nil {
		set("branch_location", *input.BranchLocation)
	}

	query += fmt.Sprintf(" WHERE id = $%d RETURNING %s", argNum, userColumns)
	args = append(args, userID)

	user, err := scanUser(db.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}
	return user, nil
}
