package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/student-diary/internal/models"
)

const userColumns = `id, username, email, password_hash, first_name, last_name, profile_picture_path,
	date_created, last_login_date, failed_login_attempts, lockout_end,
	password_reset_token_hash, password_reset_token_expiry`

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByUsernameOrEmail returns the user matching the username or the email.
// Nil arguments are ignored. Returns nil when nothing matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND username = $1)
		   OR ($2::VARCHAR IS NOT NULL AND email = $2)
		ORDER BY date_created
		LIMIT 1
	`
	return r.get(ctx, query, username, email)
}

// GetByID returns the user with the given id, or nil.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	return r.get(ctx, query, id)
}

// GetByResetTokenHash returns the user holding the reset token digest, or nil.
func (r *UserReadRepository) GetByResetTokenHash(ctx context.Context, digest string) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE password_reset_token_hash = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, digest)
	logQuery(query, []any{redacted}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserReadRepository) get(ctx context.Context, query string, args ...any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)
	logQuery(query, args, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new user. Unique index violations yield ErrDuplicateUser.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.UserDB) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, first_name, last_name,
			profile_picture_path, date_created, failed_login_attempts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0)
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.ProfilePicturePath, user.DateCreated)
	logQuery(query, []any{user.ID, user.Username, user.Email, redacted}, rowsAffected(res), err)

	if isUniqueViolation(err) {
		return ErrDuplicateUser
	}
	return err
}

// RegisterLoginFailure increments the failed login counter in one statement.
// A failure after an expired lockout starts a new count. Reaching
// maxAttempts sets lockout_end to lockoutEnd.
func (r *UserWriteRepository) RegisterLoginFailure(
	ctx context.Context,
	id uuid.UUID,
	now time.Time,
	maxAttempts int,
	lockoutEnd time.Time,
) (*models.LoginFailure, error) {
	query := `
		UPDATE users SET
			failed_login_attempts = CASE
				WHEN lockout_end IS NOT NULL AND lockout_end <= $2 THEN 1
				ELSE failed_login_attempts + 1
			END,
			lockout_end = CASE
				WHEN (CASE
					WHEN lockout_end IS NOT NULL AND lockout_end <= $2 THEN 1
					ELSE failed_login_attempts + 1
				END) >= $3 THEN $4
				WHEN lockout_end IS NOT NULL AND lockout_end <= $2 THEN NULL
				ELSE lockout_end
			END
		WHERE id = $1
		RETURNING failed_login_attempts, lockout_end
	`
	args := []any{id, now, maxAttempts, lockoutEnd}

	var failure models.LoginFailure
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &failure, query, args...)
	logQuery(query, args, failure, err)

	if err != nil {
		return nil, err
	}
	return &failure, nil
}

// RegisterLoginSuccess resets the failure counter and stamps the login time.
func (r *UserWriteRepository) RegisterLoginSuccess(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE users
		SET failed_login_attempts = 0, lockout_end = NULL, last_login_date = $2
		WHERE id = $1
	`
	args := []any{id, at}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, rowsAffected(res), err)
	return err
}

// UpdatePasswordHash replaces the stored hash without touching anything else.
func (r *UserWriteRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2 WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id, passwordHash)
	logQuery(query, []any{id, redacted}, rowsAffected(res), err)
	return err
}

// SetResetToken stores the digest of a new reset token, replacing any previous one.
func (r *UserWriteRepository) SetResetToken(ctx context.Context, id uuid.UUID, digest string, expiry time.Time) error {
	query := `
		UPDATE users
		SET password_reset_token_hash = $2, password_reset_token_expiry = $3
		WHERE id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id, digest, expiry)
	logQuery(query, []any{id, redacted, expiry}, rowsAffected(res), err)
	return err
}

// ClearResetToken removes the reset token and its expiry.
func (r *UserWriteRepository) ClearResetToken(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE users
		SET password_reset_token_hash = NULL, password_reset_token_expiry = NULL
		WHERE id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	logQuery(query, []any{id}, rowsAffected(res), err)
	return err
}

// ResetPassword replaces the hash and clears the reset token and any lockout,
// but only while the user still holds the unexpired token digest. Reports
// false when the token was already used, replaced or expired.
func (r *UserWriteRepository) ResetPassword(
	ctx context.Context,
	id uuid.UUID,
	digest string,
	passwordHash string,
	now time.Time,
) (bool, error) {
	query := `
		UPDATE users
		SET password_hash = $2,
		    password_reset_token_hash = NULL,
		    password_reset_token_expiry = NULL,
		    failed_login_attempts = 0,
		    lockout_end = NULL
		WHERE id = $1
		  AND password_reset_token_hash = $3
		  AND password_reset_token_expiry > $4
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id, passwordHash, digest, now)
	n := rowsAffected(res)
	logQuery(query, []any{id, redacted, redacted, now}, n, err)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpdateProfile writes the display fields and email. Reports false when
// the user does not exist.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName, email string) (bool, error) {
	query := `
		UPDATE users
		SET first_name = $2, last_name = $3, email = $4
		WHERE id = $1
	`
	args := []any{id, firstName, lastName, email}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	n := rowsAffected(res)
	logQuery(query, args, n, err)

	if isUniqueViolation(err) {
		return false, ErrDuplicateUser
	}
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpdateProfilePicture stores the picture path. Reports false when the
// user does not exist.
func (r *UserWriteRepository) UpdateProfilePicture(ctx context.Context, id uuid.UUID, path string) (bool, error) {
	query := `UPDATE users SET profile_picture_path = $2 WHERE id = $1`
	args := []any{id, path}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	n := rowsAffected(res)
	logQuery(query, args, n, err)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes the user; diary entries go with it through ON DELETE CASCADE.
func (r *UserWriteRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM users WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	n := rowsAffected(res)
	logQuery(query, []any{id}, n, err)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}
