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

// DiaryEntryReadRepository handles diary entry read operations.
// Every query is scoped to the owning user.
type DiaryEntryReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewDiaryEntryReadRepository(db *sqlx.DB, txGetter TxGetter) *DiaryEntryReadRepository {
	return &DiaryEntryReadRepository{db: db, txGetter: txGetter}
}

// ListByUserID returns the user's entries, most recently modified first.
func (r *DiaryEntryReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.DiaryEntryDB, error) {
	const query = `
		SELECT id, user_id, title, content, created_date, last_modified_date
		FROM diary_entries
		WHERE user_id = $1
		ORDER BY last_modified_date DESC, id DESC
	`

	entries := []models.DiaryEntryDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &entries, query, userID)
	logQuery(query, []any{userID}, len(entries), err)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByIDAndUserID returns the entry only when userID owns it, nil otherwise.
func (r *DiaryEntryReadRepository) GetByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*models.DiaryEntryDB, error) {
	const query = `
		SELECT id, user_id, title, content, created_date, last_modified_date
		FROM diary_entries
		WHERE id = $1 AND user_id = $2
	`

	var entry models.DiaryEntryDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &entry, query, id, userID)
	logQuery(query, []any{id, userID}, entry.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// DiaryEntryWriteRepository handles diary entry write operations.
type DiaryEntryWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewDiaryEntryWriteRepository(db *sqlx.DB, txGetter TxGetter) *DiaryEntryWriteRepository {
	return &DiaryEntryWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new entry.
func (r *DiaryEntryWriteRepository) Create(ctx context.Context, entry *models.DiaryEntryDB) error {
	const query = `
		INSERT INTO diary_entries (id, user_id, title, content, created_date, last_modified_date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	args := []any{entry.ID, entry.UserID, entry.Title, entry.Content, entry.CreatedDate, entry.LastModifiedDate}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, []any{entry.ID, entry.UserID, entry.Title}, rowsAffected(res), err)
	return err
}

// Update rewrites title and content of an entry owned by userID.
// last_modified_date never moves before created_date.
// Returns nil when there is no such entry for this user.
func (r *DiaryEntryWriteRepository) Update(
	ctx context.Context,
	id, userID uuid.UUID,
	title, content string,
	at time.Time,
) (*models.DiaryEntryDB, error) {
	const query = `
		UPDATE diary_entries
		SET title = $3, content = $4, last_modified_date = GREATEST($5, created_date)
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, content, created_date, last_modified_date
	`

	var entry models.DiaryEntryDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &entry, query, id, userID, title, content, at)
	logQuery(query, []any{id, userID, title, at}, entry.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete removes an entry owned by userID. Reports false when nothing matched.
func (r *DiaryEntryWriteRepository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	const query = `DELETE FROM diary_entries WHERE id = $1 AND user_id = $2`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id, userID)
	n := rowsAffected(res)
	logQuery(query, []any{id, userID}, n, err)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}
