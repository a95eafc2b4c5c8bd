package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/student-diary/internal/logger"
	"github.com/sbilibin2017/student-diary/internal/models"
	"github.com/sbilibin2017/student-diary/internal/validators"
)

//go:generate mockgen -source=diary.go -destination=diary_mock.go -package=services

const (
	MsgEntryCreated  = "Diary entry created successfully."
	MsgEntryUpdated  = "Diary entry updated successfully."
	MsgEntryDeleted  = "Diary entry deleted successfully."
	MsgEntryNotFound = "Diary entry not found."
	MsgEntryIDEmpty  = "Diary entry id is required."
)

// DiaryEntryReader defines read-only operations for diary entries.
type DiaryEntryReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.DiaryEntryDB, error)
	GetByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*models.DiaryEntryDB, error)
}

// DiaryEntryWriter defines write operations for diary entries.
type DiaryEntryWriter interface {
	Create(ctx context.Context, entry *models.DiaryEntryDB) error
	Update(ctx context.Context, id, userID uuid.UUID, title, content string, at time.Time) (*models.DiaryEntryDB, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

// DiaryManager is the diary contract used by handlers.
type DiaryManager interface {
	GetUserEntries(ctx context.Context, userID uuid.UUID) ([]models.DiaryEntry, error)
	GetEntryByID(ctx context.Context, entryID, userID uuid.UUID) (*models.DiaryEntry, error)
	CreateEntry(ctx context.Context, userID uuid.UUID, req models.CreateDiaryEntryRequest) (models.Result, *models.DiaryEntry, error)
	UpdateEntry(ctx context.Context, userID uuid.UUID, req models.UpdateDiaryEntryRequest) (models.Result, *models.DiaryEntry, error)
	DeleteEntry(ctx context.Context, entryID, userID uuid.UUID) (models.Result, error)
}

var _ DiaryManager = (*DiaryService)(nil)

// DiaryService manages diary entries. Every operation is scoped to the
// calling user; an entry owned by someone else looks exactly like a
// missing one.
type DiaryService struct {
	reader DiaryEntryReader
	writer DiaryEntryWriter
	now    func() time.Time
}

// NewDiaryService creates a new DiaryService instance.
func NewDiaryService(reader DiaryEntryReader, writer DiaryEntryWriter) *DiaryService {
	return &DiaryService{
		reader: reader,
		writer: writer,
		now:    time.Now,
	}
}

// GetUserEntries returns the user's entries, most recently modified first.
func (svc *DiaryService) GetUserEntries(ctx context.Context, userID uuid.UUID) ([]models.DiaryEntry, error) {
	rows, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list diary entries", "user_id", userID, "err", err)
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	entries := make([]models.DiaryEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, *rows[i].Entry())
	}
	return entries, nil
}

// GetEntryByID returns the entry, or nil when it is missing or not owned by userID.
func (svc *DiaryService) GetEntryByID(ctx context.Context, entryID, userID uuid.UUID) (*models.DiaryEntry, error) {
	row, err := svc.reader.GetByIDAndUserID(ctx, entryID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get diary entry", "entry_id", entryID, "user_id", userID, "err", err)
		return nil, fmt.Errorf("loading entry: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	return row.Entry(), nil
}

// CreateEntry stores a new entry for userID.
func (svc *DiaryService) CreateEntry(
	ctx context.Context,
	userID uuid.UUID,
	req models.CreateDiaryEntryRequest,
) (models.Result, *models.DiaryEntry, error) {
	if errs := validators.Validate(req); len(errs) > 0 {
		return models.Failed(models.OutcomeValidation, validators.Describe(errs)), nil, nil
	}

	now := svc.now().UTC()
	row := &models.DiaryEntryDB{
		ID:               uuid.New(),
		UserID:           userID,
		Title:            req.Title,
		Content:          req.Content,
		CreatedDate:      now,
		LastModifiedDate: now,
	}
	if err := svc.writer.Create(ctx, row); err != nil {
		logger.Log.Errorw("failed to create diary entry", "user_id", userID, "err", err)
		return models.Result{}, nil, fmt.Errorf("creating entry: %w", err)
	}

	return models.Succeeded(MsgEntryCreated), row.Entry(), nil
}

// UpdateEntry rewrites title and content of an entry owned by userID.
func (svc *DiaryService) UpdateEntry(
	ctx context.Context,
	userID uuid.UUID,
	req models.UpdateDiaryEntryRequest,
) (models.Result, *models.DiaryEntry, error) {
	if req.ID == uuid.Nil {
		return models.Failed(models.OutcomeValidation, MsgEntryIDEmpty), nil, nil
	}
	if errs := validators.Validate(req); len(errs) > 0 {
		return models.Failed(models.OutcomeValidation, validators.Describe(errs)), nil, nil
	}

	row, err := svc.writer.Update(ctx, req.ID, userID, req.Title, req.Content, svc.now().UTC())
	if err != nil {
		logger.Log.Errorw("failed to update diary entry", "entry_id", req.ID, "user_id", userID, "err", err)
		return models.Result{}, nil, fmt.Errorf("updating entry: %w", err)
	}
	if row == nil {
		return models.Failed(models.OutcomeNotFound, MsgEntryNotFound), nil, nil
	}

	return models.Succeeded(MsgEntryUpdated), row.Entry(), nil
}

// DeleteEntry removes an entry owned by userID.
func (svc *DiaryService) DeleteEntry(ctx context.Context, entryID, userID uuid.UUID) (models.Result, error) {
	ok, err := svc.writer.Delete(ctx, entryID, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete diary entry", "entry_id", entryID, "user_id", userID, "err", err)
		return models.Result{}, fmt.Errorf("deleting entry: %w", err)
	}
	if !ok {
		return models.Failed(models.OutcomeNotFound, MsgEntryNotFound), nil
	}
	return models.Succeeded(MsgEntryDeleted), nil
}
