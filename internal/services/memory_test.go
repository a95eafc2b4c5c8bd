package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/student-diary/internal/models"
	"github.com/sbilibin2017/student-diary/internal/repositories"
)

// memoryUsers is an in-memory user store with the same semantics as the
// SQL repositories.
type memoryUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]models.UserDB
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: make(map[uuid.UUID]models.UserDB)}
}

func (m *memoryUsers) find(match func(u models.UserDB) bool) *models.UserDB {
	for _, u := range m.users {
		if match(u) {
			found := u
			return &found
		}
	}
	return nil
}

func (m *memoryUsers) GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.find(func(u models.UserDB) bool {
		return (username != nil && u.Username == *username) || (email != nil && u.Email == *email)
	}), nil
}

func (m *memoryUsers) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.find(func(u models.UserDB) bool { return u.ID == id }), nil
}

func (m *memoryUsers) GetByResetTokenHash(ctx context.Context, digest string) (*models.UserDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.find(func(u models.UserDB) bool {
		return u.PasswordResetTokenHash != nil && *u.PasswordResetTokenHash == digest
	}), nil
}

func (m *memoryUsers) Create(ctx context.Context, user *models.UserDB) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repositories.ErrDuplicateUser
		}
	}
	m.users[user.ID] = *user
	return nil
}

func (m *memoryUsers) update(id uuid.UUID, fn func(u *models.UserDB)) bool {
	u, ok := m.users[id]
	if !ok {
		return false
	}
	fn(&u)
	m.users[id] = u
	return true
}

func (m *memoryUsers) RegisterLoginFailure(ctx context.Context, id uuid.UUID, now time.Time, maxAttempts int, lockoutEnd time.Time) (*models.LoginFailure, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var failure models.LoginFailure
	m.update(id, func(u *models.UserDB) {
		if u.LockoutEnd != nil && !u.LockoutEnd.After(now) {
			u.FailedLoginAttempts = 1
			u.LockoutEnd = nil
		} else {
			u.FailedLoginAttempts++
		}
		if u.FailedLoginAttempts >= maxAttempts {
			end := lockoutEnd
			u.LockoutEnd = &end
		}
		failure = models.LoginFailure{FailedLoginAttempts: u.FailedLoginAttempts, LockoutEnd: u.LockoutEnd}
	})
	return &failure, nil
}

func (m *memoryUsers) RegisterLoginSuccess(ctx context.Context, id uuid.UUID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.update(id, func(u *models.UserDB) {
		u.FailedLoginAttempts = 0
		u.LockoutEnd = nil
		u.LastLoginDate = &at
	})
	return nil
}

func (m *memoryUsers) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.update(id, func(u *models.UserDB) { u.PasswordHash = passwordHash })
	return nil
}

func (m *memoryUsers) SetResetToken(ctx context.Context, id uuid.UUID, digest string, expiry time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.update(id, func(u *models.UserDB) {
		u.PasswordResetTokenHash = &digest
		u.PasswordResetTokenExpiry = &expiry
	})
	return nil
}

func (m *memoryUsers) ClearResetToken(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.update(id, func(u *models.UserDB) {
		u.PasswordResetTokenHash = nil
		u.PasswordResetTokenExpiry = nil
	})
	return nil
}

func (m *memoryUsers) ResetPassword(ctx context.Context, id uuid.UUID, digest, passwordHash string, now time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok || u.PasswordResetTokenHash == nil || *u.PasswordResetTokenHash != digest ||
		u.PasswordResetTokenExpiry == nil || !u.PasswordResetTokenExpiry.After(now) {
		return false, nil
	}
	return m.update(id, func(u *models.UserDB) {
		u.PasswordHash = passwordHash
		u.PasswordResetTokenHash = nil
		u.PasswordResetTokenExpiry = nil
		u.FailedLoginAttempts = 0
		u.LockoutEnd = nil
	}), nil
}

func (m *memoryUsers) UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID != id && u.Email == email {
			return false, repositories.ErrDuplicateUser
		}
	}
	return m.update(id, func(u *models.UserDB) {
		u.FirstName = firstName
		u.LastName = lastName
		u.Email = email
	}), nil
}

func (m *memoryUsers) UpdateProfilePicture(ctx context.Context, id uuid.UUID, path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.update(id, func(u *models.UserDB) { u.ProfilePicturePath = path }), nil
}

func (m *memoryUsers) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	delete(m.users, id)
	return true, nil
}

// recordingNotifier keeps every notification it is handed.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []models.PasswordResetNotification
	err  error
}

func (n *recordingNotifier) Notify(ctx context.Context, msg models.PasswordResetNotification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	return n.err
}

func (n *recordingNotifier) notifications() []models.PasswordResetNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]models.PasswordResetNotification(nil), n.sent...)
}

// staleTokenReader returns the user as it looked before any reset, the way
// two interleaved requests both see the token.
type staleTokenReader struct {
	*memoryUsers
	snapshot *models.UserDB
}

func (r *staleTokenReader) GetByResetTokenHash(ctx context.Context, digest string) (*models.UserDB, error) {
	if r.snapshot == nil || r.snapshot.PasswordResetTokenHash == nil || *r.snapshot.PasswordResetTokenHash != digest {
		return nil, nil
	}
	u := *r.snapshot
	return &u, nil
}

// blockingNotifier holds every delivery until release is closed.
type blockingNotifier struct {
	release   chan struct{}
	delivered chan models.PasswordResetNotification
}

func newBlockingNotifier() *blockingNotifier {
	return &blockingNotifier{
		release:   make(chan struct{}),
		delivered: make(chan models.PasswordResetNotification, 1),
	}
}

func (n *blockingNotifier) Notify(ctx context.Context, msg models.PasswordResetNotification) error {
	select {
	case <-n.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	n.delivered <- msg
	return nil
}
