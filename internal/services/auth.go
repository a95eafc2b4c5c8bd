package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/student-diary/internal/logger"
	"github.com/sbilibin2017/student-diary/internal/models"
	"github.com/sbilibin2017/student-diary/internal/password"
	"github.com/sbilibin2017/student-diary/internal/repositories"
	"github.com/sbilibin2017/student-diary/internal/validators"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Result messages returned to the presentation layer.
const (
	MsgRegistered            = "Registration successful."
	MsgPasswordMismatch      = "The password and confirmation password do not match."
	MsgUsernameTaken         = "Username already exists."
	MsgEmailTaken            = "Email already exists."
	MsgUserTaken             = "Username or email already exists."
	MsgInvalidCredentials    = "Invalid username or password."
	MsgAccountLocked         = "Account is locked due to too many failed login attempts. Try again later."
	MsgLoggedIn              = "Login successful."
	MsgResetRequested        = "If an account with that email exists, a password reset link has been sent."
	MsgInvalidResetToken     = "Invalid or expired password reset token."
	MsgPasswordReset         = "Your password has been reset."
	MsgUserNotFound          = "User not found."
	MsgProfileUpdated        = "Profile updated successfully."
	MsgPicturePathRequired   = "Profile picture path is required."
	MsgProfilePictureUpdated = "Profile picture updated successfully."
	MsgAccountDeleted        = "Account deleted."
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	GetByResetTokenHash(ctx context.Context, digest string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user *models.UserDB) error
	RegisterLoginFailure(ctx context.Context, id uuid.UUID, now time.Time, maxAttempts int, lockoutEnd time.Time) (*models.LoginFailure, error)
	RegisterLoginSuccess(ctx context.Context, id uuid.UUID, at time.Time) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
	SetResetToken(ctx context.Context, id uuid.UUID, digest string, expiry time.Time) error
	ClearResetToken(ctx context.Context, id uuid.UUID) error
	ResetPassword(ctx context.Context, id uuid.UUID, digest, passwordHash string, now time.Time) (bool, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName, email string) (bool, error)
	UpdateProfilePicture(ctx context.Context, id uuid.UUID, path string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// PasswordResetNotifier delivers reset tokens to their owners.
type PasswordResetNotifier interface {
	Notify(ctx context.Context, n models.PasswordResetNotification) error
}

// AuthManager is the account and authentication contract used by handlers.
type AuthManager interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.Result, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Result, *models.UserProfile, error)
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.Result, error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.Result, error)
	GetUserProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (models.Result, error)
	UpdateProfilePicture(ctx context.Context, userID uuid.UUID, path string) (models.Result, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) (models.Result, error)
	HashPassword(password string) (string, error)
	VerifyPassword(password, hash string) bool
}

var _ AuthManager = (*AuthService)(nil)

// AuthPolicy holds the lockout and reset token settings.
type AuthPolicy struct {
	MaxFailedAttempts int           // Failed logins before lockout
	LockoutDuration   time.Duration // How long a lockout lasts
	ResetTokenTTL     time.Duration // Lifetime of a password reset token
}

// DefaultAuthPolicy returns 5 attempts, a 15 minute lockout and a 1 hour reset token.
func DefaultAuthPolicy() AuthPolicy {
	return AuthPolicy{
		MaxFailedAttempts: 5,
		LockoutDuration:   15 * time.Minute,
		ResetTokenTTL:     time.Hour,
	}
}

// notifyTimeout bounds a single password reset delivery.
const notifyTimeout = 10 * time.Second

// TxHook runs fn once the surrounding transaction of ctx has finished.
type TxHook func(ctx context.Context, fn func(committed bool))

func runNow(_ context.Context, fn func(committed bool)) {
	fn(true)
}

// AuthOption configures an AuthService.
type AuthOption func(*AuthService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) AuthOption {
	return func(s *AuthService) {
		s.now = now
	}
}

// WithHashParams sets the Argon2id parameters for new hashes.
func WithHashParams(p password.Params) AuthOption {
	return func(s *AuthService) {
		s.hashParams = p
	}
}

// WithTxHook defers reset notifications until the request transaction commits.
func WithTxHook(hook TxHook) AuthOption {
	return func(s *AuthService) {
		s.onTxDone = hook
	}
}

// AuthService handles registration, login, password reset and profiles.
type AuthService struct {
	reader     UserReader
	writer     UserWriter
	notifier   PasswordResetNotifier
	policy     AuthPolicy
	hashParams password.Params
	now        func() time.Time
	onTxDone   TxHook
	pending    sync.WaitGroup

	// verified against when the username is unknown so that the response
	// time does not reveal which usernames exist
	dummyHash string
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	notifier PasswordResetNotifier,
	policy AuthPolicy,
	opts ...AuthOption,
) *AuthService {
	svc := &AuthService{
		reader:     reader,
		writer:     writer,
		notifier:   notifier,
		policy:     policy,
		hashParams: password.DefaultParams(),
		now:        time.Now,
		onTxDone:   runNow,
	}
	for _, opt := range opts {
		opt(svc)
	}

	dummy, err := password.HashWithParams(uuid.NewString(), svc.hashParams)
	if err != nil {
		logger.Log.Errorw("failed to prepare dummy hash", "err", err)
	}
	svc.dummyHash = dummy

	return svc
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account.
func (svc *AuthService) Register(ctx context.Context, req models.RegisterRequest) (models.Result, error) {
	if errs := validators.Validate(req); len(errs) > 0 {
		return models.Failed(models.OutcomeValidation, validators.Describe(errs)), nil
	}
	if req.Password != req.ConfirmPassword {
		return models.Failed(models.OutcomeValidation, MsgPasswordMismatch), nil
	}

	username := req.Username
	email := normalizeEmail(req.Email)

	existing, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return models.Result{}, fmt.Errorf("checking existing user: %w", err)
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "username", username, "email", email)
		if existing.Username == username {
			return models.Failed(models.OutcomeConflict, MsgUsernameTaken), nil
		}
		return models.Failed(models.OutcomeConflict, MsgEmailTaken), nil
	}

	hash, err := svc.HashPassword(req.Password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return models.Result{}, err
	}

	user := &models.UserDB{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DateCreated:  svc.now().UTC(),
	}
	if err := svc.writer.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUser) {
			return models.Failed(models.OutcomeConflict, MsgUserTaken), nil
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return models.Result{}, fmt.Errorf("saving user: %w", err)
	}

	logger.Log.Infow("user registered", "user_id", user.ID, "username", username)
	return models.Succeeded(MsgRegistered), nil
}

// Login checks credentials and the lockout state and returns the profile on success.
func (svc *AuthService) Login(ctx context.Context, req models.LoginRequest) (models.Result, *models.UserProfile, error) {
	if errs := validators.Validate(req); len(errs) > 0 {
		return models.Failed(models.OutcomeValidation, validators.Describe(errs)), nil, nil
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, &req.Username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return models.Result{}, nil, fmt.Errorf("loading user: %w", err)
	}
	if user == nil {
		svc.VerifyPassword(req.Password, svc.dummyHash)
		logger.Log.Infow("login for unknown user", "username", req.Username)
		return models.Failed(models.OutcomeAuthentication, MsgInvalidCredentials), nil, nil
	}

	now := svc.now().UTC()
	if user.IsLockedOut(now) {
		logger.Log.Infow("login while locked out", "user_id", user.ID, "lockout_end", user.LockoutEnd)
		return models.Failed(models.OutcomeAuthentication, MsgAccountLocked), nil, nil
	}

	if !svc.VerifyPassword(req.Password, user.PasswordHash) {
		failure, err := svc.writer.RegisterLoginFailure(ctx, user.ID, now, svc.policy.MaxFailedAttempts, now.Add(svc.policy.LockoutDuration))
		if err != nil {
			logger.Log.Errorw("failed to record login failure", "user_id", user.ID, "err", err)
			return models.Result{}, nil, fmt.Errorf("recording login failure: %w", err)
		}
		logger.Log.Infow("invalid credentials", "user_id", user.ID, "failed_login_attempts", failure.FailedLoginAttempts)
		if failure.LockoutEnd != nil && failure.LockoutEnd.After(now) {
			return models.Failed(models.OutcomeAuthentication, MsgAccountLocked), nil, nil
		}
		return models.Failed(models.OutcomeAuthentication, MsgInvalidCredentials), nil, nil
	}

	if err := svc.writer.RegisterLoginSuccess(ctx, user.ID, now); err != nil {
		logger.Log.Errorw("failed to record login", "user_id", user.ID, "err", err)
		return models.Result{}, nil, fmt.Errorf("recording login: %w", err)
	}
	svc.upgradeHash(ctx, user, req.Password)

	user.FailedLoginAttempts = 0
	user.LockoutEnd = nil
	user.LastLoginDate = &now

	return models.Succeeded(MsgLoggedIn), user.Profile(), nil
}

// upgradeHash rehashes the password when the stored hash uses older
// parameters or algorithm. Failure only costs the upgrade.
func (svc *AuthService) upgradeHash(ctx context.Context, user *models.UserDB, plain string) {
	if !password.NeedsRehashWithParams(user.PasswordHash, svc.hashParams) {
		return
	}
	hash, err := svc.HashPassword(plain)
	if err == nil {
		err = svc.writer.UpdatePasswordHash(ctx, user.ID, hash)
	}
	if err != nil {
		logger.Log.Warnw("failed to upgrade password hash", "user_id", user.ID, "err", err)
	}
}

// ForgotPassword issues a reset token when the email belongs to an account.
// The result is the same whether or not it does.
func (svc *AuthService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.Result, error) {
	if errs := validators.Validate(req); len(errs) > 0 {
		return models.Failed(models.OutcomeValidation, validators.Describe(errs)), nil
	}

	email := normalizeEmail(req.Email)
	user, err := svc.reader.GetByUsernameOrEmail(ctx, nil, &email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return models.Result{}, fmt.Errorf("loading user: %w", err)
	}
	if user == nil {
		logger.Log.Infow("password reset for unknown email")
		return models.Succeeded(MsgResetRequested), nil
	}

	token, digest, err := password.NewResetToken()
	if err != nil {
		logger.Log.Errorw("failed to generate reset token", "err", err)
		return models.Result{}, err
	}

	expiry := svc.now().UTC().Add(svc.policy.ResetTokenTTL)
	if err := svc.writer.SetResetToken(ctx, user.ID, digest, expiry); err != nil {
		logger.Log.Errorw("failed to store reset token", "user_id", user.ID, "err", err)
		return models.Result{}, fmt.Errorf("storing reset token: %w", err)
	}

	n := models.PasswordResetNotification{
		Recipient: user.Email,
		Token:     token,
		ExpiresAt: expiry,
	}
	svc.onTxDone(ctx, func(committed bool) {
		if !committed {
			logger.Log.Warnw("reset token not stored, notification dropped", "user_id", user.ID)
			return
		}
		svc.notify(ctx, user.ID, n)
	})

	return models.Succeeded(MsgResetRequested), nil
}

// notify delivers n in the background. The caller never waits on the notifier.
func (svc *AuthService) notify(ctx context.Context, userID uuid.UUID, n models.PasswordResetNotification) {
	if svc.notifier == nil {
		return
	}

	ctx = context.WithoutCancel(ctx)
	svc.pending.Add(1)
	go func() {
		defer svc.pending.Done()

		ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
		defer cancel()

		if err := svc.notifier.Notify(ctx, n); err != nil {
			logger.Log.Errorw("failed to deliver reset token", "user_id", userID, "err", err)
		}
	}()
}

// Wait blocks until every pending reset notification has been handed off.
func (svc *AuthService) Wait() {
	svc.pending.Wait()
}

// ResetPassword sets a new password using a reset token. The token is single use.
func (svc *AuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.Result, error) {
	if req.Token == "" {
		return models.Failed(models.OutcomeAuthentication, MsgInvalidResetToken), nil
	}
	if errs := validators.Validate(req); len(errs) > 0 {
		return models.Failed(models.OutcomeValidation, validators.Describe(errs)), nil
	}
	if req.NewPassword != req.ConfirmPassword {
		return models.Failed(models.OutcomeValidation, MsgPasswordMismatch), nil
	}

	digest := password.DigestToken(req.Token)
	user, err := svc.reader.GetByResetTokenHash(ctx, digest)
	if err != nil {
		logger.Log.Errorw("failed to get user by reset token", "err", err)
		return models.Result{}, fmt.Errorf("loading user: %w", err)
	}
	if user == nil {
		return models.Failed(models.OutcomeAuthentication, MsgInvalidResetToken), nil
	}

	now := svc.now().UTC()
	if user.PasswordResetTokenExpiry == nil || !user.PasswordResetTokenExpiry.After(now) {
		if err := svc.writer.ClearResetToken(ctx, user.ID); err != nil {
			logger.Log.Warnw("failed to clear expired reset token", "user_id", user.ID, "err", err)
		}
		return models.Failed(models.OutcomeAuthentication, MsgInvalidResetToken), nil
	}

	hash, err := svc.HashPassword(req.NewPassword)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return models.Result{}, err
	}
	ok, err := svc.writer.ResetPassword(ctx, user.ID, digest, hash, now)
	if err != nil {
		logger.Log.Errorw("failed to reset password", "user_id", user.ID, "err", err)
		return models.Result{}, fmt.Errorf("resetting password: %w", err)
	}
	if !ok {
		// a concurrent reset consumed the token first
		logger.Log.Infow("reset token already used", "user_id", user.ID)
		return models.Failed(models.OutcomeAuthentication, MsgInvalidResetToken), nil
	}

	logger.Log.Infow("password reset", "user_id", user.ID)
	return models.Succeeded(MsgPasswordReset), nil
}

// GetUserProfile returns the profile, or nil when the user does not exist.
func (svc *AuthService) GetUserProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, fmt.Errorf("loading user: %w", err)
	}
	if user == nil {
		return nil, nil
	}
	return user.Profile(), nil
}

// UpdateProfile changes the names and, when given, the email.
func (svc *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (models.Result, error) {
	if errs := validators.Validate(req); len(errs) > 0 {
		return models.Failed(models.OutcomeValidation, validators.Describe(errs)), nil
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return models.Result{}, fmt.Errorf("loading user: %w", err)
	}
	if user == nil {
		return models.Failed(models.OutcomeNotFound, MsgUserNotFound), nil
	}

	email := normalizeEmail(req.Email)
	if email == "" {
		email = user.Email
	}
	if email != user.Email {
		other, err := svc.reader.GetByUsernameOrEmail(ctx, nil, &email)
		if err != nil {
			logger.Log.Errorw("failed to check email", "err", err)
			return models.Result{}, fmt.Errorf("checking email: %w", err)
		}
		if other != nil && other.ID != userID {
			return models.Failed(models.OutcomeConflict, MsgEmailTaken), nil
		}
	}

	ok, err := svc.writer.UpdateProfile(ctx, userID, req.FirstName, req.LastName, email)
	if errors.Is(err, repositories.ErrDuplicateUser) {
		return models.Failed(models.OutcomeConflict, MsgEmailTaken), nil
	}
	if err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", userID, "err", err)
		return models.Result{}, fmt.Errorf("updating profile: %w", err)
	}
	if !ok {
		return models.Failed(models.OutcomeNotFound, MsgUserNotFound), nil
	}

	return models.Succeeded(MsgProfileUpdated), nil
}

// UpdateProfilePicture records the stored picture's object key.
func (svc *AuthService) UpdateProfilePicture(ctx context.Context, userID uuid.UUID, path string) (models.Result, error) {
	if strings.TrimSpace(path) == "" {
		return models.Failed(models.OutcomeValidation, MsgPicturePathRequired), nil
	}

	ok, err := svc.writer.UpdateProfilePicture(ctx, userID, path)
	if err != nil {
		logger.Log.Errorw("failed to update profile picture", "user_id", userID, "err", err)
		return models.Result{}, fmt.Errorf("updating profile picture: %w", err)
	}
	if !ok {
		return models.Failed(models.OutcomeNotFound, MsgUserNotFound), nil
	}

	return models.Succeeded(MsgProfilePictureUpdated), nil
}

// DeleteAccount removes the user together with all diary entries.
func (svc *AuthService) DeleteAccount(ctx context.Context, userID uuid.UUID) (models.Result, error) {
	ok, err := svc.writer.Delete(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", userID, "err", err)
		return models.Result{}, fmt.Errorf("deleting user: %w", err)
	}
	if !ok {
		return models.Failed(models.OutcomeNotFound, MsgUserNotFound), nil
	}

	logger.Log.Infow("account deleted", "user_id", userID)
	return models.Succeeded(MsgAccountDeleted), nil
}

// HashPassword returns an Argon2id PHC hash of the password.
func (svc *AuthService) HashPassword(plain string) (string, error) {
	return password.HashWithParams(plain, svc.hashParams)
}

// VerifyPassword reports whether plain matches hash. Malformed hashes never match.
func (svc *AuthService) VerifyPassword(plain, hash string) bool {
	ok, err := password.Verify(plain, hash)
	if err != nil {
		logger.Log.Warnw("password verification failed", "err", err)
		return false
	}
	return ok
}
