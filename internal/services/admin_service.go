package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/bolajio/portfolio-api/internal/auth"
	"github.com/bolajio/portfolio-api/internal/models"
	"github.com/bolajio/portfolio-api/pkg/crypto"
	appErrors "github.com/bolajio/portfolio-api/pkg/errors"
	"github.com/bolajio/portfolio-api/pkg/mail"
)

const defaultOTPExpiry = 10 * time.Minute

// AdminOption customises the AdminService.
type AdminOption func(*AdminService)

// WithOTPExpiry overrides the verification code lifetime.
func WithOTPExpiry(d time.Duration) AdminOption {
	return func(s *AdminService) {
		if d > 0 {
			s.otpExpiry = d
		}
	}
}

// WithAdminClock injects a custom time source.
func WithAdminClock(clock func() time.Time) AdminOption {
	return func(s *AdminService) {
		if clock != nil {
			s.now = clock
		}
	}
}

// AdminService owns the single admin account: its registration, email
// verification lifecycle, and login token issuance.
//
// At most one admin row can ever exist. The friendly existence check in
// Register is backed by a unique index on a fixed singleton column, so two
// concurrent registrations cannot both commit.
type AdminService struct {
	db        *gorm.DB
	mailer    mail.Mailer
	tokens    *auth.JWTService
	otpExpiry time.Duration
	now       func() time.Time
}

// NewAdminService constructs the admin service with its collaborators.
func NewAdminService(db *gorm.DB, mailer mail.Mailer, tokens *auth.JWTService, opts ...AdminOption) (*AdminService, error) {
	if db == nil {
		return nil, errors.New("admin service: db is required")
	}
	if tokens == nil {
		return nil, errors.New("admin service: token service is required")
	}

	service := &AdminService{
		db:        db,
		mailer:    mailer,
		tokens:    tokens,
		otpExpiry: defaultOTPExpiry,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(service)
	}

	return service, nil
}

// SetupNeeded reports whether no admin account has been registered yet.
func (s *AdminService) SetupNeeded(ctx context.Context) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Admin{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("admin service: count accounts: %w", err)
	}
	return count == 0, nil
}

// RegisterInput captures the fields required to create the admin account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates the unverified admin account and emails the verification
// code. The row and the email stand or fall together: a failed send rolls
// the insert back so no account is ever stranded without its code.
func (s *AdminService) Register(ctx context.Context, input RegisterInput) error {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if username == "" || email == "" || input.Password == "" {
		return appErrors.NewBadRequest("username, email and password are required")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Admin{}).Count(&count).Error; err != nil {
		return fmt.Errorf("admin service: count accounts: %w", err)
	}
	if count > 0 {
		return appErrors.ErrAdminExists
	}

	var existing int64
	if err := s.db.WithContext(ctx).Model(&models.Admin{}).
		Where("username = ? OR email = ?", username, email).
		Count(&existing).Error; err != nil {
		return fmt.Errorf("admin service: check duplicates: %w", err)
	}
	if existing > 0 {
		return appErrors.ErrDuplicateAccount
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return fmt.Errorf("admin service: hash password: %w", err)
	}

	code, err := crypto.GenerateOTP()
	if err != nil {
		return fmt.Errorf("admin service: generate code: %w", err)
	}
	expiry := s.now().UTC().Add(s.otpExpiry)

	admin := models.Admin{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		OTP:          &code,
		OTPExpiry:    &expiry,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&admin).Error; err != nil {
			if isUniqueConstraintError(err) {
				return appErrors.ErrDuplicateAccount.WithInternal(err)
			}
			return fmt.Errorf("create account: %w", err)
		}

		message := mail.Message{
			To:      []string{email},
			Subject: "Your Verification Code",
			Body:    fmt.Sprintf("Your verification code is: %s", code),
		}
		if s.mailer == nil {
			return appErrors.ErrMailDelivery
		}
		if sendErr := s.mailer.Send(ctx, message); sendErr != nil {
			return appErrors.ErrMailDelivery.WithInternal(sendErr)
		}
		return nil
	})
	if err != nil {
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return fmt.Errorf("admin service: register: %w", err)
	}

	return nil
}

// VerifyResult reports the outcome of a verification attempt.
type VerifyResult struct {
	AlreadyVerified bool
}

// VerifyOTP consumes the emailed code and marks the account verified.
// An already verified account succeeds idempotently without touching the
// stored code. Wrong and expired codes share one error.
func (s *AdminService) VerifyOTP(ctx context.Context, email, code string) (*VerifyResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	var admin models.Admin
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFound("Admin with that email not found")
		}
		return nil, fmt.Errorf("admin service: find account: %w", err)
	}

	if admin.IsVerified {
		return &VerifyResult{AlreadyVerified: true}, nil
	}

	now := s.now().UTC()
	if admin.OTP == nil || admin.OTPExpiry == nil || code != *admin.OTP || !now.Before(*admin.OTPExpiry) {
		return nil, appErrors.ErrInvalidOTP
	}

	updates := map[string]any{
		"is_verified": true,
		"otp":         nil,
		"otp_expiry":  nil,
	}
	if err := s.db.WithContext(ctx).Model(&admin).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("admin service: mark verified: %w", err)
	}

	return &VerifyResult{}, nil
}

// Login checks the credentials and issues a bearer token whose subject is
// the account identifier. The verification check deliberately runs before
// the password comparison, and unknown usernames and wrong passwords share
// one error message.
func (s *AdminService) Login(ctx context.Context, username, password string) (string, *models.Admin, error) {
	username = strings.TrimSpace(username)

	var admin models.Admin
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, appErrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("admin service: find account: %w", err)
	}

	if !admin.IsVerified {
		return "", nil, appErrors.ErrAccountNotVerified
	}

	if !crypto.VerifyPassword(admin.PasswordHash, password) {
		return "", nil, appErrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(admin.ID)
	if err != nil {
		return "", nil, fmt.Errorf("admin service: issue token: %w", err)
	}

	return token, &admin, nil
}
