package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bolajio/portfolio-api/internal/auth"
	"github.com/bolajio/portfolio-api/internal/database/testutil"
	"github.com/bolajio/portfolio-api/internal/models"
	appErrors "github.com/bolajio/portfolio-api/pkg/errors"
	"github.com/bolajio/portfolio-api/pkg/mail"
)

// stubMailer records outbound messages and can be told to fail.
type stubMailer struct {
	mu       sync.Mutex
	messages []mail.Message
	err      error
}

func (m *stubMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.messages = append(m.messages, msg)
	return nil
}

func (m *stubMailer) sent() []mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mail.Message(nil), m.messages...)
}

func newTestJWTService(t *testing.T) *auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService(auth.JWTConfig{Secret: "test-secret", Issuer: "portfolio-api"})
	require.NoError(t, err)
	return svc
}

func requireAppCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, code, appErr.Code)
}

func newAdminFixture(t *testing.T, opts ...AdminOption) (*AdminService, *stubMailer) {
	t.Helper()
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	mailer := &stubMailer{}
	svc, err := NewAdminService(db, mailer, newTestJWTService(t), opts...)
	require.NoError(t, err)
	return svc, mailer
}

func TestAdminRegisterSendsCodeAndCreatesAccount(t *testing.T) {
	svc, mailer := newAdminFixture(t)
	ctx := context.Background()

	needed, err := svc.SetupNeeded(ctx)
	require.NoError(t, err)
	require.True(t, needed)

	err = svc.Register(ctx, RegisterInput{Username: "bolaji", Email: "Admin@Example.COM", Password: "hunter2pass"})
	require.NoError(t, err)

	needed, err = svc.SetupNeeded(ctx)
	require.NoError(t, err)
	require.False(t, needed)

	messages := mailer.sent()
	require.Len(t, messages, 1)
	require.Equal(t, []string{"admin@example.com"}, messages[0].To)
	require.Equal(t, "Your Verification Code", messages[0].Subject)
	require.Regexp(t, `Your verification code is: \d{6}`, messages[0].Body)

	var admin models.Admin
	require.NoError(t, svc.db.First(&admin).Error)
	require.Equal(t, "bolaji", admin.Username)
	require.Equal(t, "admin@example.com", admin.Email)
	require.False(t, admin.IsVerified)
	require.NotNil(t, admin.OTP)
	require.Len(t, *admin.OTP, 6)
	require.NotNil(t, admin.OTPExpiry)
	require.NotEqual(t, "hunter2pass", admin.PasswordHash)
}

func TestAdminRegisterRejectsSecondAccount(t *testing.T) {
	svc, _ := newAdminFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, RegisterInput{Username: "bolaji", Email: "a@example.com", Password: "password1"}))

	err := svc.Register(ctx, RegisterInput{Username: "other", Email: "b@example.com", Password: "password2"})
	requireAppCode(t, err, "ADMIN_EXISTS")
}

func TestAdminRegisterRollsBackWhenMailFails(t *testing.T) {
	svc, mailer := newAdminFixture(t)
	mailer.err = errors.New("smtp down")
	ctx := context.Background()

	err := svc.Register(ctx, RegisterInput{Username: "bolaji", Email: "a@example.com", Password: "password1"})
	requireAppCode(t, err, "EMAIL_DELIVERY_FAILED")

	// The account must not be stranded without its code.
	var count int64
	require.NoError(t, svc.db.Model(&models.Admin{}).Count(&count).Error)
	require.Zero(t, count)

	// A later attempt with working mail succeeds.
	mailer.err = nil
	require.NoError(t, svc.Register(ctx, RegisterInput{Username: "bolaji", Email: "a@example.com", Password: "password1"}))
}

func TestAdminRegisterValidatesInput(t *testing.T) {
	svc, _ := newAdminFixture(t)

	err := svc.Register(context.Background(), RegisterInput{Username: " ", Email: "", Password: ""})
	requireAppCode(t, err, "BAD_REQUEST")
}

func storedOTP(t *testing.T, svc *AdminService) string {
	t.Helper()
	var admin models.Admin
	require.NoError(t, svc.db.First(&admin).Error)
	require.NotNil(t, admin.OTP)
	return *admin.OTP
}

func TestAdminVerifyOTPLifecycle(t *testing.T) {
	svc, _ := newAdminFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, RegisterInput{Username: "bolaji", Email: "a@example.com", Password: "password1"}))
	code := storedOTP(t, svc)

	_, err := svc.VerifyOTP(ctx, "missing@example.com", code)
	requireAppCode(t, err, "NOT_FOUND")

	_, err = svc.VerifyOTP(ctx, "a@example.com", "000000")
	requireAppCode(t, err, "OTP_INVALID")

	result, err := svc.VerifyOTP(ctx, "A@Example.com", code)
	require.NoError(t, err)
	require.False(t, result.AlreadyVerified)

	var admin models.Admin
	require.NoError(t, svc.db.First(&admin).Error)
	require.True(t, admin.IsVerified)
	require.Nil(t, admin.OTP)
	require.Nil(t, admin.OTPExpiry)

	// Verifying again succeeds without touching anything.
	result, err = svc.VerifyOTP(ctx, "a@example.com", "garbage")
	require.NoError(t, err)
	require.True(t, result.AlreadyVerified)
}

func TestAdminVerifyOTPExpiredCodeFails(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	svc, _ := newAdminFixture(t, WithAdminClock(clock), WithOTPExpiry(10*time.Minute))
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, RegisterInput{Username: "bolaji", Email: "a@example.com", Password: "password1"}))
	code := storedOTP(t, svc)

	// Exactly at the expiry boundary the code is no longer valid.
	now = now.Add(10 * time.Minute)
	_, err := svc.VerifyOTP(ctx, "a@example.com", code)
	requireAppCode(t, err, "OTP_INVALID")

	// Wrong and expired codes share the same message.
	require.Equal(t, appErrors.ErrInvalidOTP.Message, appErrors.FromError(err).Message)
}

func TestAdminVerifyOTPJustBeforeExpirySucceeds(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	svc, _ := newAdminFixture(t, WithAdminClock(clock))
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, RegisterInput{Username: "bolaji", Email: "a@example.com", Password: "password1"}))
	code := storedOTP(t, svc)

	now = now.Add(10*time.Minute - time.Second)
	_, err := svc.VerifyOTP(ctx, "a@example.com", code)
	require.NoError(t, err)
}

func TestAdminLoginOrderingAndConflation(t *testing.T) {
	svc, _ := newAdminFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, RegisterInput{Username: "bolaji", Email: "a@example.com", Password: "password1"}))

	// Unknown usernames and wrong passwords share one error.
	_, _, err := svc.Login(ctx, "nobody", "password1")
	requireAppCode(t, err, "INVALID_CREDENTIALS")

	// Unverified accounts are reported before the password is checked.
	_, _, err = svc.Login(ctx, "bolaji", "totally-wrong")
	requireAppCode(t, err, "ACCOUNT_NOT_VERIFIED")

	code := storedOTP(t, svc)
	_, verifyErr := svc.VerifyOTP(ctx, "a@example.com", code)
	require.NoError(t, verifyErr)

	_, _, err = svc.Login(ctx, "bolaji", "totally-wrong")
	requireAppCode(t, err, "INVALID_CREDENTIALS")

	token, admin, err := svc.Login(ctx, "bolaji", "password1")
	require.NoError(t, err)
	require.NotNil(t, admin)
	require.NotEmpty(t, token)

	claims, err := svc.tokens.ValidateAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, admin.ID, claims.AdminID)
	require.Equal(t, admin.ID, claims.Subject)
}

func TestAdminRegisterDuplicateUsernameOrEmail(t *testing.T) {
	// The pre-insert duplicate check cannot trip while only one account can
	// exist, but the unique indexes still back it up at the database level.
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())

	first := models.Admin{Username: "bolaji", Email: "a@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&first).Error)

	second := models.Admin{Username: "bolaji", Email: "b@example.com", PasswordHash: "x"}
	err := db.Create(&second).Error
	require.Error(t, err)
	require.True(t, isUniqueConstraintError(err))
}
