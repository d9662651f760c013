package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bolajio/portfolio-api/internal/app"
	iauth "github.com/bolajio/portfolio-api/internal/auth"
	"github.com/bolajio/portfolio-api/internal/database/testutil"
	"github.com/bolajio/portfolio-api/internal/models"
	"github.com/bolajio/portfolio-api/pkg/mail"
)

type recordingMailer struct {
	mu       sync.Mutex
	messages []mail.Message
}

func (m *recordingMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.MustOpenTestDB(t, testutil.WithSeedData())

	jwt, err := iauth.NewJWTService(iauth.JWTConfig{Secret: "test-secret", Issuer: "portfolio-api"})
	require.NoError(t, err)

	cfg := &app.Config{}
	cfg.Auth.OTP.Expiry = 10 * time.Minute
	cfg.Site.Author = "Bolaji"
	cfg.Email.ContactRecipient = "owner@example.com"
	cfg.Uploads.Dir = t.TempDir()
	cfg.Uploads.BaseURL = "/static/uploads"
	cfg.Uploads.MaxSizeMB = 10

	router, err := NewRouter(db, jwt, &recordingMailer{}, cfg)
	require.NoError(t, err)
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRouterHealthAndUnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/nope", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, false, body["success"])
}

func TestRouterFullAuthFlow(t *testing.T) {
	router, db := newTestRouter(t)

	// Fresh install advertises that setup is needed.
	w := doJSON(t, router, http.MethodGet, "/api/auth/check-setup", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	require.Equal(t, true, data["setup_needed"])

	w = doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "bolaji",
		"email":    "admin@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Login before verification is refused.
	w = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "bolaji", "password": "password123",
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	var admin models.Admin
	require.NoError(t, db.First(&admin).Error)
	require.NotNil(t, admin.OTP)

	w = doJSON(t, router, http.MethodPost, "/api/auth/verify-otp", "", gin.H{
		"email": "admin@example.com", "otp": *admin.OTP,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Once verified, any further code is answered idempotently before the
	// code is even looked at.
	w = doJSON(t, router, http.MethodPost, "/api/auth/verify-otp", "", gin.H{
		"email": "admin@example.com", "otp": "x",
	})
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeBody(t, w)["data"].(map[string]any)
	require.Equal(t, "Account already verified.", data["message"])

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "bolaji", "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeBody(t, w)["data"].(map[string]any)
	token, ok := data["access_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	// Mutations without a token are rejected.
	w = doJSON(t, router, http.MethodPost, "/api/admin/projects", "", gin.H{
		"title": "Site", "description": "d",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// With the token the project is created and publicly visible.
	w = doJSON(t, router, http.MethodPost, "/api/admin/projects", token, gin.H{
		"title": "Site", "description": "d", "tech_stack": []string{"Go"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/projects", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	projects := decodeBody(t, w)["data"].([]any)
	require.Len(t, projects, 1)
}

func TestRouterRegisterValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	// Missing fields are the only payload errors.
	w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice", "email": "a@x.com",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Short passwords and unusual addresses are accepted as given.
	w = doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice", "email": "a@x.com", "password": "pw123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestRouterVerifyOTPUnknownEmailIsNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	// An address that is not email-shaped still reaches the lookup and
	// surfaces the store's not-found, not a payload error.
	w := doJSON(t, router, http.MethodPost, "/api/auth/verify-otp", "", gin.H{
		"email": "nobody", "otp": "1",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouterAboutSeedVisible(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/about", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	require.Contains(t, data["bio"], "Welcome to my page")
}

func TestRouterContactRequiresValidPayload(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/contact", "", gin.H{"name": "Ada"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/contact", "", gin.H{
		"name": "Ada", "email": "ada@example.com", "message": "hello",
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRouterRequiresDependencies(t *testing.T) {
	jwt, err := iauth.NewJWTService(iauth.JWTConfig{Secret: "s"})
	require.NoError(t, err)

	_, err = NewRouter(nil, jwt, &recordingMailer{}, &app.Config{})
	require.Error(t, err)

	db := testutil.MustOpenTestDB(t)
	_, err = NewRouter(db, nil, &recordingMailer{}, &app.Config{})
	require.Error(t, err)

	_, err = NewRouter(db, jwt, &recordingMailer{}, nil)
	require.Error(t, err)
}
