package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bolajio/portfolio-api/internal/services"
	"github.com/bolajio/portfolio-api/pkg/metrics"
	"github.com/bolajio/portfolio-api/pkg/response"
)

// AuthHandler manages admin registration, verification, and login.
type AuthHandler struct {
	admins *services.AdminService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(admins *services.AdminService) *AuthHandler {
	return &AuthHandler{admins: admins}
}

// GET /api/auth/check-setup
func (h *AuthHandler) CheckSetup(c *gin.Context) {
	needed, err := h.admins.SetupNeeded(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"setup_needed": needed})
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !bindAndValidate(c, &req) {
		return
	}

	err := h.admins.Register(requestContext(c), services.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Registration successful. Check your email for the verification code.",
	})
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

// POST /api/auth/verify-otp
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if !bindAndValidate(c, &req) {
		return
	}

	result, err := h.admins.VerifyOTP(requestContext(c), req.Email, req.OTP)
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "Account verified. You can now log in."
	if result.AlreadyVerified {
		message = "Account already verified."
	}
	response.Success(c, http.StatusOK, gin.H{"message": message})
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	token, admin, err := h.admins.Login(requestContext(c), req.Username, req.Password)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("failure").Inc()
		response.Error(c, err)
		return
	}

	metrics.AuthAttempts.WithLabelValues("success").Inc()
	response.Success(c, http.StatusOK, gin.H{
		"access_token": token,
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"email":    admin.Email,
		},
	})
}
