package app

import (
	"time"

	"github.com/bolajio/portfolio-api/internal/auth"
)

const defaultOTPExpiry = 10 * time.Minute

// JWTServiceConfig converts AuthConfig into the parameters expected by the JWT service.
func (c AuthConfig) JWTServiceConfig() auth.JWTConfig {
	ttl := c.JWT.TTL
	if ttl <= 0 {
		ttl = auth.DefaultAccessTokenTTL
	}

	return auth.JWTConfig{
		Secret:         c.JWT.Secret,
		Issuer:         c.JWT.Issuer,
		AccessTokenTTL: ttl,
	}
}

// OTPExpiry returns the verification code lifetime, defaulting to ten minutes.
func (c AuthConfig) OTPExpiry() time.Duration {
	if c.OTP.Expiry <= 0 {
		return defaultOTPExpiry
	}
	return c.OTP.Expiry
}
