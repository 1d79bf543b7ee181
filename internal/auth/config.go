package auth

import (
	"fmt"
	"time"

	"pg-management-backend/internal/config"
)

// TokenConfig holds the immutable signing settings for bearer credentials
type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
	Issuer string
}

// NewTokenConfig builds a TokenConfig from the application configuration
func NewTokenConfig(cfg *config.Config) (TokenConfig, error) {
	tc := TokenConfig{
		Secret: []byte(cfg.JWTSecret),
		TTL:    cfg.JWTTTL,
		Issuer: cfg.JWTIssuer,
	}
	if err := tc.Validate(); err != nil {
		return TokenConfig{}, fmt.Errorf("invalid auth config: %w", err)
	}
	return tc, nil
}

// Validate checks that the token configuration is usable
func (c TokenConfig) Validate() error {
	if len(c.Secret) == 0 {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	return nil
}
