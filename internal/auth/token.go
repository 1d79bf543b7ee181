package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents the JWT claims carried by a bearer credential
type Claims struct {
	AccountID            string `json:"account_id" example:"8c5d2d0e-4a2b-4f3e-9b59-0e7f4a8d1c11"`
	TenantBusinessID     string `json:"tenant_business_id" example:"1f0c6b8e-7e0a-4d7c-9c43-6f2b1a9d5e22"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TokenIssuer signs and verifies bearer credentials
type TokenIssuer struct {
	config TokenConfig
	now    func() time.Time
}

// NewTokenIssuer creates a new token issuer
func NewTokenIssuer(config TokenConfig) (*TokenIssuer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &TokenIssuer{config: config, now: time.Now}, nil
}

// Issue generates a signed HS256 token binding accountID to tenantBusinessID
func (t *TokenIssuer) Issue(accountID, tenantBusinessID uuid.UUID) (string, time.Time, error) {
	now := t.now()
	expiresAt := now.Add(t.config.TTL)
	claims := &Claims{
		AccountID:        accountID.String(),
		TenantBusinessID: tenantBusinessID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    t.config.Issuer,
			Subject:   accountID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.config.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify validates and parses a token
func (t *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
	}
	if t.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(t.config.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.config.Secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
