package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pg-management-backend/internal/database/models"
	apperrors "pg-management-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountLookup defines the account operations needed by the guard
type AccountLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
}

// Actor is the authenticated caller of a request
type Actor struct {
	AccountID        uuid.UUID
	TenantBusinessID uuid.UUID
}

// Owns reports whether an entity scoped to tenantBusinessID belongs to the actor
func (a Actor) Owns(tenantBusinessID uuid.UUID) bool {
	return a.TenantBusinessID != uuid.Nil && a.TenantBusinessID == tenantBusinessID
}

// Guard turns an Authorization header into an Actor
type Guard struct {
	tokens   *TokenIssuer
	accounts AccountLookup
}

// NewGuard creates a new guard
func NewGuard(tokens *TokenIssuer, accounts AccountLookup) *Guard {
	return &Guard{tokens: tokens, accounts: accounts}
}

// Authenticate verifies header and reloads the account it names.
// The stored account's tenant business is authoritative.
func (g *Guard) Authenticate(ctx context.Context, header string) (Actor, error) {
	tokenString, ok := bearerToken(header)
	if !ok {
		return Actor{}, apperrors.ErrNoToken
	}

	claims, err := g.tokens.Verify(tokenString)
	if err != nil {
		return Actor{}, apperrors.ErrTokenInvalid
	}

	accountID, err := uuid.Parse(claims.AccountID)
	if err != nil {
		return Actor{}, apperrors.ErrTokenInvalid
	}
	tenantBusinessID, err := uuid.Parse(claims.TenantBusinessID)
	if err != nil {
		return Actor{}, apperrors.ErrTokenInvalid
	}

	account, err := g.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Actor{}, apperrors.ErrAccountGone
		}
		return Actor{}, fmt.Errorf("failed to load account: %w", err)
	}
	if account.TenantBusinessID != tenantBusinessID {
		return Actor{}, apperrors.ErrTokenInvalid
	}

	return Actor{AccountID: account.ID, TenantBusinessID: account.TenantBusinessID}, nil
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
