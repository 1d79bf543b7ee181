package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"pg-management-backend/internal/auth"
	"pg-management-backend/internal/database/models"
	apperrors "pg-management-backend/internal/errors"
	"pg-management-backend/internal/logger"
	"pg-management-backend/internal/metrics"
	"pg-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenIssuer signs bearer credentials
type TokenIssuer interface {
	Issue(accountID, tenantBusinessID uuid.UUID) (string, time.Time, error)
}

// IdentityService handles registration, login and profile lookups
type IdentityService struct {
	accounts   repository.AccountRepositoryInterface
	businesses repository.TenantBusinessRepositoryInterface
	tokens     TokenIssuer
	validator  *validator.Validate
}

// NewIdentityService creates a new identity service
func NewIdentityService(accounts repository.AccountRepositoryInterface, businesses repository.TenantBusinessRepositoryInterface, tokens TokenIssuer, validator *validator.Validate) *IdentityService {
	return &IdentityService{
		accounts:   accounts,
		businesses: businesses,
		tokens:     tokens,
		validator:  validator,
	}
}

// RegisterRequest represents the request to register a PG business and its first account.
// The older body keys pgOwnerName and name are accepted in place of tenantBusinessName and accountName.
type RegisterRequest struct {
	TenantBusinessName string `json:"tenantBusinessName" validate:"required,max=200" example:"Sunrise PG"`
	AccountName        string `json:"accountName" validate:"required,max=200" example:"Asha Rao"`
	Email              string `json:"email" validate:"required,email,max=255" example:"asha@example.com"`
	Password           string `json:"password" validate:"required" example:"s3cret!"`
}

// UnmarshalJSON reads both the current and the legacy register body
func (r *RegisterRequest) UnmarshalJSON(data []byte) error {
	type plain RegisterRequest
	var body struct {
		plain
		PgOwnerName string `json:"pgOwnerName"`
		Name        string `json:"name"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	*r = RegisterRequest(body.plain)
	if strings.TrimSpace(r.TenantBusinessName) == "" {
		r.TenantBusinessName = body.PgOwnerName
	}
	if strings.TrimSpace(r.AccountName) == "" {
		r.AccountName = body.Name
	}
	return nil
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"asha@example.com"`
	Password string `json:"password" validate:"required" example:"s3cret!"`
}

// AccountResponse is the public view of an account
type AccountResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	TenantBusinessID uuid.UUID `json:"tenantBusinessId"`
}

// AuthResponse is returned by register and login. token and user repeat credential and account
// for older clients.
type AuthResponse struct {
	Message    string          `json:"message" example:"Login successful!"`
	Credential string          `json:"credential"`
	Account    AccountResponse `json:"account"`
	ExpiresAt  time.Time       `json:"expiresAt"`
	Token      string          `json:"token"`
	User       AccountResponse `json:"user"`
}

// Register creates a TenantBusiness and its first Account in one transaction and logs the account in
func (s *IdentityService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	req.TenantBusinessName = strings.TrimSpace(req.TenantBusinessName)
	req.AccountName = strings.TrimSpace(req.AccountName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if err := checkPasswordLength(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.businesses.GetByName(ctx, req.TenantBusinessName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing business: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTenantBusinessExists
	}

	account, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if account != nil {
		return nil, apperrors.ErrAccountExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	business := &models.TenantBusiness{Name: req.TenantBusinessName}
	account = &models.Account{
		Name:         req.AccountName,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.accounts.CreateWithTenantBusiness(ctx, business, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost a race with a concurrent registration
			return nil, s.duplicateCause(ctx, req.TenantBusinessName)
		}
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	metrics.RecordRegistration()
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"account_id":         account.ID.String(),
		"tenant_business_id": business.ID.String(),
	}).Info("tenant business registered")

	return s.authResponse("PG Owner and User registered successfully!", account)
}

// checkPasswordLength counts characters for the minimum and bytes for the bcrypt maximum
func checkPasswordLength(password string) error {
	if utf8.RuneCountInString(password) < auth.MinPasswordLength {
		return apperrors.NewValidationError("password", fmt.Sprintf("must be at least %d characters", auth.MinPasswordLength))
	}
	if len(password) > auth.MaxPasswordBytes {
		return apperrors.NewValidationError("password", fmt.Sprintf("must be at most %d bytes", auth.MaxPasswordBytes))
	}
	return nil
}

func (s *IdentityService) duplicateCause(ctx context.Context, businessName string) error {
	if existing, err := s.businesses.GetByName(ctx, businessName); err == nil && existing != nil {
		return apperrors.ErrTenantBusinessExists
	}
	return apperrors.ErrAccountExists
}

// Login authenticates by email and password. Unknown email and wrong password fail identically.
func (s *IdentityService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load account: %w", err)
		}
		auth.CompareDummy(req.Password)
		metrics.RecordLoginFailure()
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(account.PasswordHash, req.Password) {
		metrics.RecordLoginFailure()
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.authResponse("Login successful!", account)
}

// GetProfile returns the actor's own account
func (s *IdentityService) GetProfile(ctx context.Context, actor auth.Actor) (*AccountResponse, error) {
	account, err := s.accounts.GetByID(ctx, actor.AccountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	resp := toAccountResponse(account)
	return &resp, nil
}

func (s *IdentityService) authResponse(message string, account *models.Account) (*AuthResponse, error) {
	token, expiresAt, err := s.tokens.Issue(account.ID, account.TenantBusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	view := toAccountResponse(account)
	return &AuthResponse{
		Message:    message,
		Credential: token,
		Account:    view,
		ExpiresAt:  expiresAt,
		Token:      token,
		User:       view,
	}, nil
}

func toAccountResponse(account *models.Account) AccountResponse {
	return AccountResponse{
		ID:               account.ID,
		Name:             account.Name,
		Email:            account.Email,
		TenantBusinessID: account.TenantBusinessID,
	}
}
