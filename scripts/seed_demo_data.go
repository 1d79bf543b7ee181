package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pg-management-backend/internal/auth"
	"pg-management-backend/internal/config"
	"pg-management-backend/internal/database"
	"pg-management-backend/internal/database/models"
	"pg-management-backend/internal/logger"
	"pg-management-backend/internal/repository"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Demo data structures, one file may hold several businesses
type BusinessData struct {
	Name       string         `yaml:"name"`
	Owner      OwnerData      `yaml:"owner"`
	Properties []PropertyData `yaml:"properties"`
	Expenses   []ExpenseData  `yaml:"expenses,omitempty"`
}

type OwnerData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type PropertyData struct {
	Name    string       `yaml:"name"`
	Address string       `yaml:"address"`
	Tenants []TenantData `yaml:"tenants,omitempty"`
}

type TenantData struct {
	Name           string        `yaml:"name"`
	Gender         string        `yaml:"gender"`
	RentAmount     string        `yaml:"rent_amount"`
	RoomNumber     string        `yaml:"room_number"`
	PaymentStatus  string        `yaml:"payment_status,omitempty"`
	MobileNumber   string        `yaml:"mobile_number"`
	WhatsappNumber string        `yaml:"whatsapp_number,omitempty"`
	Payments       []PaymentData `yaml:"payments,omitempty"`
}

// PaymentData dates are relative to today so the dashboard always has current numbers
type PaymentData struct {
	Amount     string `yaml:"amount"`
	Method     string `yaml:"method,omitempty"`
	DaysBefore int    `yaml:"days_before"`
}

type ExpenseData struct {
	Description string `yaml:"description"`
	Amount      string `yaml:"amount"`
	Category    string `yaml:"category"`
	DaysBefore  int    `yaml:"days_before"`
}

type BusinessesFile struct {
	Businesses []BusinessData `yaml:"businesses"`
}

type seeder struct {
	accounts   *repository.AccountRepository
	businesses *repository.TenantBusinessRepository
	properties *repository.PropertyRepository
	tenants    *repository.TenantRepository
	payments   *repository.PaymentRepository
	expenses   *repository.ExpenseRepository
	now        time.Time
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup(cfg.LogLevel)

	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	businesses, err := loadBusinesses(dataDir)
	if err != nil {
		logrus.Fatalf("Failed to read demo data: %v", err)
	}

	s := &seeder{
		accounts:   repository.NewAccountRepository(db),
		businesses: repository.NewTenantBusinessRepository(db),
		properties: repository.NewPropertyRepository(db),
		tenants:    repository.NewTenantRepository(db),
		payments:   repository.NewPaymentRepository(db),
		expenses:   repository.NewExpenseRepository(db),
		now:        time.Now(),
	}

	ctx := context.Background()
	created := 0
	for _, b := range businesses {
		ok, err := s.seedBusiness(ctx, b)
		if err != nil {
			logrus.Fatalf("Failed to seed business %s: %v", b.Name, err)
		}
		if ok {
			created++
		}
	}

	logrus.WithFields(logrus.Fields{"created": created, "total": len(businesses)}).Info("Demo data loaded")
}

func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{LogLevel: gormlogger.Silent}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseURL, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadBusinesses(dataDir string) ([]BusinessData, error) {
	var all []BusinessData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file BusinessesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		all = append(all, file.Businesses...)
		return nil
	})

	return all, err
}

// seedBusiness creates a business with everything under it. Existing businesses are left alone.
func (s *seeder) seedBusiness(ctx context.Context, b BusinessData) (bool, error) {
	if _, err := s.businesses.GetByName(ctx, b.Name); err == nil {
		logrus.WithField("business", b.Name).Info("Business exists, skipping")
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hash, err := auth.HashPassword(b.Owner.Password)
	if err != nil {
		return false, err
	}
	business := &models.TenantBusiness{Name: b.Name}
	account := &models.Account{Name: b.Owner.Name, Email: b.Owner.Email, PasswordHash: hash}
	if err := s.accounts.CreateWithTenantBusiness(ctx, business, account); err != nil {
		return false, fmt.Errorf("owner: %w", err)
	}

	for _, p := range b.Properties {
		property := &models.Property{Name: p.Name, Address: p.Address, TenantBusinessID: business.ID}
		if err := s.properties.Create(ctx, property); err != nil {
			return false, fmt.Errorf("property %s: %w", p.Name, err)
		}
		for _, t := range p.Tenants {
			if err := s.seedTenant(ctx, property, t); err != nil {
				return false, fmt.Errorf("tenant %s: %w", t.Name, err)
			}
		}
	}

	for _, e := range b.Expenses {
		amount, err := decimal.NewFromString(e.Amount)
		if err != nil {
			return false, fmt.Errorf("expense %s: %w", e.Description, err)
		}
		expense := &models.Expense{
			Description:      e.Description,
			Amount:           amount,
			Category:         models.ExpenseCategory(e.Category),
			ExpenseDate:      s.now.AddDate(0, 0, -e.DaysBefore),
			TenantBusinessID: business.ID,
		}
		if !expense.Category.IsValid() {
			return false, fmt.Errorf("expense %s: unknown category %q", e.Description, e.Category)
		}
		if err := s.expenses.Create(ctx, expense); err != nil {
			return false, fmt.Errorf("expense %s: %w", e.Description, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"business":   b.Name,
		"owner":      account.Email,
		"properties": len(b.Properties),
	}).Info("Business seeded")
	return true, nil
}

func (s *seeder) seedTenant(ctx context.Context, property *models.Property, t TenantData) error {
	rent, err := decimal.NewFromString(t.RentAmount)
	if err != nil {
		return err
	}
	status := models.PaymentStatus(t.PaymentStatus)
	if status == "" {
		status = models.PaymentStatusUnpaid
	}
	tenant := &models.Tenant{
		Name:             t.Name,
		Gender:           models.Gender(t.Gender),
		RentAmount:       rent,
		RoomNumber:       t.RoomNumber,
		PaymentStatus:    status,
		MobileNumber:     t.MobileNumber,
		WhatsappNumber:   t.WhatsappNumber,
		PropertyID:       property.ID,
		TenantBusinessID: property.TenantBusinessID,
	}
	if !tenant.Gender.IsValid() || !tenant.PaymentStatus.IsValid() {
		return fmt.Errorf("invalid gender %q or payment status %q", t.Gender, t.PaymentStatus)
	}
	if err := s.tenants.Create(ctx, tenant); err != nil {
		return err
	}

	for _, p := range t.Payments {
		amount, err := decimal.NewFromString(p.Amount)
		if err != nil {
			return err
		}
		method := models.PaymentMethod(p.Method)
		if method == "" {
			method = models.PaymentMethodCash
		}
		payment := &models.Payment{
			Amount:           amount,
			PaymentDate:      s.now.AddDate(0, 0, -p.DaysBefore),
			PaymentMethod:    method,
			TenantID:         tenant.ID,
			PropertyID:       tenant.PropertyID,
			TenantBusinessID: tenant.TenantBusinessID,
		}
		if err := s.payments.CreateAndMarkPaid(ctx, payment); err != nil {
			return err
		}
	}
	return nil
}
