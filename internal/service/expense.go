package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pg-management-backend/internal/auth"
	"pg-management-backend/internal/database/models"
	apperrors "pg-management-backend/internal/errors"
	"pg-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const expenseSheet = "Expenses"

// ExpenseService handles business logic for expenses
type ExpenseService struct {
	repo      repository.ExpenseRepositoryInterface
	validator *validator.Validate
	location  *time.Location
	now       func() time.Time
}

// NewExpenseService creates a new expense service
func NewExpenseService(repo repository.ExpenseRepositoryInterface, validator *validator.Validate, location *time.Location) *ExpenseService {
	if location == nil {
		location = time.Local
	}
	return &ExpenseService{
		repo:      repo,
		validator: validator,
		location:  location,
		now:       time.Now,
	}
}

// CreateExpenseRequest represents the request to create an expense
type CreateExpenseRequest struct {
	Description string                 `json:"description" validate:"required,max=500" example:"Electricity bill"`
	Amount      decimal.Decimal        `json:"amount" swaggertype:"number" example:"3200"`
	Category    models.ExpenseCategory `json:"category" validate:"required" example:"Utilities"`
	ExpenseDate *string                `json:"expenseDate,omitempty" example:"2025-10-03"`
}

// UpdateExpenseRequest represents a partial expense update; nil, blank and zero fields are left unchanged
type UpdateExpenseRequest struct {
	Description *string                 `json:"description,omitempty" validate:"omitempty,max=500"`
	Amount      *decimal.Decimal        `json:"amount,omitempty" swaggertype:"number"`
	Category    *models.ExpenseCategory `json:"category,omitempty"`
	ExpenseDate *string                 `json:"expenseDate,omitempty"`
}

// ExpenseExport is a rendered spreadsheet
type ExpenseExport struct {
	Filename string
	Content  []byte
}

// Create records an expense for the actor's tenant business
func (s *ExpenseService) Create(ctx context.Context, actor auth.Actor, req *CreateExpenseRequest) (*models.Expense, error) {
	req.Description = strings.TrimSpace(req.Description)
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if err := requirePositive("amount", req.Amount); err != nil {
		return nil, err
	}
	if !req.Category.IsValid() {
		return nil, invalidCategory()
	}
	spentAt, err := parseDate("expenseDate", req.ExpenseDate, s.location, s.now())
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		Description:      req.Description,
		Amount:           req.Amount,
		Category:         req.Category,
		ExpenseDate:      spentAt,
		TenantBusinessID: actor.TenantBusinessID,
	}
	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return expense, nil
}

// List returns the actor's expenses, newest first. When month or year is given only that month is returned.
func (s *ExpenseService) List(ctx context.Context, actor auth.Actor, month, year string) ([]models.Expense, error) {
	window, err := s.optionalWindow(month, year)
	if err != nil {
		return nil, err
	}
	expenses, err := s.repo.List(ctx, actor.TenantBusinessID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// Update applies the supplied fields to one of the actor's expenses
func (s *ExpenseService) Update(ctx context.Context, actor auth.Actor, id string, req *UpdateExpenseRequest) (*models.Expense, error) {
	expense, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	req.Description = presentString(req.Description)
	if req.Amount, err = presentAmount("amount", req.Amount); err != nil {
		return nil, err
	}
	if req.Category != nil && *req.Category == "" {
		req.Category = nil
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Category != nil {
		if !req.Category.IsValid() {
			return nil, invalidCategory()
		}
		expense.Category = *req.Category
	}
	if req.ExpenseDate != nil {
		spentAt, err := parseDate("expenseDate", req.ExpenseDate, s.location, expense.ExpenseDate)
		if err != nil {
			return nil, err
		}
		expense.ExpenseDate = spentAt
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}

	if err := s.repo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return expense, nil
}

// Delete removes one of the actor's expenses
func (s *ExpenseService) Delete(ctx context.Context, actor auth.Actor, id string) error {
	expense, err := s.owned(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, expense.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrExpenseNotFound
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// Export renders the actor's expenses as an xlsx workbook with a total row
func (s *ExpenseService) Export(ctx context.Context, actor auth.Actor, month, year string) (*ExpenseExport, error) {
	window, err := s.optionalWindow(month, year)
	if err != nil {
		return nil, err
	}
	expenses, err := s.repo.List(ctx, actor.TenantBusinessID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := s.fillExpenseSheet(f, expenses); err != nil {
		return nil, fmt.Errorf("failed to build workbook: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	suffix := s.now().In(s.location).Format("20060102")
	if window != nil {
		suffix = window.From.Format("2006-01")
	}
	return &ExpenseExport{
		Filename: fmt.Sprintf("expenses_%s.xlsx", suffix),
		Content:  buf.Bytes(),
	}, nil
}

func (s *ExpenseService) fillExpenseSheet(f *excelize.File, expenses []models.Expense) error {
	index, err := f.NewSheet(expenseSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	set := func(cell string, value interface{}) {
		if err == nil {
			err = f.SetCellValue(expenseSheet, cell, value)
		}
	}

	for i, h := range []string{"Date", "Description", "Category", "Amount"} {
		cell, cellErr := excelize.CoordinatesToCellName(i+1, 1)
		if cellErr != nil {
			return cellErr
		}
		set(cell, h)
	}

	total := decimal.Zero
	for idx, e := range expenses {
		row := idx + 2
		amount, _ := e.Amount.Float64()
		set(fmt.Sprintf("A%d", row), e.ExpenseDate.In(s.location).Format("2006-01-02"))
		set(fmt.Sprintf("B%d", row), e.Description)
		set(fmt.Sprintf("C%d", row), string(e.Category))
		set(fmt.Sprintf("D%d", row), amount)
		total = total.Add(e.Amount)
	}
	totalRow := len(expenses) + 2
	totalValue, _ := total.Float64()
	set(fmt.Sprintf("C%d", totalRow), "Total")
	set(fmt.Sprintf("D%d", totalRow), totalValue)
	if err != nil {
		return err
	}

	widths := []struct {
		col   string
		width float64
	}{{"A", 12}, {"B", 40}, {"C", 15}, {"D", 12}}
	for _, w := range widths {
		if err := f.SetColWidth(expenseSheet, w.col, w.col, w.width); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExpenseService) owned(ctx context.Context, actor auth.Actor, rawID string) (*models.Expense, error) {
	id, err := parseID(rawID, apperrors.ErrExpenseNotFound)
	if err != nil {
		return nil, err
	}
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	if !actor.Owns(expense.TenantBusinessID) {
		return nil, apperrors.ErrExpenseForbidden
	}
	return expense, nil
}

func (s *ExpenseService) optionalWindow(month, year string) (*repository.DateRange, error) {
	if strings.TrimSpace(month) == "" && strings.TrimSpace(year) == "" {
		return nil, nil
	}
	period, err := resolvePeriod(month, year, s.now().In(s.location))
	if err != nil {
		return nil, err
	}
	window := period.Window(s.location)
	return &window, nil
}

func invalidCategory() error {
	return apperrors.NewValidationError("category", "must be one of: Utilities, Maintenance, Staff Salary, Supplies, Marketing, Other")
}
