package testutils

import (
	"fmt"
	"time"

	"pg-management-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TenantBusinessFactory provides methods to create test TenantBusiness data
type TenantBusinessFactory struct{}

// NewTenantBusinessFactory creates a new TenantBusinessFactory
func NewTenantBusinessFactory() *TenantBusinessFactory {
	return &TenantBusinessFactory{}
}

// Create creates a test TenantBusiness with a unique name
func (f *TenantBusinessFactory) Create() *models.TenantBusiness {
	id := uuid.New()
	return &models.TenantBusiness{
		ID:        id,
		Name:      "Sunrise PG " + id.String()[:8],
		CreatedAt: time.Now().UTC(),
	}
}

// WithName sets a custom name for the tenant business
func (f *TenantBusinessFactory) WithName(name string) *models.TenantBusiness {
	b := f.Create()
	b.Name = name
	return b
}

// AccountFactory provides methods to create test Account data
type AccountFactory struct{}

// NewAccountFactory creates a new AccountFactory
func NewAccountFactory() *AccountFactory {
	return &AccountFactory{}
}

// Create creates a test Account with a unique email. PasswordHash is not a real bcrypt hash.
func (f *AccountFactory) Create() *models.Account {
	id := uuid.New()
	return &models.Account{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		},
		Name:             "Asha Rao",
		Email:            fmt.Sprintf("owner-%s@test.com", id.String()[:8]),
		PasswordHash:     "not-a-hash",
		TenantBusinessID: uuid.New(),
	}
}

// WithTenantBusiness binds the account to a tenant business
func (f *AccountFactory) WithTenantBusiness(tenantBusinessID uuid.UUID) *models.Account {
	a := f.Create()
	a.TenantBusinessID = tenantBusinessID
	return a
}

// PropertyFactory provides methods to create test Property data
type PropertyFactory struct{}

// NewPropertyFactory creates a new PropertyFactory
func NewPropertyFactory() *PropertyFactory {
	return &PropertyFactory{}
}

// Create creates a test Property with default values
func (f *PropertyFactory) Create() *models.Property {
	return &models.Property{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		},
		Name:             "Green View Residency",
		Address:          "12 MG Road, Bengaluru",
		TenantBusinessID: uuid.New(),
	}
}

// WithTenantBusiness sets the owning tenant business
func (f *PropertyFactory) WithTenantBusiness(tenantBusinessID uuid.UUID) *models.Property {
	p := f.Create()
	p.TenantBusinessID = tenantBusinessID
	return p
}

// TenantFactory provides methods to create test renter data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		},
		Name:             "Ravi Kumar",
		Gender:           models.GenderMale,
		RentAmount:       decimal.NewFromInt(8000),
		RoomNumber:       "101",
		PaymentStatus:    models.PaymentStatusUnpaid,
		MobileNumber:     "9876543210",
		PropertyID:       uuid.New(),
		TenantBusinessID: uuid.New(),
	}
}

// WithProperty places the tenant in property, inheriting its tenant business
func (f *TenantFactory) WithProperty(property *models.Property) *models.Tenant {
	t := f.Create()
	t.PropertyID = property.ID
	t.TenantBusinessID = property.TenantBusinessID
	return t
}

// WithStatus sets the payment status
func (f *TenantFactory) WithStatus(property *models.Property, status models.PaymentStatus) *models.Tenant {
	t := f.WithProperty(property)
	t.PaymentStatus = status
	return t
}

// PaymentFactory provides methods to create test Payment data
type PaymentFactory struct{}

// NewPaymentFactory creates a new PaymentFactory
func NewPaymentFactory() *PaymentFactory {
	return &PaymentFactory{}
}

// For creates a payment for tenant dated at paidAt
func (f *PaymentFactory) For(tenant *models.Tenant, amount int64, paidAt time.Time) *models.Payment {
	return &models.Payment{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		Amount:           decimal.NewFromInt(amount),
		PaymentDate:      paidAt,
		PaymentMethod:    models.PaymentMethodUPI,
		TenantID:         tenant.ID,
		PropertyID:       tenant.PropertyID,
		TenantBusinessID: tenant.TenantBusinessID,
	}
}

// ExpenseFactory provides methods to create test Expense data
type ExpenseFactory struct{}

// NewExpenseFactory creates a new ExpenseFactory
func NewExpenseFactory() *ExpenseFactory {
	return &ExpenseFactory{}
}

// For creates an expense of a tenant business dated at spentAt
func (f *ExpenseFactory) For(tenantBusinessID uuid.UUID, amount int64, spentAt time.Time) *models.Expense {
	return &models.Expense{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		Description:      "Electricity bill",
		Amount:           decimal.NewFromInt(amount),
		Category:         models.ExpenseCategoryUtilities,
		ExpenseDate:      spentAt,
		TenantBusinessID: tenantBusinessID,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	TenantBusiness *TenantBusinessFactory
	Account        *AccountFactory
	Property       *PropertyFactory
	Tenant         *TenantFactory
	Payment        *PaymentFactory
	Expense        *ExpenseFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		TenantBusiness: NewTenantBusinessFactory(),
		Account:        NewAccountFactory(),
		Property:       NewPropertyFactory(),
		Tenant:         NewTenantFactory(),
		Payment:        NewPaymentFactory(),
		Expense:        NewExpenseFactory(),
	}
}

// CreateBusinessGraph builds (without persisting) a tenant business with one account, one property and one tenant
func (fs *FactorySet) CreateBusinessGraph() (*models.TenantBusiness, *models.Account, *models.Property, *models.Tenant) {
	business := fs.TenantBusiness.Create()
	account := fs.Account.WithTenantBusiness(business.ID)
	property := fs.Property.WithTenantBusiness(business.ID)
	tenant := fs.Tenant.WithProperty(property)
	return business, account, property, tenant
}
