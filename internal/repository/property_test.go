package repository

import (
	"context"
	"testing"

	"pg-management-backend/internal/database/models"
	"pg-management-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PropertyTenantRepositoryTestSuite tests the PropertyRepository and TenantRepository
type PropertyTenantRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	properties    *PropertyRepository
	tenants       *TenantRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *PropertyTenantRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.properties = NewPropertyRepository(suite.baseTestSuite.DB)
	suite.tenants = NewTenantRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *PropertyTenantRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PropertyTenantRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *PropertyTenantRepositoryTestSuite) TestCreateAndGetProperty() {
	property := suite.factories.Property.Create()

	suite.Require().NoError(suite.properties.Create(suite.ctx, property))
	found, err := suite.properties.GetByID(suite.ctx, property.ID)

	suite.NoError(err)
	suite.Equal(property.Name, found.Name)
	suite.Equal(property.TenantBusinessID, found.TenantBusinessID)
	suite.NotZero(found.CreatedAt)
}

func (suite *PropertyTenantRepositoryTestSuite) TestListPropertiesIsScoped() {
	mine := uuid.New()
	suite.Require().NoError(suite.properties.Create(suite.ctx, suite.factories.Property.WithTenantBusiness(mine)))
	suite.Require().NoError(suite.properties.Create(suite.ctx, suite.factories.Property.WithTenantBusiness(mine)))
	suite.Require().NoError(suite.properties.Create(suite.ctx, suite.factories.Property.WithTenantBusiness(uuid.New())))

	list, err := suite.properties.ListByTenantBusiness(suite.ctx, mine)
	suite.NoError(err)
	suite.Len(list, 2)

	count, err := suite.properties.CountByTenantBusiness(suite.ctx, mine)
	suite.NoError(err)
	suite.Equal(int64(2), count)

	empty, err := suite.properties.ListByTenantBusiness(suite.ctx, uuid.New())
	suite.NoError(err)
	suite.NotNil(empty)
	suite.Empty(empty)
}

func (suite *PropertyTenantRepositoryTestSuite) TestUpdateAndDeleteProperty() {
	property := suite.factories.Property.Create()
	suite.Require().NoError(suite.properties.Create(suite.ctx, property))

	property.Address = "New Address"
	suite.NoError(suite.properties.Update(suite.ctx, property))
	found, err := suite.properties.GetByID(suite.ctx, property.ID)
	suite.NoError(err)
	suite.Equal("New Address", found.Address)

	suite.NoError(suite.properties.Delete(suite.ctx, property.ID))
	suite.ErrorIs(suite.properties.Delete(suite.ctx, property.ID), gorm.ErrRecordNotFound)
}

func (suite *PropertyTenantRepositoryTestSuite) TestTenantLifecycle() {
	property := suite.factories.Property.Create()
	suite.Require().NoError(suite.properties.Create(suite.ctx, property))

	tenant := suite.factories.Tenant.WithProperty(property)
	tenant.RentAmount = decimal.RequireFromString("7500.50")
	suite.Require().NoError(suite.tenants.Create(suite.ctx, tenant))

	found, err := suite.tenants.GetByID(suite.ctx, tenant.ID)
	suite.NoError(err)
	suite.True(found.RentAmount.Equal(decimal.RequireFromString("7500.50")))
	suite.Equal(models.PaymentStatusUnpaid, found.PaymentStatus)
	suite.Equal("", found.DocumentURL)

	suite.NoError(suite.tenants.UpdateDocumentURL(suite.ctx, tenant.ID, "https://files/doc.pdf"))
	found, err = suite.tenants.GetByID(suite.ctx, tenant.ID)
	suite.NoError(err)
	suite.Equal("https://files/doc.pdf", found.DocumentURL)

	count, err := suite.tenants.CountByProperty(suite.ctx, property.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)

	suite.NoError(suite.tenants.Delete(suite.ctx, tenant.ID))
	_, err = suite.tenants.GetByID(suite.ctx, tenant.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.tenants.UpdateDocumentURL(suite.ctx, tenant.ID, "x"), gorm.ErrRecordNotFound)
}

func (suite *PropertyTenantRepositoryTestSuite) TestCountTenantsByStatus() {
	property := suite.factories.Property.Create()
	suite.Require().NoError(suite.properties.Create(suite.ctx, property))
	suite.Require().NoError(suite.tenants.Create(suite.ctx, suite.factories.Tenant.WithStatus(property, models.PaymentStatusOverdue)))
	suite.Require().NoError(suite.tenants.Create(suite.ctx, suite.factories.Tenant.WithStatus(property, models.PaymentStatusOverdue)))
	suite.Require().NoError(suite.tenants.Create(suite.ctx, suite.factories.Tenant.WithStatus(property, models.PaymentStatusPaid)))

	all, err := suite.tenants.CountByTenantBusiness(suite.ctx, property.TenantBusinessID, nil)
	suite.NoError(err)
	suite.Equal(int64(3), all)

	overdue := models.PaymentStatusOverdue
	late, err := suite.tenants.CountByTenantBusiness(suite.ctx, property.TenantBusinessID, &overdue)
	suite.NoError(err)
	suite.Equal(int64(2), late)
}

func (suite *PropertyTenantRepositoryTestSuite) TestListTenantsByProperty() {
	property := suite.factories.Property.Create()
	other := suite.factories.Property.Create()
	suite.Require().NoError(suite.properties.Create(suite.ctx, property))
	suite.Require().NoError(suite.properties.Create(suite.ctx, other))

	a := suite.factories.Tenant.WithProperty(property)
	a.RoomNumber = "202"
	b := suite.factories.Tenant.WithProperty(property)
	b.RoomNumber = "101"
	suite.Require().NoError(suite.tenants.Create(suite.ctx, a))
	suite.Require().NoError(suite.tenants.Create(suite.ctx, b))
	suite.Require().NoError(suite.tenants.Create(suite.ctx, suite.factories.Tenant.WithProperty(other)))

	list, err := suite.tenants.ListByProperty(suite.ctx, property.ID)
	suite.NoError(err)
	suite.Require().Len(list, 2)
	suite.Equal("101", list[0].RoomNumber)
}

// TestPropertyTenantRepositoryTestSuite runs the test suite
func TestPropertyTenantRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PropertyTenantRepositoryTestSuite))
}
