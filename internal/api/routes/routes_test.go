package routes_test

import (
	"net/http"
	"testing"

	"pg-management-backend/internal/api/routes"
	"pg-management-backend/internal/database/models"
	"pg-management-backend/internal/service"
	"pg-management-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// RoutesTestSuite drives the fully wired router against the test database
type RoutesTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	http          *testutils.HTTPTestSuite
}

func (suite *RoutesTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	router, err := routes.SetupRoutes(suite.baseTestSuite.DB, suite.baseTestSuite.Config, nil)
	suite.Require().NoError(err)
	suite.http = &testutils.HTTPTestSuite{Router: router}
}

func (suite *RoutesTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *RoutesTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *RoutesTestSuite) register(business, email string) string {
	w := suite.http.MakeRequest(http.MethodPost, "/api/auth/register", map[string]string{
		"tenantBusinessName": business,
		"accountName":        "Owner of " + business,
		"email":              email,
		"password":           "s3cret!",
	})
	var resp service.AuthResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &resp)
	suite.Require().NotEmpty(resp.Credential)
	return resp.Credential
}

// seedOwner creates a property with one renter, one payment and one expense through the API
func (suite *RoutesTestSuite) seedOwner(headers map[string]string) (models.Property, models.Tenant, models.Expense) {
	w := suite.http.MakeRequestWithHeaders(http.MethodPost, "/api/properties",
		map[string]string{"name": "Green View", "address": "12 MG Road"}, headers)
	var property models.Property
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &property)

	w = suite.http.MakeRequestWithHeaders(http.MethodPost, "/api/properties/"+property.ID.String()+"/tenants", map[string]interface{}{
		"name":           "Ravi Kumar",
		"gender":         "Male",
		"rentAmount":     8000,
		"roomNumber":     "101",
		"mobileNumber":   "9876543210",
		"whatsappNumber": "9876500000",
	}, headers)
	var tenant models.Tenant
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &tenant)

	w = suite.http.MakeRequestWithHeaders(http.MethodPost,
		"/api/properties/"+property.ID.String()+"/tenants/"+tenant.ID.String()+"/payments",
		map[string]interface{}{"amount": 8000, "paymentMethod": "UPI"}, headers)
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.http.MakeRequestWithHeaders(http.MethodPost, "/api/expenses",
		map[string]interface{}{"description": "Electricity bill", "amount": 2000, "category": "Utilities"}, headers)
	var expense models.Expense
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &expense)

	return property, tenant, expense
}

func (suite *RoutesTestSuite) TestPublicEndpoints() {
	w := suite.http.MakeRequest(http.MethodGet, "/", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("PG Management API is running...", w.Body.String())

	w = suite.http.MakeRequest(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.http.MakeRequest(http.MethodGet, "/metrics", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *RoutesTestSuite) TestProtectedRoutesRequireToken() {
	for _, path := range []string{"/api/users/profile", "/api/properties", "/api/expenses", "/api/dashboard/stats"} {
		w := suite.http.MakeRequest(http.MethodGet, path, nil)
		testutils.AssertErrorResponse(suite.T(), w, http.StatusUnauthorized, "no token")
	}

	w := suite.http.MakeRequestWithHeaders(http.MethodGet, "/api/properties", nil, testutils.BearerHeader("garbage"))
	testutils.AssertErrorResponse(suite.T(), w, http.StatusUnauthorized, "token invalid")
}

func (suite *RoutesTestSuite) TestOwnerFlow() {
	token := suite.register("Sunrise PG", "asha@example.com")
	headers := testutils.BearerHeader(token)

	w := suite.http.MakeRequest(http.MethodPost, "/api/auth/login", map[string]string{"email": "ASHA@example.com", "password": "s3cret!"})
	suite.Equal(http.StatusOK, w.Code)

	w = suite.http.MakeRequestWithHeaders(http.MethodPost, "/api/properties", map[string]string{"name": "Green View", "address": "12 MG Road"}, headers)
	var property models.Property
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &property)

	tenantsURL := "/api/properties/" + property.ID.String() + "/tenants"
	w = suite.http.MakeRequestWithHeaders(http.MethodPost, tenantsURL, map[string]interface{}{
		"name":          "Ravi Kumar",
		"gender":        "Male",
		"rentAmount":    8000,
		"roomNumber":    "101",
		"mobileNumber":  "9876543210",
		"paymentStatus": "Overdue",
	}, headers)
	var tenant models.Tenant
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &tenant)
	suite.Equal(models.PaymentStatusOverdue, tenant.PaymentStatus)

	w = suite.http.MakeRequestWithHeaders(http.MethodPost, tenantsURL+"/"+tenant.ID.String()+"/payments",
		map[string]interface{}{"amount": 8000, "paymentMethod": "UPI"}, headers)
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.http.MakeRequestWithHeaders(http.MethodGet, tenantsURL+"/"+tenant.ID.String(), nil, headers)
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &tenant)
	suite.Equal(models.PaymentStatusPaid, tenant.PaymentStatus)

	w = suite.http.MakeRequestWithHeaders(http.MethodPost, "/api/expenses",
		map[string]interface{}{"description": "Electricity bill", "amount": 2000, "category": "Utilities"}, headers)
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.http.MakeRequestWithHeaders(http.MethodGet, "/api/dashboard/stats", nil, headers)
	var stats service.DashboardStats
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &stats)
	suite.Equal(int64(1), stats.TotalProperties)
	suite.Equal(int64(1), stats.TotalTenants)
	suite.Equal(int64(0), stats.OverdueTenants)
	suite.Equal("8000", stats.MonthlyRevenue.String())
	suite.Equal("2000", stats.MonthlyExpenses.String())
	suite.Equal("6000", stats.MonthlyProfit.String())

	w = suite.http.MakeRequestWithHeaders(http.MethodDelete, "/api/properties/"+property.ID.String(), nil, headers)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.http.MakeRequestWithHeaders(http.MethodPost, tenantsURL+"/"+tenant.ID.String()+"/upload-document", nil, headers)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RoutesTestSuite) TestBusinessesAreIsolated() {
	ownerToken := suite.register("Sunrise PG", "asha@example.com")
	otherToken := suite.register("Moonlight PG", "vikram@example.com")

	w := suite.http.MakeRequestWithHeaders(http.MethodPost, "/api/properties",
		map[string]string{"name": "Green View", "address": "12 MG Road"}, testutils.BearerHeader(ownerToken))
	var property models.Property
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &property)

	w = suite.http.MakeRequestWithHeaders(http.MethodGet, "/api/properties/"+property.ID.String(), nil, testutils.BearerHeader(otherToken))
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.http.MakeRequestWithHeaders(http.MethodGet, "/api/properties", nil, testutils.BearerHeader(otherToken))
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq("[]", w.Body.String())
}

func (suite *RoutesTestSuite) TestEveryScopedRouteRejectsOtherBusiness() {
	owner := testutils.BearerHeader(suite.register("Sunrise PG", "asha@example.com"))
	other := testutils.BearerHeader(suite.register("Moonlight PG", "vikram@example.com"))
	property, tenant, expense := suite.seedOwner(owner)

	propertyURL := "/api/properties/" + property.ID.String()
	tenantURL := propertyURL + "/tenants/" + tenant.ID.String()
	expenseURL := "/api/expenses/" + expense.ID.String()

	testCases := []struct {
		name   string
		method string
		url    string
		body   interface{}
	}{
		{"get property", http.MethodGet, propertyURL, nil},
		{"update property", http.MethodPut, propertyURL, map[string]string{"name": "Taken Over"}},
		{"delete property", http.MethodDelete, propertyURL, nil},
		{"list tenants", http.MethodGet, propertyURL + "/tenants", nil},
		{"create tenant", http.MethodPost, propertyURL + "/tenants", map[string]interface{}{
			"name": "Intruder", "gender": "Male", "rentAmount": 1, "roomNumber": "9", "mobileNumber": "1",
		}},
		{"get tenant", http.MethodGet, tenantURL, nil},
		{"update tenant", http.MethodPut, tenantURL, map[string]string{"roomNumber": "999"}},
		{"delete tenant", http.MethodDelete, tenantURL, nil},
		{"list payments", http.MethodGet, tenantURL + "/payments", nil},
		{"record payment", http.MethodPost, tenantURL + "/payments", map[string]interface{}{"amount": 1, "paymentMethod": "Cash"}},
		{"update expense", http.MethodPut, expenseURL, map[string]interface{}{"amount": 1}},
		{"delete expense", http.MethodDelete, expenseURL, nil},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			w := suite.http.MakeRequestWithHeaders(tc.method, tc.url, tc.body, other)
			suite.Equal(http.StatusForbidden, w.Code, w.Body.String())
		})
	}

	suite.Run("upload document", func() {
		w := suite.http.MakeMultipartRequest(tenantURL+"/upload-document", "document", "id.pdf", []byte("%PDF-1.4"), other)
		suite.Equal(http.StatusForbidden, w.Code, w.Body.String())
	})

	// nothing the other business attempted landed
	w := suite.http.MakeRequestWithHeaders(http.MethodGet, tenantURL, nil, owner)
	var stored models.Tenant
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &stored)
	suite.Equal("101", stored.RoomNumber)

	w = suite.http.MakeRequestWithHeaders(http.MethodGet, propertyURL, nil, owner)
	var storedProperty models.Property
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &storedProperty)
	suite.Equal("Green View", storedProperty.Name)

	w = suite.http.MakeRequestWithHeaders(http.MethodGet, tenantURL+"/payments", nil, owner)
	var payments []models.Payment
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &payments)
	suite.Len(payments, 1)

	w = suite.http.MakeRequestWithHeaders(http.MethodGet, propertyURL+"/tenants", nil, owner)
	var tenants []models.Tenant
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &tenants)
	suite.Len(tenants, 1)

	w = suite.http.MakeRequestWithHeaders(http.MethodGet, "/api/expenses", nil, owner)
	var expenses []models.Expense
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &expenses)
	suite.Require().Len(expenses, 1)
	suite.True(expenses[0].Amount.Equal(expense.Amount))
}

func (suite *RoutesTestSuite) TestTenantUpdateTouchesOnlySuppliedFields() {
	owner := testutils.BearerHeader(suite.register("Sunrise PG", "asha@example.com"))
	property, tenant, _ := suite.seedOwner(owner)
	tenantURL := "/api/properties/" + property.ID.String() + "/tenants/" + tenant.ID.String()

	w := suite.http.MakeRequestWithHeaders(http.MethodGet, tenantURL, nil, owner)
	var before models.Tenant
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &before)

	w = suite.http.MakeRequestWithHeaders(http.MethodPut, tenantURL, map[string]string{"roomNumber": "12"}, owner)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.http.MakeRequestWithHeaders(http.MethodGet, tenantURL, nil, owner)
	var after models.Tenant
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &after)

	suite.Equal("12", after.RoomNumber)
	suite.Equal(before.Name, after.Name)
	suite.Equal(before.Gender, after.Gender)
	suite.True(before.RentAmount.Equal(after.RentAmount))
	suite.Equal(before.PaymentStatus, after.PaymentStatus)
	suite.Equal(before.MobileNumber, after.MobileNumber)
	suite.Equal(before.WhatsappNumber, after.WhatsappNumber)
	suite.Equal(before.DocumentURL, after.DocumentURL)
	suite.Equal(before.PropertyID, after.PropertyID)
	suite.Equal(before.TenantBusinessID, after.TenantBusinessID)
	suite.True(before.CreatedAt.Equal(after.CreatedAt))
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
