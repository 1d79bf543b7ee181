package handlers_test

import (
	"net/http"
	"testing"

	"pg-management-backend/internal/api/handlers"
	"pg-management-backend/internal/auth"
	"pg-management-backend/internal/database/models"
	apperrors "pg-management-backend/internal/errors"
	"pg-management-backend/internal/mocks"
	"pg-management-backend/internal/service"
	"pg-management-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ExpenseHandlerTestSuite defines the test suite for ExpenseHandler and DashboardHandler
type ExpenseHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockExpenses  *mocks.MockExpenseServiceInterface
	mockDashboard *mocks.MockDashboardServiceInterface
	http          *testutils.HTTPTestSuite
	actor         auth.Actor
}

func (suite *ExpenseHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockExpenses = mocks.NewMockExpenseServiceInterface(suite.ctrl)
	suite.mockDashboard = mocks.NewMockDashboardServiceInterface(suite.ctrl)
	suite.actor = auth.Actor{AccountID: uuid.New(), TenantBusinessID: uuid.New()}

	expenseHandler := handlers.NewExpenseHandler(suite.mockExpenses)
	dashboardHandler := handlers.NewDashboardHandler(suite.mockDashboard)

	suite.http = testutils.SetupHTTPTest()
	api := suite.http.Router.Group("/api", testutils.ActingAs(suite.actor))
	api.GET("/expenses", expenseHandler.ListExpenses)
	api.POST("/expenses", expenseHandler.CreateExpense)
	api.PUT("/expenses", expenseHandler.UpdateExpenseCollection)
	api.DELETE("/expenses", expenseHandler.DeleteExpenseCollection)
	api.GET("/expenses/export", expenseHandler.ExportExpenses)
	api.PUT("/expenses/:id", expenseHandler.UpdateExpense)
	api.DELETE("/expenses/:id", expenseHandler.DeleteExpense)
	api.GET("/dashboard/stats", dashboardHandler.GetStats)
}

func (suite *ExpenseHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ExpenseHandlerTestSuite) TestCreate() {
	suite.mockExpenses.EXPECT().Create(gomock.Any(), suite.actor, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ auth.Actor, req *service.CreateExpenseRequest) (*models.Expense, error) {
			suite.Equal(models.ExpenseCategoryUtilities, req.Category)
			suite.Require().NotNil(req.ExpenseDate)
			suite.Equal("2025-10-05", *req.ExpenseDate)
			return &models.Expense{Description: req.Description, Amount: req.Amount, Category: req.Category}, nil
		})

	w := suite.http.MakeRequest(http.MethodPost, "/api/expenses", map[string]interface{}{
		"description": "Electricity bill",
		"amount":      2450.5,
		"category":    "Utilities",
		"expenseDate": "2025-10-05",
	})

	var got models.Expense
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	suite.True(got.Amount.Equal(decimal.RequireFromString("2450.5")))
}

func (suite *ExpenseHandlerTestSuite) TestList_ForwardsPeriodQuery() {
	suite.mockExpenses.EXPECT().List(gomock.Any(), suite.actor, "10", "2025").Return([]models.Expense{}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/api/expenses?month=10&year=2025", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq("[]", w.Body.String())
}

func (suite *ExpenseHandlerTestSuite) TestCollectionVerbsAreNotImplemented() {
	suite.http.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:             "update collection",
			Request:          testutils.MockHTTPRequest{Method: http.MethodPut, URL: "/api/expenses"},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusNotImplemented, Body: map[string]string{"error": "Update functionality not yet implemented."}},
		},
		{
			Name:             "delete collection",
			Request:          testutils.MockHTTPRequest{Method: http.MethodDelete, URL: "/api/expenses"},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusNotImplemented, Body: map[string]string{"error": "Delete functionality not yet implemented."}},
		},
	})
}

func (suite *ExpenseHandlerTestSuite) TestUpdateAndDelete() {
	id := uuid.NewString()
	suite.http.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:    "update foreign expense",
			Request: testutils.MockHTTPRequest{Method: http.MethodPut, URL: "/api/expenses/" + id, Body: map[string]string{"description": "x"}},
			Setup: func() {
				suite.mockExpenses.EXPECT().Update(gomock.Any(), suite.actor, id, gomock.Any()).Return(nil, apperrors.ErrExpenseForbidden)
			},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusForbidden, Body: map[string]string{"error": "user not authorized for this expense"}},
		},
		{
			Name:    "delete missing expense",
			Request: testutils.MockHTTPRequest{Method: http.MethodDelete, URL: "/api/expenses/" + id},
			Setup: func() {
				suite.mockExpenses.EXPECT().Delete(gomock.Any(), suite.actor, id).Return(apperrors.ErrExpenseNotFound)
			},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusNotFound},
		},
		{
			Name:    "delete",
			Request: testutils.MockHTTPRequest{Method: http.MethodDelete, URL: "/api/expenses/" + id},
			Setup: func() {
				suite.mockExpenses.EXPECT().Delete(gomock.Any(), suite.actor, id).Return(nil)
			},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusOK, Body: map[string]string{"message": "Expense removed successfully"}},
		},
	})
}

func (suite *ExpenseHandlerTestSuite) TestExport() {
	content := []byte("PK\x03\x04workbook")
	suite.mockExpenses.EXPECT().Export(gomock.Any(), suite.actor, "10", "2025").
		Return(&service.ExpenseExport{Filename: "expenses_2025-10.xlsx", Content: content}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/api/expenses/export?month=10&year=2025", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	suite.Equal(`attachment; filename="expenses_2025-10.xlsx"`, w.Header().Get("Content-Disposition"))
	suite.Equal(content, w.Body.Bytes())
}

func (suite *ExpenseHandlerTestSuite) TestExport_BadPeriod() {
	suite.mockExpenses.EXPECT().Export(gomock.Any(), suite.actor, "13", "").
		Return(nil, apperrors.NewValidationError("month", "must be between 1 and 12"))

	w := suite.http.MakeRequest(http.MethodGet, "/api/expenses/export?month=13", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "month")
}

func (suite *ExpenseHandlerTestSuite) TestDashboardStats() {
	suite.mockDashboard.EXPECT().Compute(gomock.Any(), suite.actor, "", "").
		Return(&service.DashboardStats{
			AnalyticsFor:    service.Period{Month: 10, Year: 2025},
			TotalProperties: 2,
			TotalTenants:    7,
			OverdueTenants:  1,
			MonthlyRevenue:  decimal.NewFromInt(56000),
			MonthlyExpenses: decimal.NewFromInt(12000),
			MonthlyProfit:   decimal.NewFromInt(44000),
		}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/api/dashboard/stats", nil)

	var got service.DashboardStats
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal(service.Period{Month: 10, Year: 2025}, got.AnalyticsFor)
	suite.Equal(int64(7), got.TotalTenants)
	suite.True(got.MonthlyProfit.Equal(decimal.NewFromInt(44000)))
}

func TestExpenseHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerTestSuite))
}
