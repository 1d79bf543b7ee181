package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"pg-management-backend/internal/api/handlers"
	"pg-management-backend/internal/auth"
	apperrors "pg-management-backend/internal/errors"
	"pg-management-backend/internal/mocks"
	"pg-management-backend/internal/service"
	"pg-management-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AuthHandlerTestSuite defines the test suite for AuthHandler and UserHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockIdentity *mocks.MockIdentityServiceInterface
	http         *testutils.HTTPTestSuite
	actor        auth.Actor
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockIdentity = mocks.NewMockIdentityServiceInterface(suite.ctrl)
	suite.actor = auth.Actor{AccountID: uuid.New(), TenantBusinessID: uuid.New()}

	authHandler := handlers.NewAuthHandler(suite.mockIdentity)
	userHandler := handlers.NewUserHandler(suite.mockIdentity)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.POST("/api/auth/register", authHandler.Register)
	suite.http.Router.POST("/api/auth/login", authHandler.Login)
	suite.http.Router.GET("/api/users/profile", testutils.ActingAs(suite.actor), userHandler.GetProfile)
	suite.http.Router.GET("/anonymous/profile", userHandler.GetProfile)
}

func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthHandlerTestSuite) authResponse(message string) *service.AuthResponse {
	view := service.AccountResponse{
		ID:               suite.actor.AccountID,
		Name:             "Asha Rao",
		Email:            "asha@example.com",
		TenantBusinessID: suite.actor.TenantBusinessID,
	}
	return &service.AuthResponse{
		Message:    message,
		Credential: "signed.jwt.token",
		Account:    view,
		ExpiresAt:  time.Now().Add(time.Hour),
		Token:      "signed.jwt.token",
		User:       view,
	}
}

func (suite *AuthHandlerTestSuite) expectRegistration() {
	suite.mockIdentity.EXPECT().
		Register(gomock.Any(), &service.RegisterRequest{
			TenantBusinessName: "Sunrise PG",
			AccountName:        "Asha Rao",
			Email:              "asha@example.com",
			Password:           "s3cret!",
		}).
		Return(suite.authResponse("PG Owner and User registered successfully!"), nil)
}

func (suite *AuthHandlerTestSuite) TestRegister_Created() {
	suite.expectRegistration()

	w := suite.http.MakeRequest(http.MethodPost, "/api/auth/register", map[string]string{
		"tenantBusinessName": "Sunrise PG",
		"accountName":        "Asha Rao",
		"email":              "asha@example.com",
		"password":           "s3cret!",
	})

	var got map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	suite.Equal("PG Owner and User registered successfully!", got["message"])
	suite.Equal("signed.jwt.token", got["credential"])
	account := got["account"].(map[string]interface{})
	suite.Equal(suite.actor.TenantBusinessID.String(), account["tenantBusinessId"])
	suite.NotContains(account, "password")
	suite.NotContains(account, "passwordHash")
}

func (suite *AuthHandlerTestSuite) TestRegister_LegacyBodyKeys() {
	suite.expectRegistration()

	w := suite.http.MakeRequest(http.MethodPost, "/api/auth/register", map[string]string{
		"pgOwnerName": "Sunrise PG",
		"name":        "Asha Rao",
		"email":       "asha@example.com",
		"password":    "s3cret!",
	})

	var got map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	suite.Equal("signed.jwt.token", got["token"])
	suite.Equal(got["credential"], got["token"])
	suite.Equal(got["account"], got["user"])
}

func (suite *AuthHandlerTestSuite) TestRegister_Errors() {
	suite.http.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:             "malformed body",
			Request:          testutils.MockHTTPRequest{Method: http.MethodPost, URL: "/api/auth/register", Body: "{not json"},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusBadRequest},
		},
		{
			Name:    "duplicate business name",
			Request: testutils.MockHTTPRequest{Method: http.MethodPost, URL: "/api/auth/register", Body: map[string]string{"pgOwnerName": "Sunrise PG"}},
			Setup: func() {
				suite.mockIdentity.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrTenantBusinessExists)
			},
			ExpectedResponse: testutils.MockHTTPResponse{
				Status: http.StatusBadRequest,
				Body:   map[string]string{"error": "PG business already exists with this name"},
			},
		},
		{
			Name:    "store failure is hidden",
			Request: testutils.MockHTTPRequest{Method: http.MethodPost, URL: "/api/auth/register", Body: map[string]string{}},
			Setup: func() {
				suite.mockIdentity.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("pq: connection reset"))
			},
			ExpectedResponse: testutils.MockHTTPResponse{
				Status: http.StatusInternalServerError,
				Body:   map[string]string{"error": "failed to register"},
			},
		},
	})
}

func (suite *AuthHandlerTestSuite) TestLogin() {
	suite.mockIdentity.EXPECT().Login(gomock.Any(), &service.LoginRequest{Email: "asha@example.com", Password: "s3cret!"}).
		Return(suite.authResponse("Login successful!"), nil)

	w := suite.http.MakeRequest(http.MethodPost, "/api/auth/login", map[string]string{"email": "asha@example.com", "password": "s3cret!"})

	var got service.AuthResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal("Login successful!", got.Message)
}

func (suite *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.mockIdentity.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidCredentials)

	w := suite.http.MakeRequest(http.MethodPost, "/api/auth/login", map[string]string{"email": "asha@example.com", "password": "nope"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusUnauthorized, "invalid credentials")
}

func (suite *AuthHandlerTestSuite) TestProfile() {
	suite.mockIdentity.EXPECT().GetProfile(gomock.Any(), suite.actor).
		Return(&service.AccountResponse{ID: suite.actor.AccountID, Email: "asha@example.com", TenantBusinessID: suite.actor.TenantBusinessID}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/api/users/profile", nil)

	var got service.AccountResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal(suite.actor.AccountID, got.ID)
}

func (suite *AuthHandlerTestSuite) TestProfile_WithoutActor() {
	w := suite.http.MakeRequest(http.MethodGet, "/anonymous/profile", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusUnauthorized, "no token")
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
