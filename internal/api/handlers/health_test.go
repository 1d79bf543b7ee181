package handlers_test

import (
	"net/http"
	"testing"

	"pg-management-backend/internal/api/handlers"
	"pg-management-backend/internal/database"
	"pg-management-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHealthRoutes(t *testing.T) (*testutils.HTTPTestSuite, func()) {
	db, err := database.Initialize(database.DriverSQLite, "file:health?mode=memory&cache=shared", nil)
	require.NoError(t, err)

	handler := handlers.NewHealthHandler(db, "test")
	h := testutils.SetupHTTPTest()
	h.Router.GET("/", handler.Root)
	h.Router.GET("/health", handler.Health)
	h.Router.GET("/health/ready", handler.Ready)
	h.Router.GET("/health/live", handler.Live)

	closeDB := func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		_ = sqlDB.Close()
	}
	return h, closeDB
}

func TestRoot(t *testing.T) {
	h, closeDB := setupHealthRoutes(t)
	defer closeDB()

	w := h.MakeRequest(http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PG Management API is running...", w.Body.String())
}

func TestHealth(t *testing.T) {
	h, closeDB := setupHealthRoutes(t)
	defer closeDB()

	w := h.MakeRequest(http.MethodGet, "/health", nil)

	var got handlers.HealthResponse
	testutils.AssertJSONResponse(t, w, http.StatusOK, &got)
	assert.Equal(t, "healthy", got.Status)
	assert.Equal(t, "test", got.Version)
	assert.Equal(t, "healthy", got.Services["database"])

	w = h.MakeRequest(http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = h.MakeRequest(http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealth_DatabaseDown(t *testing.T) {
	h, closeDB := setupHealthRoutes(t)
	closeDB()

	w := h.MakeRequest(http.MethodGet, "/health", nil)

	var got handlers.HealthResponse
	testutils.AssertJSONResponse(t, w, http.StatusServiceUnavailable, &got)
	assert.Equal(t, "unhealthy", got.Status)
	assert.Contains(t, got.Services["database"], "error")

	w = h.MakeRequest(http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	// liveness does not depend on the database
	w = h.MakeRequest(http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
