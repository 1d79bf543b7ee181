package routes

import (
	"fmt"

	"pg-management-backend/internal/api/handlers"
	"pg-management-backend/internal/api/middleware"
	"pg-management-backend/internal/auth"
	"pg-management-backend/internal/config"
	"pg-management-backend/internal/metrics"
	"pg-management-backend/internal/repository"
	"pg-management-backend/internal/service"
	"pg-management-backend/internal/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, documents storage.DocumentStore) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	tokenConfig, err := auth.NewTokenConfig(cfg)
	if err != nil {
		return nil, err
	}
	tokens, err := auth.NewTokenIssuer(tokenConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}
	if documents == nil {
		documents = storage.DisabledStore{}
	}

	validator := service.NewValidator()

	// Initialize repositories
	businessRepo := repository.NewTenantBusinessRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)

	// Initialize services
	identityService := service.NewIdentityService(accountRepo, businessRepo, tokens, validator)
	propertyService := service.NewPropertyService(propertyRepo, tenantRepo, validator)
	tenantService := service.NewTenantService(tenantRepo, propertyRepo, documents, validator)
	paymentService := service.NewPaymentService(paymentRepo, tenantRepo, location)
	expenseService := service.NewExpenseService(expenseRepo, validator, location)
	dashboardService := service.NewDashboardService(propertyRepo, tenantRepo, paymentRepo, expenseRepo, location)

	authMiddleware := auth.NewAuthMiddleware(auth.NewGuard(tokens, accountRepo))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	authHandler := handlers.NewAuthHandler(identityService)
	userHandler := handlers.NewUserHandler(identityService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	tenantHandler := handlers.NewTenantHandler(tenantService, cfg.MaxUploadBytes())
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	router.GET("/", healthHandler.Root)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	// Everything below requires a bearer token
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())

	protected.GET("/users/profile", userHandler.GetProfile)

	properties := protected.Group("/properties")
	{
		properties.GET("", propertyHandler.ListProperties)
		properties.POST("", propertyHandler.CreateProperty)
		properties.GET("/:id", propertyHandler.GetProperty)
		properties.PUT("/:id", propertyHandler.UpdateProperty)
		properties.DELETE("/:id", propertyHandler.DeleteProperty)

		tenants := properties.Group("/:id/tenants")
		{
			tenants.GET("", tenantHandler.ListTenants)
			tenants.POST("", tenantHandler.CreateTenant)
			tenants.GET("/:tid", tenantHandler.GetTenant)
			tenants.PUT("/:tid", tenantHandler.UpdateTenant)
			tenants.DELETE("/:tid", tenantHandler.DeleteTenant)
			tenants.POST("/:tid/upload-document", tenantHandler.UploadDocument)
			tenants.GET("/:tid/payments", paymentHandler.ListPayments)
			tenants.POST("/:tid/payments", paymentHandler.RecordPayment)
		}
	}

	expenses := protected.Group("/expenses")
	{
		expenses.GET("", expenseHandler.ListExpenses)
		expenses.POST("", expenseHandler.CreateExpense)
		expenses.PUT("", expenseHandler.UpdateExpenseCollection)
		expenses.DELETE("", expenseHandler.DeleteExpenseCollection)
		expenses.GET("/export", expenseHandler.ExportExpenses)
		expenses.PUT("/:id", expenseHandler.UpdateExpense)
		expenses.DELETE("/:id", expenseHandler.DeleteExpense)
	}

	protected.GET("/dashboard/stats", dashboardHandler.GetStats)

	return router, nil
}
