package routes

import (
	"business-platform-backend/internal/api/handlers"
	"business-platform-backend/internal/api/middleware"
	"business-platform-backend/internal/auth"
	"business-platform-backend/internal/catalog"
	"business-platform-backend/internal/config"
	"business-platform-backend/internal/repository"
	"business-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	// Initialize validator and catalog
	validator := validator.New()
	cat := catalog.Default()

	// Initialize repositories
	txManager := repository.NewTxManager(db)
	tenantRepo := repository.NewTenantRepository(db)
	userRepo := repository.NewUserRepository(db)
	membershipRepo := repository.NewUserTenantRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	categoryRepo := repository.NewInventoryCategoryRepository(db)

	// Initialize auth
	authService := auth.NewAuthService(cfg)
	authMiddleware := auth.NewAuthMiddleware(authService, membershipRepo)

	// Initialize services
	seederService := service.NewSeederService(categoryRepo, cat)
	provisioningService := service.NewProvisioningService(
		txManager, tenantRepo, userRepo, membershipRepo, settingRepo,
		seederService, authService, validator,
	)
	onboardingService := service.NewOnboardingService(tenantRepo, seederService)
	tenantService := service.NewTenantService(tenantRepo, membershipRepo)
	categoryService := service.NewCategoryService(categoryRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	tenantHandler := handlers.NewTenantHandler(provisioningService, onboardingService, tenantService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, cat)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(middleware.PrometheusHandler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		// Public routes
		v1.POST("/tenants/signup", tenantHandler.Signup)
		v1.GET("/shop-types", categoryHandler.ListShopTypes)

		// Authenticated routes
		authed := v1.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			authed.GET("/memberships", tenantHandler.ListMemberships)

			// Tenant-scoped routes
			scoped := authed.Group("")
			scoped.Use(authMiddleware.RequireTenant())
			{
				scoped.POST("/tenants/onboarding", tenantHandler.CompleteOnboarding)
				scoped.GET("/tenants/me", tenantHandler.GetProfile)
				scoped.GET("/categories", categoryHandler.ListCategories)
				scoped.POST("/categories", categoryHandler.CreateCategory)
			}
		}
	}

	return router
}
