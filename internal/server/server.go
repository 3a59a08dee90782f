// Package server wires services, handlers and middleware into the HTTP router.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"financeflow/internal/config"
	_ "financeflow/internal/docs" // Import swagger docs
	"financeflow/internal/handlers"
	"financeflow/internal/middleware"
	"financeflow/internal/services"
	"financeflow/internal/store"
	"financeflow/internal/validator"
)

// Services groups every service the router needs.
type Services struct {
	Users        services.UserServicer
	Transactions services.TransactionServicer
	Savings      services.SavingsServicer
	Wishlist     services.WishlistServicer
	Dashboard    services.DashboardServicer
	Audit        services.AuditServicer
}

// NewServices builds the services. Users and audit logs always live in db;
// finance data lives in st, which may be SQL or MongoDB.
func NewServices(db *gorm.DB, st store.Store, cfg *config.Config) *Services {
	savings := services.NewSavingsService(st, cfg.DefaultSavingsTarget)
	return &Services{
		Users:        services.NewUserService(db),
		Transactions: services.NewTransactionService(st),
		Savings:      savings,
		Wishlist:     services.NewWishlistService(st),
		Dashboard:    services.NewDashboardService(st, st, savings),
		Audit:        services.NewAuditService(db),
	}
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, x-auth-token")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// NewRouter builds the Gin engine with every route under /api/v1.
func NewRouter(svc *Services) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.Users, svc.Audit)
	transactionHandler := handlers.NewTransactionHandler(svc.Transactions, svc.Audit)
	savingsHandler := handlers.NewSavingsHandler(svc.Savings, svc.Audit)
	wishlistHandler := handlers.NewWishlistHandler(svc.Wishlist, svc.Audit)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)
	referenceHandler := handlers.NewReferenceHandler()

	validator.Register()

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	v1.GET("/categories", referenceHandler.ListCategories)
	v1.GET("/banks", referenceHandler.ListBanks)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.PATCH("/:id/paid", transactionHandler.SetPaid)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	savings := protected.Group("/savings")
	savings.GET("", savingsHandler.GetSavings)
	savings.PUT("", savingsHandler.UpdateSavings)

	wishlist := protected.Group("/wishlist")
	wishlist.GET("", wishlistHandler.ListWishlist)
	wishlist.POST("", wishlistHandler.CreateWishlistItem)
	wishlist.PUT("/:id", wishlistHandler.UpdateWishlistItem)
	wishlist.DELETE("/:id", wishlistHandler.DeleteWishlistItem)

	dashboard := protected.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)
	dashboard.GET("/insights", dashboardHandler.GetInsights)
	dashboard.GET("/banks", dashboardHandler.GetBankBalances)
	dashboard.GET("/annual", dashboardHandler.GetAnnualSeries)

	return router
}
