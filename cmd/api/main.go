package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"financeflow/internal/config"
	"financeflow/internal/database"
	"financeflow/internal/logger"
	"financeflow/internal/server"
	"financeflow/internal/store"
	"financeflow/internal/store/mongostore"
	"financeflow/internal/store/sqlstore"

	"gorm.io/gorm"
)

// @title           FinanceFlow API
// @version         1.0
// @description     FinanceFlow tracks income and expenses, expands installments and recurring entries, and turns monthly figures into insights.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	st, closeStore, err := openStore(appConfig, dbManager.DB())
	if err != nil {
		return err
	}
	defer closeStore()

	router := server.NewRouter(server.NewServices(dbManager.DB(), st, appConfig))

	log.Infof("Starting FinanceFlow server on port %s (store backend: %s)", appConfig.Port, appConfig.StoreBackend)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

// openStore selects where transactions, savings goals and wishlist items
// live. Users and audit logs always stay in the SQL database.
func openStore(cfg *config.Config, db *gorm.DB) (store.Store, func(), error) {
	if cfg.StoreBackend != config.StoreBackendMongo {
		return sqlstore.New(db), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongostore.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	closeFn := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Get().Warnf("mongodb disconnect error: %v", err)
		}
	}
	return mongostore.New(mongostore.NewDatabaseProvider(client, cfg.MongoDatabase)), closeFn, nil
}
