package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	authUseCase "github.com/amirhossein-jamali/finance-ledger/internal/domain/usecase/auth"
	ledgerUseCase "github.com/amirhossein-jamali/finance-ledger/internal/domain/usecase/ledger"

	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logger.LevelFromString(cfg.Logger.Level))

	// Setup database configuration
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	migrationMgr := migration.NewManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.Run(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	sessionRepo := repository.NewSessionRepository(dbManager.DB(), appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)

	// Initialize use cases
	authService := authUseCase.NewAuthUseCase(userRepo, sessionRepo, tp, appLogger, cfg.Auth.SessionTTL)
	ledgerService := ledgerUseCase.NewService(transactionRepo, tp, appLogger)

	// Remove stale sessions left over from previous runs
	if err := sessionRepo.DeleteExpired(context.Background(), tp.Now()); err != nil {
		appLogger.Warn("Failed to clean up expired sessions", map[string]any{
			"error": err.Error(),
		})
	}

	// Initialize API handlers
	cookieSettings := handler.CookieSettings{
		Name:   cfg.Auth.CookieName,
		MaxAge: int(cfg.Auth.SessionTTL.Seconds()),
		Secure: cfg.Auth.SecureCookie,
	}
	authHandler := handler.NewAuthHandler(authService, cookieSettings, appLogger)
	ledgerHandler := handler.NewLedgerHandler(ledgerService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, ledgerHandler, authHandler, authService, cfg.Auth.CookieName, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Flush()
	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("FL_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or FL_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}
	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("FL_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or FL_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}
	if cfg.Database.Password == "" {
		if cfg.Environment == config.Production && os.Getenv("FL_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or FL_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}
	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("FL_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or FL_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Auth.SessionTTL == 0 {
		missingConfigs = append(missingConfigs, "auth.sessionTTL")
	}
	if cfg.Auth.CookieName == "" {
		missingConfigs = append(missingConfigs, "auth.cookieName")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if !cfg.Auth.SecureCookie {
			warnings = append(warnings, "auth.secureCookie should be enabled in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
