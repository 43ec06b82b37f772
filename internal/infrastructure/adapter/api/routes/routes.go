package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	ledgerHandler *handler.LedgerHandler,
	authHandler *handler.AuthHandler,
	authService usecase.AuthUseCase,
	cookieName string,
	logger coreport.Logger,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/logout", middleware.RequireAuth(authService, cookieName, logger), authHandler.Logout)
	}

	protected := router.Group("/")
	protected.Use(middleware.RequireAuth(authService, cookieName, logger))
	{
		protected.GET("/transactions", ledgerHandler.List)
		protected.POST("/transactions", ledgerHandler.Create)
		protected.GET("/transactions/:id", ledgerHandler.Get)
		protected.PUT("/transactions/:id", ledgerHandler.Update)
		protected.DELETE("/transactions/:id", ledgerHandler.Delete)
		protected.GET("/balance", ledgerHandler.Balance)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
