package handler

import (
	"net/http"

	"expense_manager/internal/middleware"
	"expense_manager/internal/observability"
	"expense_manager/internal/transaction"
	"expense_manager/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// SetupHandler initializes all dependencies and routes
func SetupHandler(client *mongo.Client, db *mongo.Database) *gin.Engine {

	r := gin.Default()

	// Allow all origins, same as the frontend has always relied on.
	r.Use(cors.Default())
	if observability.GlobalMetrics != nil {
		r.Use(middleware.PrometheusMiddleware(observability.GlobalMetrics))
	}

	// Initialize repositories
	userRepo := user.NewRepository(db)
	txRepo := transaction.NewRepository(db)

	// Initialize services
	userService := user.NewService(userRepo)
	txService := transaction.NewService(txRepo)

	// Initialize controllers
	userController := user.NewController(userService)
	txController := transaction.NewController(txService)

	setupRoutes(r, client, userController, txController)

	return r
}

// setupRoutes configures all application routes
func setupRoutes(r *gin.Engine, client *mongo.Client, userCtrl *user.Controller, txCtrl *transaction.Controller) {

	api := r.Group("/api")
	{
		// Users
		api.POST("/signup", userCtrl.Signup)
		api.POST("/login", userCtrl.Login)

		// Transactions. Static segments registered alongside the
		// :userId wildcard; gin resolves search/report before the
		// parameter route.
		api.POST("/transactions", txCtrl.Create)
		api.GET("/transactions/search/:userId", txCtrl.Search)
		api.GET("/transactions/report/:userId", txCtrl.Report)
		api.GET("/transactions/:userId", txCtrl.ListByUser)
		api.DELETE("/transactions/:id", txCtrl.Delete)
	}

	r.GET("/health", func(c *gin.Context) {
		if err := client.Ping(c.Request.Context(), readpref.Primary()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
