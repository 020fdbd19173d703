package routes

import (
	"time"

	"task-bidding-api/internal/cache"
	"task-bidding-api/internal/config"
	"task-bidding-api/internal/handlers"
	"task-bidding-api/internal/middleware"
	"task-bidding-api/internal/models"
	"task-bidding-api/internal/realtime"
	"task-bidding-api/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the HTTP and WebSocket surface over the given
// collaborators. The hub and store are constructed once at server start and
// shared by every handler.
func SetupRoutes(st *store.Store, hub *realtime.Hub, cfg config.Config) *gin.Engine {
	ginRouter := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	ginRouter.Use(cors.New(corsCfg))

	timeout := time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	openCache := cache.New[string, []models.Task]()

	authHandler := handlers.NewAuthHandler(st, timeout)
	userHandler := handlers.NewUserHandler(st, timeout)
	taskHandler := handlers.NewTaskHandler(st, hub, openCache, cfg.OpenTasksCacheTTL, timeout)
	bidHandler := handlers.NewBidHandler(st, hub, openCache, timeout)
	paymentHandler := handlers.NewPaymentHandler(st, timeout)
	messageHandler := handlers.NewMessageHandler(st, hub, timeout)
	wsHandler := handlers.NewWSHandler(hub)

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task Bidding API is running",
		})
	})

	// WebSocket upgrade; clients authenticate in-band with an AUTHENTICATE message
	ginRouter.GET("/ws", wsHandler.Serve)

	// Public routes (no authentication required)
	api := ginRouter.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/stats", userHandler.GetStats)
		api.GET("/tasks/open", taskHandler.GetOpenTasks)
		api.GET("/tasks/:id", taskHandler.GetTaskByID)
	}

	// Protected routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware())
	{
		protectedRoutes.GET("/auth/user", userHandler.GetAuthUser)
		protectedRoutes.PATCH("/users/profile", userHandler.UpdateProfile)

		// Task endpoints
		protectedRoutes.POST("/tasks", taskHandler.CreateTask)
		protectedRoutes.GET("/tasks/my", taskHandler.GetMyTasks)
		protectedRoutes.GET("/tasks/assigned", taskHandler.GetAssignedTasks)
		protectedRoutes.PATCH("/tasks/:id/status", taskHandler.UpdateTaskStatus)
		protectedRoutes.POST("/tasks/:id/completion-photos", taskHandler.AddCompletionPhotos)

		// Bid endpoints
		protectedRoutes.POST("/bids", bidHandler.CreateBid)
		protectedRoutes.GET("/bids/my", bidHandler.GetMyBids)
		protectedRoutes.GET("/tasks/:id/bids", bidHandler.ListBids)
		protectedRoutes.POST("/bids/:bidId/accept", bidHandler.AcceptBid)
		protectedRoutes.POST("/bids/:bidId/withdraw", bidHandler.WithdrawBid)

		// Payment endpoints
		protectedRoutes.POST("/create-payment-intent", paymentHandler.CreatePaymentIntent)

		// Message endpoints
		protectedRoutes.POST("/messages", messageHandler.CreateMessage)
		protectedRoutes.GET("/tasks/:id/messages", messageHandler.GetMessages)
	}

	return ginRouter
}
