package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/orange/internal/container"
	"github.com/joshua-takyi/orange/internal/handlers"
	"github.com/joshua-takyi/orange/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     container.Config.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(gin.Recovery())

	authRequired := middleware.AuthMiddleware(container.AuthService, container.Logger)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{"message": "Welcome to Orange - Creator Marketplace API"})
		})
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "healthy",
				"service": "orange-marketplace",
			})
		})

		// Marketplace browsing is public
		v1.GET("/creators", handlers.ListCreators(container.ProfileService))
		v1.GET("/creators/:id", handlers.GetCreatorByID(container.ProfileService))
		v1.GET("/businesses/:id", handlers.GetBusinessByID(container.ProfileService))

		v1.POST("/seed", handlers.Seed(container.SeedService))
	}

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/signup", handlers.Signup(container.AuthService))
		authRoutes.POST("/login", handlers.Login(container.AuthService))
		authRoutes.GET("/me", authRequired, handlers.Me())
		authRoutes.POST("/logout", authRequired, handlers.Logout())
	}

	protected := v1.Group("/")
	protected.Use(authRequired)

	protected.POST("/upload", handlers.Upload(container.UploadService))

	creatorRoutes := protected.Group("/creator")
	{
		creatorRoutes.POST("/profile", handlers.UpsertCreatorProfile(container.ProfileService))
		creatorRoutes.GET("/profile", handlers.GetMyCreatorProfile(container.ProfileService))
		creatorRoutes.GET("/requests", handlers.ListReceivedRequests(container.RequestService))
	}

	businessRoutes := protected.Group("/business")
	{
		businessRoutes.POST("/profile", handlers.UpsertBusinessProfile(container.ProfileService))
		businessRoutes.GET("/profile", handlers.GetMyBusinessProfile(container.ProfileService))
	}

	requestRoutes := protected.Group("/requests")
	{
		requestRoutes.POST("/", handlers.CreateRequest(container.RequestService))
		requestRoutes.GET("/sent", handlers.ListSentRequests(container.RequestService))
		requestRoutes.GET("/:id", handlers.GetRequest(container.RequestService))
		requestRoutes.PATCH("/:id/status", handlers.UpdateRequestStatus(container.RequestService))
	}

	messageRoutes := protected.Group("/messages")
	{
		messageRoutes.GET("/:request_id", handlers.ListMessages(container.MessageService))
		messageRoutes.POST("/:request_id", handlers.SendMessage(container.MessageService))
	}

	return r
}
