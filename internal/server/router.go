package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/iamtheretronerd/levelup/internal/handlers"
)

// RouterConfig collects the handlers the router wires up.
type RouterConfig struct {
	AuthHandler    *handlers.AuthHandler
	JourneyHandler *handlers.JourneyHandler
	LevelHandler   *handlers.LevelHandler
}

// NewRouter builds the gin engine with CORS and the API route table.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Same origins the original frontend dev servers use.
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := router.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", cfg.AuthHandler.Signup)
			authGroup.POST("/login", cfg.AuthHandler.Login)
			authGroup.PUT("/update", cfg.AuthHandler.Update)
			authGroup.DELETE("/delete", cfg.AuthHandler.Delete)
		}

		journeyGroup := api.Group("/journeys")
		{
			journeyGroup.POST("", cfg.JourneyHandler.Create)
			journeyGroup.GET("", cfg.JourneyHandler.List)
			journeyGroup.GET("/:id", cfg.JourneyHandler.Get)
			journeyGroup.PUT("/:id", cfg.JourneyHandler.Update)
			journeyGroup.DELETE("/:id", cfg.JourneyHandler.Delete)
		}

		levelGroup := api.Group("/levels")
		{
			levelGroup.GET("/current/:journeyId", cfg.LevelHandler.GetCurrent)
			levelGroup.POST("/generate", cfg.LevelHandler.Generate)
			levelGroup.POST("/complete/:levelId", cfg.LevelHandler.Complete)
			levelGroup.GET("/history/:journeyId", cfg.LevelHandler.GetHistory)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": "The requested API endpoint does not exist",
		})
	})

	return router
}
