package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"investment-ideas-api/config"
	"investment-ideas-api/controllers"
	"investment-ideas-api/middleware"
	"investment-ideas-api/monitor"
	"investment-ideas-api/routes"
	"investment-ideas-api/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logFile, _ := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			log.Printf("Warning: Failed to close database: %v", err)
		}
	}()

	// Set Gin mode
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Add recovery middleware
	router.Use(gin.Recovery())

	// Add security headers middleware
	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	})

	// Add CORS middleware
	router.Use(middleware.CORSMiddleware())

	// Add request-id + request logging middleware
	router.Use(middleware.RequestID())

	// Wire the record store service into the HTTP layer
	ideaService := services.NewIdeaService(db)
	ideaController := controllers.NewIdeaController(ideaService)

	// Server-rendered pages
	controllers.RegisterIdeasPage(router)
	monitor.RegisterMonitorPage(router)
	monitor.RegisterLogsRoute(router)

	// Setup API routes
	routes.SetupRoutes(router, ideaController)

	// Start server
	log.Printf("🚀 Server starting on port %s", cfg.ServerPort)
	log.Printf("💡 Ideas page available at http://localhost:%s/", cfg.ServerPort)

	if cfg.GinMode == "release" {
		log.Printf("🏭 Running in production mode")
	} else {
		log.Printf("🔧 Running in development mode")
	}

	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("❌ Failed to start server:", err)
	}
}
