package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/shev-k/mikes-cut/config"
	"github.com/shev-k/mikes-cut/database"
	"github.com/shev-k/mikes-cut/jobs"
	"github.com/shev-k/mikes-cut/middleware"
	"github.com/shev-k/mikes-cut/routes"
	ws "github.com/shev-k/mikes-cut/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	config.Load()

	// Initialize database (runs migrations)
	if err := database.Initialize(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Seed demo data when requested
	if os.Getenv("SEED_DB") == "true" {
		if err := seedDemoData(); err != nil {
			log.Fatal("Failed to seed database:", err)
		}
	}

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Disable automatic redirects for trailing slashes
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	// Security headers (must be first)
	router.Use(middleware.SecurityHeadersMiddleware())

	// Input validation
	router.Use(middleware.InputValidationMiddleware())

	// Rate limiting
	router.Use(middleware.RateLimitMiddleware())

	// Secure CORS
	router.Use(middleware.CORSMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Mike's Cut server is running",
			"time":    time.Now().UTC(),
		})
	})

	// Live dashboard feed: new bookings are pushed to connected staff
	dashboardHub := ws.NewHub()
	go dashboardHub.Run()
	routes.InitDashboardHub(dashboardHub)

	dashboardHandler := ws.NewDashboardHandler(dashboardHub)
	router.GET("/api/v1/ws/dashboard", dashboardHandler.HandleDashboard)

	// API routes
	api := router.Group("/api/v1")
	{
		// Auth routes (no authentication required) - with strict rate limiting
		authRoutes := api.Group("/auth")
		authRoutes.Use(middleware.AuthRateLimitMiddleware())
		routes.RegisterAuthRoutes(authRoutes)

		// Public booking flow: barbers, services, availability, booking form
		routes.RegisterBookingRoutes(api)

		// Public shop: catalog, cart, checkout
		routes.RegisterShopRoutes(api)
		routes.RegisterCartRoutes(api)
		routes.RegisterOrderRoutes(api)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/auth/me", routes.GetCurrentUser)

			// Staff routes (admin or barber)
			staff := protected.Group("/staff")
			staff.Use(middleware.StaffMiddleware())
			{
				routes.RegisterStaffBookingRoutes(staff)
				routes.RegisterStaffOrderRoutes(staff)
				routes.RegisterStaffStatsRoutes(staff)
			}

			// Admin routes
			admin := protected.Group("/admin")
			admin.Use(middleware.AdminMiddleware())
			{
				routes.RegisterAdminRoutes(admin)
				routes.RegisterAdminShopRoutes(admin)
				routes.RegisterMediaRoutes(admin)
			}
		}
	}

	// Background job: mark past confirmed bookings as completed
	completionJob := jobs.NewCompletionJob()
	completionJob.Start()

	// Graceful shutdown for the job on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("🛑 Shutting down...")
		completionJob.Stop()
		os.Exit(0)
	}()

	port := config.AppConfig.Server.Port
	log.Printf("🚀 Mike's Cut server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
