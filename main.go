package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/matfreire/food-orders-api/config"
	"github.com/matfreire/food-orders-api/controllers"
	"github.com/matfreire/food-orders-api/middleware"
	"github.com/matfreire/food-orders-api/models"
	"github.com/matfreire/food-orders-api/services"
)

func main() {
	log.Println("Starting Food Orders API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.Client{},
		&models.Restaurant{},
		&models.Admin{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Image storage is optional; menu images are simply absent without it
	if cfg.HasS3() {
		s3Service, err := services.InitS3Service()
		if err != nil {
			log.Fatalf("Failed to initialize S3 service: %v", err)
		}
		services.InitImageService(s3Service)
		log.Println("S3 image storage initialized")
	} else {
		log.Println("AWS_S3_BUCKET not set, menu image storage disabled")
	}

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(middleware.Identity())

	registerRoutes(router)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// registerRoutes wires every controller under /api/v1
func registerRoutes(router *gin.Engine) {
	db := config.GetDB()

	authController := controllers.NewAuthController(db)
	clientController := controllers.NewClientController(db)
	restaurantController := controllers.NewRestaurantController(db)
	menuController := controllers.NewMenuController(db)
	orderController := controllers.NewOrderController(db)
	uploadController := controllers.NewUploadController(db)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/database/status", databaseStatus)

		v1.POST("/auth/login", authController.Login)
		v1.POST("/admins", authController.CreateAdmin)

		v1.GET("/clients", clientController.List)
		v1.POST("/clients", clientController.Create)
		v1.GET("/clients/:id", clientController.Get)
		v1.PUT("/clients/:id", clientController.Update)
		v1.DELETE("/clients/:id", clientController.Delete)

		v1.GET("/restaurants", restaurantController.List)
		v1.POST("/restaurants", restaurantController.Create)
		v1.GET("/restaurants/:id", restaurantController.Get)
		v1.PUT("/restaurants/:id", restaurantController.Update)
		v1.DELETE("/restaurants/:id", restaurantController.Delete)
		v1.GET("/restaurants/:id/menu", menuController.ListByRestaurant)

		v1.POST("/menu", menuController.Create)
		v1.PUT("/menu/:id", menuController.Update)
		v1.DELETE("/menu/:id", menuController.Delete)
		v1.POST("/menu/:id/image",
			middleware.RequireRole("restaurant"),
			uploadController.UploadMenuImage)

		v1.POST("/orders", orderController.Create)
		v1.GET("/orders", orderController.List)
		v1.GET("/orders/:id", orderController.Get)
		v1.GET("/orders/restaurant/:id", orderController.GetByRestaurant)
		v1.GET("/orders/client/:id", orderController.GetByClient)
		v1.PUT("/orders/:id", orderController.UpdateStatus)
	}
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Food Orders API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	var tables []string
	if err := db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
