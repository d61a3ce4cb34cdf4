package main

import (
	"log"
	"net/http"
	"os"

	"github.com/NabeelAltarteer/GetEmpStatusBE/config"
	_ "github.com/NabeelAltarteer/GetEmpStatusBE/docs"
	"github.com/NabeelAltarteer/GetEmpStatusBE/jobs"
	"github.com/NabeelAltarteer/GetEmpStatusBE/models"
	"github.com/NabeelAltarteer/GetEmpStatusBE/routes"
	"github.com/NabeelAltarteer/GetEmpStatusBE/services"
	"github.com/NabeelAltarteer/GetEmpStatusBE/services/logger"
	"github.com/NabeelAltarteer/GetEmpStatusBE/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(&models.Employee{}, &models.Salary{}); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

// @title           GetEmpStatusBE API
// @version         1.0
// @description     Employee compensation status service
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file, using process environment: %v", err)
	}

	router, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	validator.RegisterBindings()

	migrateTables()

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)
	cache := services.NewCacheService(config.RedisClient, appLogger)
	store := services.NewGormEmployeeStore(config.DB)
	statusService := services.NewEmployeeStatusService(services.EmployeeStatusServiceOptions{
		Store:  store,
		Cache:  cache,
		Logger: appLogger,
	})

	jobs.SetCacheInvalidator(statusService)
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router, config.DB, statusService)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
