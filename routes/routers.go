package routes

import (
	"github.com/NabeelAltarteer/GetEmpStatusBE/controllers"
	middlewares "github.com/NabeelAltarteer/GetEmpStatusBE/middleware"
	"github.com/NabeelAltarteer/GetEmpStatusBE/services"
	"github.com/NabeelAltarteer/GetEmpStatusBE/services/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, statusService *services.EmployeeStatusService) {
	log := logger.NewDefaultLogger(logger.InfoLevel)

	searchService := services.NewSearchService(db)
	authService := services.NewAuthService(log)

	employeeController := controllers.NewEmployeeController(statusService, searchService)
	cacheController := controllers.NewCacheController(statusService)
	authController := controllers.NewAuthController(authService)

	v1 := router.Group("/api/v1")
	v1.POST("/auth/login", authController.Login)

	v1.GET("/employees/:nationalKey/status", employeeController.GetEmployeeStatus)
	v1.GET("/employees/search", employeeController.SearchEmployees)

	v1.DELETE("/cache/employees", middlewares.AuthMiddleware(), cacheController.InvalidateAll)
	v1.DELETE("/cache/employees/:nationalKey", middlewares.AuthMiddleware(), cacheController.InvalidateEmployee)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
