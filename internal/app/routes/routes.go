package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hrmslite/internal/app/controllers"
	"github.com/yigit/hrmslite/internal/app/models/dto"
)

// SetupRouter configures all application routes. Paths sit at the root
// level because the dashboard frontend calls them without a prefix.
func SetupRouter(
	router *gin.Engine,
	employeeController *controllers.EmployeeController,
	attendanceController *controllers.AttendanceController,
	statsController *controllers.StatsController,
	seedController *controllers.SeedController,
) {
	// Liveness message for the dashboard's connectivity check
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.LivenessResponse{Message: "HRMS Lite is running"})
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/seed", seedController.Seed)
	router.GET("/stats", statsController.GetStats)

	employees := router.Group("/employees")
	{
		employees.GET("", employeeController.ListEmployees)
		employees.POST("", employeeController.CreateEmployee)
		employees.PUT("/:id", employeeController.UpdateEmployee)
		employees.DELETE("/:id", employeeController.DeleteEmployee)
	}

	attendance := router.Group("/attendance")
	{
		attendance.POST("", attendanceController.MarkAttendance)
		attendance.GET("/:id", attendanceController.GetHistory)
	}
}
