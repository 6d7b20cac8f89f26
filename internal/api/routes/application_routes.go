package routes

import (
	"job-board-api/internal/api/handlers"
	"job-board-api/internal/api/middleware"
	"job-board-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers all routes related to job applications.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup,
	applicationHandler handlers.ApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	employerOnly := middleware.RequireRole(models.RoleEmployer)
	jobSeekerOnly := middleware.RequireRole(models.RoleJobSeeker)

	applications := rg.Group("/applications")
	applications.Use(authMiddleware)
	{
		applications.POST("", jobSeekerOnly, applicationHandler.Apply)
		applications.GET("/me", jobSeekerOnly, applicationHandler.ListMyApplications)
		applications.GET("/job/:jobId", employerOnly, applicationHandler.ListJobApplications)
		applications.GET("/:id", applicationHandler.GetApplicationByID)
		applications.PUT("/:id/status", employerOnly, applicationHandler.UpdateApplicationStatus)
	}
}
