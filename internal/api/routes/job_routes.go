package routes

import (
	"job-board-api/internal/api/handlers"
	"job-board-api/internal/api/middleware"
	"job-board-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to jobs.
// Reads are public; writes require an employer token.
func RegisterJobRoutes(
	rg *gin.RouterGroup,
	jobHandler handlers.JobHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	employerOnly := middleware.RequireRole(models.RoleEmployer)

	jobs := rg.Group("/jobs")
	{
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/employer/me", authMiddleware, employerOnly, jobHandler.ListEmployerJobs)
		jobs.GET("/:id", jobHandler.GetJobByID)
		jobs.POST("", authMiddleware, employerOnly, jobHandler.CreateJob)
		jobs.PUT("/:id", authMiddleware, employerOnly, jobHandler.UpdateJob)
		jobs.DELETE("/:id", authMiddleware, employerOnly, jobHandler.DeleteJob)
	}
}
