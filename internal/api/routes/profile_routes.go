package routes

import (
	"job-board-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterProfileRoutes registers the caller's profile routes.
func RegisterProfileRoutes(
	rg *gin.RouterGroup,
	profileHandler handlers.ProfileHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	profile := rg.Group("/profile")
	profile.Use(authMiddleware)
	{
		profile.GET("", profileHandler.GetProfile)
		profile.PUT("", profileHandler.UpdateProfile)
	}
}
