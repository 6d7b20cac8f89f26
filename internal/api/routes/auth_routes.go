package routes

import (
	"job-board-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account routes. Register and login are
// throttled by limiter; the rest require a token.
func RegisterAuthRoutes(
	rg *gin.RouterGroup,
	authHandler handlers.AuthHandlerInterface,
	authMiddleware gin.HandlerFunc,
	limiter gin.HandlerFunc,
) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", limiter, authHandler.Register)
		authGroup.POST("/login", limiter, authHandler.Login)
		authGroup.GET("/me", authMiddleware, authHandler.CurrentUser)
		authGroup.POST("/logout", authMiddleware, authHandler.Logout)
	}
}
