package middleware

import (
	"errors"
	"net/http"
	"strings"

	"job-board-api/internal/auth"
	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	authorizationHeader = "Authorization"
	claimsCtx           = "authClaims" // Key to store token claims in context
)

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.Response{Success: false, Message: message})
}

// JWTAuthMiddleware creates a Gin middleware for JWT authentication.
// Revoked tokens are rejected through denylist.
func JWTAuthMiddleware(tokens *auth.TokenManager, denylist storage.TokenDenylist, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		headerParts := strings.Fields(authHeader)
		if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "bearer") {
			abort(c, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		claims, err := tokens.Parse(headerParts[1])
		if err != nil {
			log.Debug("auth middleware: token rejected", zap.Error(err))
			if errors.Is(err, auth.ErrTokenExpired) {
				abort(c, http.StatusUnauthorized, "Token expired.")
			} else {
				abort(c, http.StatusUnauthorized, "Invalid token.")
			}
			return
		}

		revoked, err := denylist.IsRevoked(c.Request.Context(), claims.RegisteredClaims.ID)
		if err != nil {
			// fail closed
			log.Error("auth middleware: denylist lookup failed", zap.Error(err))
			abort(c, http.StatusServiceUnavailable, "Authentication temporarily unavailable.")
			return
		}
		if revoked {
			abort(c, http.StatusUnauthorized, "Token has been revoked.")
			return
		}

		c.Set(claimsCtx, claims)
		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role is not role.
// It must run after JWTAuthMiddleware.
func RequireRole(role models.Role) gin.HandlerFunc {
	message := "Access denied. Employer role required."
	if role == models.RoleJobSeeker {
		message = "Access denied. Job seeker role required."
	}
	return func(c *gin.Context) {
		actor, err := GetActorFromContext(c)
		if err != nil {
			abort(c, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}
		if actor.Role != role {
			abort(c, http.StatusForbidden, message)
			return
		}
		c.Next()
	}
}

// GetClaimsFromContext returns the verified token claims of the request.
func GetClaimsFromContext(c *gin.Context) (*auth.Claims, error) {
	claimsAny, exists := c.Get(claimsCtx)
	if !exists {
		return nil, errors.New("auth claims not found in context")
	}
	claims, ok := claimsAny.(*auth.Claims)
	if !ok {
		return nil, errors.New("auth claims in context are of invalid type")
	}
	return claims, nil
}

// GetActorFromContext returns the authenticated caller of the request.
func GetActorFromContext(c *gin.Context) (models.Actor, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return models.Actor{}, err
	}
	return claims.Actor(), nil
}
