package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/presentation/http/dto/response"
	"github.com/rajatvats23/swizzleFENg19-sub001/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware. The raw token is
// kept in the context so handlers can forward it to the payments API.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		tokenString := parts[1]

		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("access_token", tokenString)

		c.Next()
	}
}
