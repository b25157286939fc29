package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/auth"
)

// ServiceAuthMiddleware validates service-to-service auth tokens. The CRUD
// service calls the scoring API with this token.
func ServiceAuthMiddleware(expectedToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrUnauthenticated.Error()})
			c.Abort()
			return
		}

		if token != expectedToken {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid service token"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// UserAuthMiddleware validates a signed-in poster's JWT and stores the user
// context for downstream handlers and request logs.
func UserAuthMiddleware(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrUnauthenticated.Error()})
			c.Abort()
			return
		}

		claims, err := auth.ValidateJWT(token, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("handle", claims.Handle)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// FlexibleAuthMiddleware accepts either a service token or a user JWT, so
// both the CRUD service and the web client can hit the scoring endpoints.
func FlexibleAuthMiddleware(serviceToken string, jwtSecret []byte) gin.HandlerFunc {
	userAuth := UserAuthMiddleware(jwtSecret)
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok && serviceToken != "" && token == serviceToken {
			c.Next()
			return
		}
		userAuth(c)
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}
