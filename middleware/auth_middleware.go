package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/odroffice/odr-go/services"
)

// RequireRole gates a route group on the JWT role claim. Fine-grained
// capability checks happen again inside the services via services.Can.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		if claims.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: requires '" + role + "' role"})
			return
		}
		c.Next()
	}
}

// ActorFromContext builds the service-layer actor from the verified claims.
func ActorFromContext(c *gin.Context) (services.Actor, bool) {
	claims, ok := c.MustGet("claims").(*Claims)
	if !ok {
		return services.Actor{}, false
	}
	return services.Actor{ID: claims.Subject, Role: claims.Role}, true
}
