package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/odroffice/odr-go/services"
)

// IntakeAllowed blocks new-request endpoints outside the configured intake
// window. Consulted at intake time only; existing requests are unaffected.
func IntakeAllowed(policy *services.PolicyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !policy.IsIntakeAllowed(time.Now()) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Requests are not allowed at this time. Please check the available hours and days.",
			})
			return
		}
		c.Next()
	}
}
