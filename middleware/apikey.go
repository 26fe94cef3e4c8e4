package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// ValidateKDSKey authenticates wall-mounted kitchen displays, which
// have no login flow and ship with a static key instead.
func ValidateKDSKey(c *gin.Context) {
	apiKey := c.GetHeader("X-KDS-KEY")
	if apiKey != os.Getenv("KDS_API_KEY") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing KDS key"})
		c.Abort()
		return
	}
	c.Next()
}
