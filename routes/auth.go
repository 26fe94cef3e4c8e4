package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ujjwalbarange/mesa-pos/auth"
)

// SetupAuthRoutes registers all “/auth/*” endpoints. Customer Google
// auth lives entirely on the backend; the only login here is staff.
func SetupAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/staff-login", auth.StaffLoginHandler())
	}
}
