package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ---------------------------------------------
// STAFF LOGIN (admin dashboard)
// ---------------------------------------------
//
// Customer identity never touches this service (the Google session
// lives on the backend); the only credential here is the staff account
// for the admin dashboard, configured through STAFF_USER and
// STAFF_PASSWORD_HASH (bcrypt).

type staffLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/staff-login
func StaffLoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req staffLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if req.Username != os.Getenv("STAFF_USER") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		hash := os.Getenv("STAFF_PASSWORD_HASH")
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := issueStaffToken(req.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":      token,
			"expires_in": int((24 * time.Hour).Seconds()),
		})
	}
}

func issueStaffToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": username,
		"role":    "staff",
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
