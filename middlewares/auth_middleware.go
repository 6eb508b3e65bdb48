package middlewares

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/lucsoftsl/alexafit-backoffice-sub000/config"
	"github.com/lucsoftsl/alexafit-backoffice-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		secret := []byte(os.Getenv("JWT_SECRET"))
		if len(secret) == 0 {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured: JWT_SECRET not set"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}

		// Prefer the adminId claim when present.
		if v, ok := claims["adminId"]; ok {
			if id, ok := v.(float64); ok {
				c.Set("adminID", uint(id))
				if email, _ := claims["email"].(string); email != "" {
					c.Set("email", email)
				}
				c.Next()
				return
			}
		}

		// Fallback: resolve the email claim against the DB.
		email, _ := claims["email"].(string)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "email claim missing"})
			return
		}

		var admin models.AdminUser
		if err := config.DB.Where("email = ? AND disabled = ?", email, false).First(&admin).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin not found"})
			return
		}

		c.Set("adminID", uint(admin.ID))
		c.Set("email", email)

		c.Next()
	}
}
