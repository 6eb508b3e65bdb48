package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func GenerateJWT(adminID uint, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"adminId": adminID,
		"email":   email,
		"exp":     time.Now().Add(time.Hour * 12).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
