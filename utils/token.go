package authUtils

import (
	"fmt"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// GenerateToken signs a session token for a citizen. Tokens expire in 7 days.
func GenerateToken(citizenID uint, email string) (string, error) {
	secretStr := os.Getenv("JWT_SECRET")
	if secretStr == "" {
		return "", fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	jwtSecret := []byte(secretStr)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": citizenID,
		"email":  email,
		"role":   "citizen",
		"exp":    time.Now().Add(7 * 24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
