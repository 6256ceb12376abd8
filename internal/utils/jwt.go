package utils

import (
	"os"
	"time"

	"ecowaste_back_end/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT mints an HS256 token for a user. Login itself lives in the
// identity service; this is used by integration tooling and tests.
func GenerateJWT(user models.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
