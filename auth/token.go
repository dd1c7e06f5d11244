package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"stagelink/middleware"
	"stagelink/models"
)

const tokenTTL = 24 * time.Hour

// generateToken mints a signed HS256 token carrying the user's identity.
func generateToken(user models.User, secret []byte) (string, error) {
	now := time.Now()
	claims := &middleware.Claims{
		UserID: user.UserID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
