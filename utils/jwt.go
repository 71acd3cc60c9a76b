package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles carried in the token. Each surface is gated on exactly one of them.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Claims struct {
	SubjectID uint   `json:"sub_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT signs an HS256 token identifying either a user or an admin.
func GenerateJWT(subjectID uint, role string) (string, error) {
	claims := &Claims{
		SubjectID: subjectID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
