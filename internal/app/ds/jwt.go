package ds

import (
	"github.com/golang-jwt/jwt"

	"portal/internal/app/role"
)

type JWTClaims struct {
	jwt.StandardClaims
	UserID string    `json:"user_id"`
	Email  string    `json:"email"`
	Role   role.Role `json:"role"`
}
