package utils

import (
	"time"

	common_models "prestova-one/internal/common/models"

	"github.com/golang-jwt/jwt/v5"
)

const UserClaimsKey = "user_claims"

var jwtSecret = []byte("secret")

// SetSecret allows injecting the secret from config
func SetSecret(secret string) {
	jwtSecret = []byte(secret)
}

type UserClaims struct {
	UserID       string             `json:"user_id"`
	Name         string             `json:"name"`
	Role         common_models.Role `json:"role"`
	DepartmentID string             `json:"department_id"`
	jwt.RegisteredClaims
}

// Actor converts the claims into the actor shape services work with.
func (c *UserClaims) Actor() common_models.Actor {
	return common_models.Actor{
		ID:           c.UserID,
		Name:         c.Name,
		Role:         c.Role,
		DepartmentID: c.DepartmentID,
	}
}

func GenerateToken(userID, name string, role common_models.Role, departmentID string) (string, error) {
	claims := UserClaims{
		UserID:       userID,
		Name:         name,
		Role:         role,
		DepartmentID: departmentID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidateToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenSignatureInvalid
}
