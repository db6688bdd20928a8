package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/svernekar/examportal/internal/model"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed session payload. The client decodes it to drive
// navigation, and the auth middleware re-verifies it on every request.
type Claims struct {
	ID         string     `json:"id"`
	Role       model.Role `json:"role"`
	Name       string     `json:"name"`
	Department string     `json:"department"`
	jwt.RegisteredClaims
}

// Generate signs an HS256 token for the given user with the configured expiry.
func Generate(user *model.User, secret string, expiry time.Duration) (string, error) {
	claims := &Claims{
		ID:         user.ID,
		Role:       user.Role,
		Name:       user.Name,
		Department: user.Department,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse verifies the signature and expiry and returns the claims.
func Parse(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
