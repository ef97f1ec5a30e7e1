package user

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JwtCustomClaims carries the account id and username so revision
// attribution does not need a database lookup per save.
type JwtCustomClaims struct {
	Id       uint   `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

var GenerateJWT = func(id uint, username string) (string, error) {
	claims := JwtCustomClaims{
		Id:       id,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
