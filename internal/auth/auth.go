package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// JWTClaims defines the payload for the JWT. UID is the stable account id
// used as the cross-collection user key.
type JWTClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	UID   string `json:"uid"`
	jwt.RegisteredClaims
}

// JwtSecret is set from config at startup.
var JwtSecret []byte

// Hashing
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateJWT issues a token for the given account. expiration falls back to
// 24h when the configured duration string does not parse.
func GenerateJWT(email, role, uid, expiration string) (string, error) {
	ttl, err := time.ParseDuration(expiration)
	if err != nil || ttl <= 0 {
		ttl = 24 * time.Hour
	}
	claims := &JWTClaims{
		Email: email,
		Role:  role,
		UID:   uid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JwtSecret)
}
