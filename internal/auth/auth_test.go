package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("S3cret!pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPasswordHash("S3cret!pass", hash) {
		t.Error("CheckPasswordHash rejected the correct password")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("CheckPasswordHash accepted a wrong password")
	}
}

func TestGenerateJWTClaims(t *testing.T) {
	JwtSecret = []byte("test-secret")

	tokenString, err := GenerateJWT("admin@example.com", "admin", "uid-1", "1h")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return JwtSecret, nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token did not parse back: %v", err)
	}

	if claims.Email != "admin@example.com" || claims.Role != "admin" || claims.UID != "uid-1" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestGenerateJWTExpirationFallback(t *testing.T) {
	JwtSecret = []byte("test-secret")

	// An unparsable duration falls back to 24h instead of failing.
	if _, err := GenerateJWT("admin@example.com", "admin", "uid-1", "soon"); err != nil {
		t.Fatalf("GenerateJWT with bad duration: %v", err)
	}
}
