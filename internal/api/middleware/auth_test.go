package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"machinery-rental-admin-api/internal/auth"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Authenticate(), Authorize("admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.GetString("user_uid")})
	})
	return router
}

func doRequest(t *testing.T, router *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticateMissingHeader(t *testing.T) {
	auth.JwtSecret = []byte("test-secret")
	router := newTestRouter()

	w := doRequest(t, router, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	auth.JwtSecret = []byte("test-secret")
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "not-a-bearer-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	auth.JwtSecret = []byte("test-secret")
	router := newTestRouter()

	w := doRequest(t, router, "garbage.token.value")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuthorizeRejectsWrongRole(t *testing.T) {
	auth.JwtSecret = []byte("test-secret")
	router := newTestRouter()

	token, err := auth.GenerateJWT("user@example.com", "user", "u1", "1h")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	w := doRequest(t, router, token)
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestAuthorizeAllowsAdmin(t *testing.T) {
	auth.JwtSecret = []byte("test-secret")
	router := newTestRouter()

	token, err := auth.GenerateJWT("admin@example.com", "admin", "a1", "1h")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	w := doRequest(t, router, token)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestAuthenticateRejectsWrongSecret(t *testing.T) {
	auth.JwtSecret = []byte("test-secret")
	token, err := auth.GenerateJWT("admin@example.com", "admin", "a1", "1h")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	auth.JwtSecret = []byte("rotated-secret")
	router := newTestRouter()

	w := doRequest(t, router, token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
