package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushire/placementhub/internal/app/models"
	pkgauth "github.com/campushire/placementhub/internal/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, *pkgauth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    time.Hour,
		TokenIssuer: "placementhub-test",
	})

	router := gin.New()
	authMw := NewAuthMiddleware(jwtService)

	router.GET("/protected", authMw.JWTAuth(), func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "actor missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": actor.Role})
	})
	router.GET("/admin-only", authMw.JWTAuth(), authMw.RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router, jwtService
}

func request(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	w := request(router, "/protected", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	router, jwtService := newTestRouter(t)

	token, _, err := jwtService.GenerateToken(42, models.RoleStudent)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	w := request(router, "/protected", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200, body=%s", w.Code, w.Body.String())
	}
}

func TestJWTAuthGarbageToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := request(router, "/protected", "Bearer not-a-token")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	expiredService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    -time.Minute,
		TokenIssuer: "placementhub-test",
	})
	token, _, err := expiredService.GenerateToken(42, models.RoleStudent)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	router, _ := newTestRouter(t)
	w := request(router, "/protected", "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRoleRequired(t *testing.T) {
	router, jwtService := newTestRouter(t)

	studentToken, _, err := jwtService.GenerateToken(42, models.RoleStudent)
	if err != nil {
		t.Fatal(err)
	}
	adminToken, _, err := jwtService.GenerateToken(1, models.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}

	if w := request(router, "/admin-only", "Bearer "+studentToken); w.Code != http.StatusForbidden {
		t.Errorf("student status = %d, want 403", w.Code)
	}
	if w := request(router, "/admin-only", "Bearer "+adminToken); w.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200", w.Code)
	}
}
