package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shortsreel/backend/internal/auth"
)

func newGateRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", JWT(jwtService), func(c *gin.Context) {
		user := c.GetString(ContextAdminUser)
		c.JSON(http.StatusOK, gin.H{"user": user})
	})
	return router
}

func TestJWTGate(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	router := newGateRouter(jwtService)

	request := func(header string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("valid token", func(t *testing.T) {
		token, err := jwtService.Issue("admin")
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		w := request("Bearer " + token)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"user":"admin"`) {
			t.Errorf("identity not attached: %s", w.Body.String())
		}
	})

	t.Run("missing header", func(t *testing.T) {
		if w := request(""); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		for _, header := range []string{"Bearer", "Basic abc", "Bearer "} {
			if w := request(header); w.Code != http.StatusUnauthorized {
				t.Errorf("header %q: status = %d, want 401", header, w.Code)
			}
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expired := auth.NewJWTService("test-secret", -time.Minute)
		token, err := expired.Issue("admin")
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		w := request("Bearer " + token)
		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
		if !strings.Contains(w.Body.String(), "expired") {
			t.Errorf("body = %s, want expired wording", w.Body.String())
		}
	})

	t.Run("token signed with other secret", func(t *testing.T) {
		other := auth.NewJWTService("other-secret", time.Hour)
		token, err := other.Issue("admin")
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		if w := request("Bearer " + token); w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
	})
}
