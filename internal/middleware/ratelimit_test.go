package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// fakeCounter counts increments in memory; optionally fails.
type fakeCounter struct {
	n   int64
	err error
}

func (f *fakeCounter) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.n++
	return f.n, nil
}

func newLimitedRouter(counter Counter, limit int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", RateLimit(counter, limit, time.Minute, zap.NewNop()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRateLimit(t *testing.T) {
	t.Run("allows up to the limit then rejects", func(t *testing.T) {
		router := newLimitedRouter(&fakeCounter{}, 3)
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("POST", "/login", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: status = %d, want 200", i+1, w.Code)
			}
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("POST", "/login", nil))
		if w.Code != http.StatusTooManyRequests {
			t.Errorf("status = %d, want 429", w.Code)
		}
	})

	t.Run("fails open when the backend is down", func(t *testing.T) {
		router := newLimitedRouter(&fakeCounter{err: errors.New("connection refused")}, 1)
		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("POST", "/login", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (fail open)", w.Code)
			}
		}
	})
}
