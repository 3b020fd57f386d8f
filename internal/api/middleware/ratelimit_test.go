package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/agroconnect/internal/api/middleware"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Limit(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Burst then reject", func(t *testing.T) {
		// Arrange
		limiter := middleware.NewRateLimiter(0.001, 2)
		handler := limiter.Limit(next)

		codes := make([]int, 0, 3)

		// Act
		for range 3 {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/marketplace", nil)
			req.RemoteAddr = "203.0.113.7:51000"

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			codes = append(codes, rr.Code)

			if rr.Code == http.StatusTooManyRequests {
				assert.Equal(t, "1", rr.Header().Get("Retry-After"))
			}
		}

		// Assert
		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})

	t.Run("Clients are limited independently", func(t *testing.T) {
		limiter := middleware.NewRateLimiter(0.001, 1)
		handler := limiter.Limit(next)

		for _, addr := range []string{"198.51.100.1:1000", "198.51.100.2:1000"} {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/marketplace", nil)
			req.RemoteAddr = addr

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code, addr)
		}
	})
}
