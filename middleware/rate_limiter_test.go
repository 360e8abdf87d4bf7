package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(t *testing.T, perMin int, trusted []string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, r.SetTrustedProxies(trusted))
	r.Use(RateLimitMiddleware(perMin, nil))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func get(r *gin.Engine, remote, forwarded string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remote
	if forwarded != "" {
		req.Header.Set("X-Forwarded-For", forwarded)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitMiddleware(t *testing.T) {
	r := newLimitedRouter(t, 2, nil)

	assert.Equal(t, http.StatusOK, get(r, "1.1.1.1:1000", ""))
	assert.Equal(t, http.StatusOK, get(r, "1.1.1.1:1001", ""))
	assert.Equal(t, http.StatusTooManyRequests, get(r, "1.1.1.1:1002", ""))
	assert.Equal(t, http.StatusOK, get(r, "2.2.2.2:1000", ""), "limits are per client")
}

func TestRateLimitMiddleware_ForwardedHeaders(t *testing.T) {
	t.Run("untrusted sender cannot rotate its address", func(t *testing.T) {
		r := newLimitedRouter(t, 2, nil)
		codes := []int{
			get(r, "1.1.1.1:1000", "7.7.7.1"),
			get(r, "1.1.1.1:1000", "7.7.7.2"),
			get(r, "1.1.1.1:1000", "7.7.7.3"),
		}
		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})

	t.Run("trusted proxy forwards the client", func(t *testing.T) {
		r := newLimitedRouter(t, 1, []string{"10.0.0.1"})
		assert.Equal(t, http.StatusOK, get(r, "10.0.0.1:443", "3.3.3.3"))
		assert.Equal(t, http.StatusOK, get(r, "10.0.0.1:443", "4.4.4.4"), "each forwarded client has its own limit")
		assert.Equal(t, http.StatusTooManyRequests, get(r, "10.0.0.1:443", "3.3.3.3"))
	})
}

func TestRateLimiterStore_EvictsIdleClients(t *testing.T) {
	clock := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
	store := newRateLimiterStore(1)
	store.now = func() time.Time { return clock }

	for _, ip := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		store.getLimiter(ip)
	}
	require.Equal(t, 3, store.size())

	// 3.3.3.3 stays active; the others go idle.
	clock = clock.Add(limiterIdleTTL / 2)
	store.getLimiter("3.3.3.3")
	clock = clock.Add(limiterIdleTTL/2 + time.Second)
	store.getLimiter("3.3.3.3")
	assert.Equal(t, 1, store.size())

	clock = clock.Add(limiterIdleTTL + time.Second)
	store.getLimiter("4.4.4.4")
	assert.Equal(t, 1, store.size(), "only the new client remains")
}
