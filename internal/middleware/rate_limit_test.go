// internal/middleware/rate_limit_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestClientLimiterBurstPerClient(t *testing.T) {
	cl := newClientLimiter(rate.Every(time.Hour), 2, time.Minute)

	assert.True(t, cl.allow("10.0.0.1"))
	assert.True(t, cl.allow("10.0.0.1"))
	assert.False(t, cl.allow("10.0.0.1"))

	// A different client gets its own bucket.
	assert.True(t, cl.allow("10.0.0.2"))
}

func TestRateLimitMiddlewareRejectsWithEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cl := newClientLimiter(rate.Every(time.Hour), 1, time.Minute)

	r := gin.New()
	r.GET("/ping", cl.middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest("GET", "/ping", nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")
}
