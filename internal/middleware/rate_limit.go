// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/pricewise/pricewise-backend/internal/utils"
)

// clientLimiter hands out one token bucket per client IP. Idle clients are
// evicted after ttl so the map does not grow with every crawler that hits
// the API once.
type clientLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	ttl     time.Duration
}

type client struct {
	bucket   *rate.Limiter
	lastSeen time.Time
}

func newClientLimiter(limit rate.Limit, burst int, ttl time.Duration) *clientLimiter {
	cl := &clientLimiter{
		clients: make(map[string]*client),
		limit:   limit,
		burst:   burst,
		ttl:     ttl,
	}
	go cl.evictIdle()
	return cl
}

func (cl *clientLimiter) evictIdle() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cl.mu.Lock()
		for ip, c := range cl.clients {
			if time.Since(c.lastSeen) > cl.ttl {
				delete(cl.clients, ip)
			}
		}
		cl.mu.Unlock()
	}
}

func (cl *clientLimiter) allow(ip string) bool {
	cl.mu.Lock()
	c, ok := cl.clients[ip]
	if !ok {
		c = &client{bucket: rate.NewLimiter(cl.limit, cl.burst)}
		cl.clients[ip] = c
	}
	c.lastSeen = time.Now()
	bucket := c.bucket
	cl.mu.Unlock()

	return bucket.Allow()
}

func (cl *clientLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cl.allow(c.ClientIP()) {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "RATE_LIMITED",
				"Too many requests, slow down", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Tiered limits for this API's surface: catalog browsing is a cheap single
// read, a comparison fans out one store read per listing id, and auth and
// upload endpoints get the tightest budgets.
var (
	browseLimiter  = newClientLimiter(rate.Every(time.Second/20), 20, 3*time.Minute)
	compareLimiter = newClientLimiter(rate.Every(time.Second), 5, 3*time.Minute)
	authLimiter    = newClientLimiter(rate.Every(12*time.Second), 5, 10*time.Minute)
	uploadLimiter  = newClientLimiter(rate.Every(6*time.Second), 10, 10*time.Minute)
)

func GeneralRateLimit() gin.HandlerFunc { return browseLimiter.middleware() }

func CompareRateLimit() gin.HandlerFunc { return compareLimiter.middleware() }

func AuthRateLimit() gin.HandlerFunc { return authLimiter.middleware() }

func UploadRateLimit() gin.HandlerFunc { return uploadLimiter.middleware() }
