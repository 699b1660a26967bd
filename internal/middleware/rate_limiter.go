package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"smartcare-admin/pkg/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// visitorIdleTTL: IP yang tidak aktif selama ini dibuang dari map
const visitorIdleTTL = 3 * time.Minute

// ClientLimiter menyimpan token bucket per IP client dashboard
type ClientLimiter struct {
	mu       sync.Mutex
	clients  map[string]*client
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	lastScan time.Time
}

type client struct {
	bucket   *rate.Limiter
	lastSeen time.Time
}

func NewClientLimiter(rps float64, burst int, idleTTL time.Duration) *ClientLimiter {
	return &ClientLimiter{
		clients:  make(map[string]*client),
		limit:    rate.Limit(rps),
		burst:    burst,
		idleTTL:  idleTTL,
		lastScan: time.Now(),
	}
}

// Allow mengambil satu token dari bucket milik IP.
// Sekalian menyapu IP yang sudah idle, paling sering sekali per idleTTL.
func (l *ClientLimiter) Allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastScan) >= l.idleTTL {
		for key, c := range l.clients {
			if now.Sub(c.lastSeen) > l.idleTTL {
				delete(l.clients, key)
			}
		}
		l.lastScan = now
	}

	c, ok := l.clients[ip]
	if !ok {
		c = &client{bucket: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now
	return c.bucket.AllowN(now, 1)
}

// Len jumlah IP yang sedang dilacak
func (l *ClientLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// RateLimitMiddleware membatasi request per IP.
// Default konfigurasi: 5 request per detik dengan burst 10.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	limiter := NewClientLimiter(rps, burst, visitorIdleTTL)
	retryAfter := "1"
	if rps > 0 && rps < 1 {
		retryAfter = strconv.Itoa(int(1/rps) + 1)
	}

	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP(), time.Now()) {
			c.Header("Retry-After", retryAfter)
			utils.AbortResponse(c, http.StatusTooManyRequests, "Terlalu banyak request! Santai dulu kawan.")
			return
		}
		c.Next()
	}
}
