package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL    = 15 * time.Minute
	limiterSweepEvery = time.Minute
)

type keyedLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter holds one token bucket per key (client IP or user).
// Buckets idle for limiterIdleTTL are dropped on the next sweep.
type KeyedRateLimiter struct {
	mu        sync.Mutex
	keys      map[string]*keyedLimiter
	r         rate.Limit
	b         int
	lastSweep time.Time
	now       func() time.Time
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		keys:      make(map[string]*keyedLimiter),
		r:         r,
		b:         b,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (k *KeyedRateLimiter) Limiter(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if now.Sub(k.lastSweep) >= limiterSweepEvery {
		for key, l := range k.keys {
			if now.Sub(l.lastSeen) > limiterIdleTTL {
				delete(k.keys, key)
			}
		}
		k.lastSweep = now
	}

	l, ok := k.keys[key]
	if !ok {
		l = &keyedLimiter{limiter: rate.NewLimiter(k.r, k.b)}
		k.keys[key] = l
	}
	l.lastSeen = now
	return l.limiter
}

// Len reports how many keys are tracked.
func (k *KeyedRateLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.keys)
}

func (k *KeyedRateLimiter) allow(c *gin.Context, key string) bool {
	if k.Limiter(key).Allow() {
		return true
	}
	retry := 1
	if k.r > 0 {
		retry = int(math.Ceil(1 / float64(k.r)))
	}
	c.Header("Retry-After", strconv.Itoa(retry))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"error": "Muitas requisições, tente novamente em instantes",
		"code":  apperror.CodeTooManyRequests,
	})
	return false
}

func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if limiter.allow(c, c.ClientIP()) {
			c.Next()
		}
	}
}

// RateLimitByUser keys on the authenticated auth id; r is requests per
// second, b the burst. Anonymous requests pass through.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.Next()
			return
		}
		if limiter.allow(c, userID) {
			c.Next()
		}
	}
}
