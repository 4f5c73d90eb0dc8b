package middleware

import (
	"net"
	"strings"
	"sync"
	"time"

	"github.com/BubsLB/airdropbreakdown/controller/respond"
	"github.com/BubsLB/airdropbreakdown/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter per-client token bucket limiter
type RateLimiter struct {
	proxyCount int
	rateLimit  float64
	burstLimit int

	mutex    sync.Mutex
	visitors map[string]*visitor
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter create limiter. Returns nil when rateLimit is not positive; a nil limiter allows everything.
func NewRateLimiter(rateLimit float64, burstLimit int, proxyCount int) *RateLimiter {
	if rateLimit <= 0 {
		return nil
	}
	if burstLimit <= 0 {
		burstLimit = 1
	}
	return &RateLimiter{
		proxyCount: proxyCount,
		rateLimit:  rateLimit,
		burstLimit: burstLimit,
		visitors:   map[string]*visitor{},
	}
}

// Middleware gin middleware rejecting clients over their limit with 429
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.Request.RemoteAddr, c.GetHeader("X-Forwarded-For")) {
			metrics.RecordRateLimited()
			respond.TooManyRequests(c, "Too many requests, please slow down.")
			return
		}
		c.Next()
	}
}

// Allow take one token for the client identified by remoteAddr / X-Forwarded-For
func (rl *RateLimiter) Allow(remoteAddr, forwardedFor string) bool {
	if rl == nil {
		return true
	}
	return rl.getVisitor(clientIP(remoteAddr, forwardedFor, rl.proxyCount)).limiter.Allow()
}

func clientIP(remoteAddr, forwardedFor string, proxyCount int) string {
	if proxyCount > 0 && forwardedFor != "" {
		forwardIps := strings.Split(forwardedFor, ",")
		forwardIdx := len(forwardIps) - proxyCount
		if forwardIdx >= 0 {
			if ip := strings.TrimSpace(forwardIps[forwardIdx]); ip != "" {
				return ip
			}
		}
	}
	ip, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return ip
}

func (rl *RateLimiter) getVisitor(ip string) *visitor {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	v := rl.visitors[ip]
	if v == nil {
		v = &visitor{
			limiter: rate.NewLimiter(rate.Limit(rl.rateLimit), rl.burstLimit),
		}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v
}

// Cleanup drop visitors idle for longer than maxIdle
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) {
	if rl == nil {
		return
	}
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	for ip, v := range rl.visitors {
		if time.Since(v.lastSeen) > maxIdle {
			delete(rl.visitors, ip)
		}
	}
}

// StartCleanup run Cleanup every minute until stop is closed
func (rl *RateLimiter) StartCleanup(stop <-chan struct{}) {
	if rl == nil {
		return
	}
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.Cleanup(3 * time.Minute)
			case <-stop:
				return
			}
		}
	}()
}
