package middlewares

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/kamarini09/ctf-app/utils"
	"golang.org/x/time/rate"
)

var limiters sync.Map

// Limiter throttles per client IP. Used on the submission endpoint to
// slow down brute-force guessing; correctness never depends on it.
// A rate of 0 returns a pass-through handler.
func Limiter(r rate.Limit, b int) gin.HandlerFunc {
	if r <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		ip := c.ClientIP()
		key := fmt.Sprintf("%s|%v|%d", ip, r, b)
		limiter, ok := limiters.Load(key)
		if !ok {
			limiter, _ = limiters.LoadOrStore(key, rate.NewLimiter(r, b))
		}
		if !limiter.(*rate.Limiter).Allow() {
			utils.Error(c, http.StatusTooManyRequests, "Too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
