package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vibe_shop_back_end/internal/cache"
)

const (
	APIMaxRequests = 100 // Par minute pour les endpoints généraux
	APICooldown    = 1 * time.Minute
)

// APIRateLimit limite le nombre de requêtes par IP (général).
// Sans Redis, le limiteur laisse passer : il protège, il ne bloque pas le service.
func APIRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cache.RedisClient == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		key := "api_requests:" + ip

		requests, err := cache.IncrementRateLimit(key, APICooldown)
		if err != nil {
			c.Next()
			return
		}

		if requests > APIMaxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Trop de requêtes. Réessayez dans 1 minute",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", APIMaxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", APIMaxRequests-requests))

		c.Next()
	}
}
