package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"github.com/skillpath/skillpath-backend/internal/logger"
	"github.com/skillpath/skillpath-backend/internal/requestdata"
)

// AILimiter throttles the generation endpoints per authenticated user with
// a fixed redis window. When redis is unreachable the limiter fails open.
type AILimiter struct {
	log    *logger.Logger
	rdb    *goredis.Client
	max    int
	window time.Duration
}

func NewAILimiter(log *logger.Logger, rdb *goredis.Client, max int, window time.Duration) *AILimiter {
	middlewareLog := log.With("middleware", "AILimiter")
	return &AILimiter{log: middlewareLog, rdb: rdb, max: max, window: window}
}

func (al *AILimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if al.rdb == nil {
			c.Next()
			return
		}
		rd := requestdata.GetRequestData(c.Request.Context())
		if rd == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ai_limit:%s", rd.UserID)
		ctx := c.Request.Context()
		count, err := al.rdb.Incr(ctx, key).Result()
		if err != nil {
			al.log.Warn("Rate limit check failed, allowing request", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			if err := al.rdb.Expire(ctx, key, al.window).Err(); err != nil {
				al.log.Warn("Failed to set rate limit window", "error", err)
			}
		}
		if count > int64(al.max) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "AI usage limit reached. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
