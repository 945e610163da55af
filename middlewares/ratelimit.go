// file: middlewares/ratelimit.go
package middlewares

import (
	"fmt"
	"time"

	"FlagCore/database"
	"FlagCore/services"
	"FlagCore/utils"

	"github.com/gin-gonic/gin"
)

// SubmitRateLimit bounds flag submissions per client address. Inactive
// when redis is not configured.
func SubmitRateLimit(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if database.RDB == nil {
			c.Next()
			return
		}

		ip := services.Request{Request: c.Request}.ClientIP()
		key := fmt.Sprintf("ratelimit:submit:%s", ip)

		count, err := database.RDB.Incr(database.Ctx, key).Result()
		if err != nil {
			// Rate limiting must not take down submissions.
			c.Next()
			return
		}
		if count == 1 {
			database.RDB.Expire(database.Ctx, key, window)
		}
		if count > int64(limit) {
			utils.Error(c, 4290, "Too many submissions, slow down.")
			c.Abort()
			return
		}
		c.Next()
	}
}
