package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/vigilbook/vigil-booking/redis"
	"github.com/vigilbook/vigil-booking/utils"
)

// RateLimit caps requests per IP per minute with a redis counter, so the
// limit holds across instances. Redis being down degrades to letting the
// request through; the limiter is load protection, not access control.
func RateLimit(maxPerMinute int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := fmt.Sprintf("ratelimit:%s:%d", c.IP(), time.Now().Unix()/60)

		count, err := redis.Client.Incr(c.Context(), key).Result()
		if err != nil {
			utils.GetLogger().Warn("rate limiter unavailable", zap.Error(err))
			return c.Next()
		}
		if count == 1 {
			redis.Client.Expire(c.Context(), key, time.Minute)
		}
		if count > int64(maxPerMinute) {
			return c.Status(fiber.StatusTooManyRequests).JSON(utils.ErrorResponse{
				Message: "Rate limit exceeded. Try again later.",
			})
		}
		return c.Next()
	}
}
