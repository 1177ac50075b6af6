package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest trả về logger entry với request context từ Fiber
func WithRequest(c fiber.Ctx) *logrus.Entry {
	entry := GetAppLogger().WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	})

	// Thêm request ID nếu middleware requestid đã set
	if rid := c.Locals("requestid"); rid != nil {
		if ridStr, ok := rid.(string); ok && ridStr != "" {
			entry = entry.WithField("request_id", ridStr)
		}
	}

	// Thêm user ID nếu đã qua auth middleware
	if userID := c.Locals("user_id"); userID != nil {
		entry = entry.WithField("user_id", userID)
	}

	return entry
}
