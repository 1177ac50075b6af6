package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"hrm_portal/internal/common"
	"hrm_portal/internal/global"
	"hrm_portal/internal/logger"
)

// SecurityHeaders gắn các header cứng hóa bảo mật vào mọi response.
// HSTS chỉ bật ở production để không phá HTTP local development.
func SecurityHeaders() fiber.Handler {
	return func(c fiber.Ctx) error {
		c.Set("Content-Security-Policy", "default-src 'self'; frame-ancestors 'none'")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("Referrer-Policy", "no-referrer")

		if global.MongoDB_ServerConfig.IsProduction() {
			c.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		return c.Next()
	}
}

// OriginCheck từ chối tường minh (không drop im lặng) các request mang header
// Origin nằm ngoài allow-list. Ngoài production chấp nhận thêm origin cùng host
// với server để local development không cần cấu hình.
func OriginCheck() fiber.Handler {
	return func(c fiber.Ctx) error {
		origin := c.Get("Origin")
		// Request không có Origin (curl, server-to-server) đi qua bình thường
		if origin == "" {
			return c.Next()
		}

		cfg := global.MongoDB_ServerConfig
		if originAllowed(origin, c.Hostname(), cfg.CORS_Origins, cfg.IsProduction()) {
			return c.Next()
		}

		logger.GetSecurityLogger().WithFields(logrus.Fields{
			"origin": origin,
			"path":   c.Path(),
			"ip":     c.IP(),
		}).Warn("🚫 [ORIGIN] Rejected request from disallowed origin")

		HandleErrorResponse(c, common.NewError(
			common.ErrCodeAuth,
			"Origin không được phép truy cập",
			common.StatusForbidden,
			nil,
		))
		return nil
	}
}

// originAllowed kiểm tra origin theo allow-list cấu hình và same-host ngoài production
func originAllowed(origin, serverHost, allowedOrigins string, isProduction bool) bool {
	if allowedOrigins == "*" {
		return true
	}

	for _, allowed := range strings.Split(allowedOrigins, ",") {
		if strings.TrimSpace(allowed) == origin {
			return true
		}
	}

	// Ngoài production: chấp nhận origin cùng host với server (khác port vẫn được)
	if !isProduction {
		originHost := origin
		if idx := strings.Index(originHost, "://"); idx >= 0 {
			originHost = originHost[idx+3:]
		}
		if idx := strings.Index(originHost, ":"); idx >= 0 {
			originHost = originHost[:idx]
		}

		host := serverHost
		if idx := strings.Index(host, ":"); idx >= 0 {
			host = host[:idx]
		}

		if originHost == host || originHost == "localhost" || originHost == "127.0.0.1" {
			return true
		}
	}

	return false
}
