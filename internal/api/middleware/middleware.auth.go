package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"hrm_portal/internal/common"
	"hrm_portal/internal/global"
	"hrm_portal/internal/logger"
	"hrm_portal/internal/utility"
)

// Các role cố định của hệ thống. Token mang một trong ba giá trị này trong claim "role".
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// AuthMiddleware middleware xác thực cho Fiber.
// Token được xác thực hoàn toàn bằng chữ ký và thời hạn — KHÔNG tra cứu database.
// Claims hợp lệ được gắn vào Locals để các handler phía sau sử dụng.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetSecurityLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		// Kiểm tra sơ bộ cấu trúc token trước khi verify chữ ký
		if err := utility.CheckTokenSanity(token); err != nil {
			logger.GetSecurityLogger().WithFields(logrus.Fields{
				"path": c.Path(),
				"ip":   c.IP(),
			}).Warn("❌ [AUTH] Token failed sanity check")
			HandleErrorResponse(c, err)
			return nil
		}

		// Verify chữ ký và thời hạn
		claims, err := utility.VerifyToken(global.MongoDB_ServerConfig.JwtSecret, token)
		if err != nil {
			logger.GetSecurityLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"ip":    c.IP(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token verification failed")
			HandleErrorResponse(c, err)
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", claims.UserID)
		c.Locals("username", claims.Username)
		c.Locals("role", claims.Role)
		c.Locals("claims", claims)

		return c.Next()
	}
}

// RequireRoles trả về middleware chỉ cho phép các role được liệt kê đi qua.
// Phải đặt SAU AuthMiddleware trong chuỗi middleware để claims có trong Locals.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role == "" {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		if _, has := allowed[role]; !has {
			logger.GetSecurityLogger().WithFields(logrus.Fields{
				"user_id": c.Locals("user_id"),
				"role":    role,
				"path":    c.Path(),
			}).Warn("❌ [AUTH] Role not permitted for this route")
			HandleErrorResponse(c, common.ErrRoleDenied)
			return nil
		}

		return c.Next()
	}
}
