// Package router đăng ký các route thuộc domain auth: login, register, token check, profile.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "hrm_portal/internal/api/auth/handler"
	basehdl "hrm_portal/internal/api/base/handler"
	"hrm_portal/internal/api/middleware"
	apirouter "hrm_portal/internal/api/router"
)

// LoginLimiter là chuỗi middleware giới hạn riêng cho endpoint login,
// gán từ cmd/server khi khởi tạo app (cần CounterStore dùng chung).
var LoginLimiter []fiber.Handler

// Register đăng ký tất cả route auth (system, login, register, token, profile, user CRUD) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerAuthRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerAuthRoutes(router fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	// Login có rate limit riêng theo (IP + username).
	// Prefix trỏ thẳng vào route để middleware .Use() không lan sang các route /auth khác.
	apirouter.RegisterRouteWithMiddleware(router, "/auth/login", "POST", "/", LoginLimiter, userHandler.HandleLogin)
	router.Post("/auth/register", userHandler.HandleRegister)

	authOnlyMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/checkToken", "GET", "/", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleCheckToken)
	apirouter.RegisterRouteWithMiddleware(router, "/auth/profile", "GET", "/", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth/profile", "PUT", "/", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleUpdateProfile)

	// CRUD user chỉ dành cho admin
	adminGates := []fiber.Handler{middleware.AuthMiddleware(), middleware.RequireRoles(middleware.RoleAdmin)}
	r.RegisterCRUDRoutes(router, "/admin/user", userHandler, apirouter.ReadWriteConfig, adminGates)

	return nil
}
