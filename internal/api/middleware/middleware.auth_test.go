// Package middleware - Test chuỗi middleware bảo mật với Fiber app thật (app.Test).
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hrm_portal/config"
	"hrm_portal/internal/global"
	"hrm_portal/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// newTestConfig gắn config test vào global và trả về config đó.
// Environment production để các hệ số nới lỏng (x10) không làm sai lệch test.
func newTestConfig(t *testing.T) *config.Configuration {
	t.Helper()
	cfg := &config.Configuration{
		Environment:         "production",
		JwtSecret:           "middleware-test-secret",
		RateLimit_Enabled:   true,
		RateLimit_Max:       100,
		RateLimit_Window:    900,
		LoginRateLimit_Max:  3,
		Slowdown_Threshold:  1000,
		Slowdown_StepMs:     100,
		Slowdown_MaxDelayMs: 2000,
		CORS_Origins:        "*",
	}
	old := global.MongoDB_ServerConfig
	global.MongoDB_ServerConfig = cfg
	t.Cleanup(func() { global.MongoDB_ServerConfig = old })
	return cfg
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	newTestConfig(t)

	handlerCalled := false
	app := fiber.New()
	app.Use(AuthMiddleware())
	app.Get("/private", func(c fiber.Ctx) error {
		handlerCalled = true
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/private", nil))
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Thiếu token phải trả 401, nhận %d", resp.StatusCode)
	}
	if handlerCalled {
		t.Error("Handler không được phép chạy khi thiếu token")
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	newTestConfig(t)

	app := fiber.New()
	app.Use(AuthMiddleware())
	app.Get("/private", func(c fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Token rác phải trả 401, nhận %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_ValidToken_AttachesLocals(t *testing.T) {
	cfg := newTestConfig(t)

	token, err := utility.CreateToken(cfg.JwtSecret, &utility.TokenClaims{
		UserID:   "64f000000000000000000001",
		Username: "nva",
		Role:     RoleManager,
	})
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}

	var gotUserID, gotRole string
	app := fiber.New()
	app.Use(AuthMiddleware())
	app.Get("/private", func(c fiber.Ctx) error {
		gotUserID, _ = c.Locals("user_id").(string)
		gotRole, _ = c.Locals("role").(string)
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Token hợp lệ phải trả 200, nhận %d", resp.StatusCode)
	}
	if gotUserID != "64f000000000000000000001" {
		t.Errorf("Locals user_id sai: %q", gotUserID)
	}
	if gotRole != RoleManager {
		t.Errorf("Locals role sai: %q", gotRole)
	}
}

func TestRequireRoles(t *testing.T) {
	cfg := newTestConfig(t)

	makeToken := func(role string) string {
		token, err := utility.CreateToken(cfg.JwtSecret, &utility.TokenClaims{
			UserID:   "64f000000000000000000001",
			Username: "nva",
			Role:     role,
		})
		if err != nil {
			t.Fatalf("CreateToken lỗi: %v", err)
		}
		return token
	}

	app := fiber.New()
	app.Use(AuthMiddleware())
	app.Use(RequireRoles(RoleAdmin, RoleManager))
	app.Get("/managers-only", func(c fiber.Ctx) error {
		return c.SendString("ok")
	})

	cases := []struct {
		role string
		want int
	}{
		{RoleAdmin, http.StatusOK},
		{RoleManager, http.StatusOK},
		{RoleEmployee, http.StatusForbidden},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/managers-only", nil)
		req.Header.Set("Authorization", "Bearer "+makeToken(tc.role))
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test lỗi: %v", err)
		}
		if resp.StatusCode != tc.want {
			t.Errorf("Role %s: muốn %d, nhận %d", tc.role, tc.want, resp.StatusCode)
		}
	}
}
