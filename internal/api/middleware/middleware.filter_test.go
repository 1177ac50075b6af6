package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func newFilterApp() *fiber.App {
	app := fiber.New()
	app.Use(ResponseFilter())

	payload := fiber.Map{
		"name":     "An",
		"password": "hash-here",
		"Token":    "abc",
		"nested": fiber.Map{
			"secret": "s",
			"email":  "an@example.com",
		},
		"items": []fiber.Map{
			{"key": "k", "label": "visible"},
		},
	}
	app.Get("/api/v1/admin/user/find", func(c fiber.Ctx) error {
		return c.JSON(payload)
	})
	app.Post("/api/v1/auth/login", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "token": "jwt-here"})
	})
	app.Get("/plain", func(c fiber.Ctx) error {
		return c.SendString("password=still-here")
	})
	return app
}

func filterGet(t *testing.T, app *fiber.App, method, target string) map[string]interface{} {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var got map[string]interface{}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Response không phải JSON: %v (body: %s)", err, raw)
	}
	return got
}

func TestResponseFilter_StripsSensitiveKeys(t *testing.T) {
	app := newFilterApp()

	got := filterGet(t, app, http.MethodGet, "/api/v1/admin/user/find")

	if _, ok := got["password"]; ok {
		t.Error("Key password phải bị loại khỏi response")
	}
	if _, ok := got["Token"]; ok {
		t.Error("Key Token (viết hoa) phải bị loại khỏi response")
	}
	if got["name"] != "An" {
		t.Errorf("Key thường phải giữ nguyên, nhận: %v", got["name"])
	}

	nested, ok := got["nested"].(map[string]interface{})
	if !ok {
		t.Fatalf("nested phải là object, nhận: %v", got["nested"])
	}
	if _, ok := nested["secret"]; ok {
		t.Error("Key secret lồng nhau phải bị loại")
	}
	if nested["email"] != "an@example.com" {
		t.Errorf("Key thường lồng nhau phải giữ nguyên, nhận: %v", nested)
	}

	items, ok := got["items"].([]interface{})
	if !ok || len(items) != 1 {
		t.Fatalf("items phải là array 1 phần tử, nhận: %v", got["items"])
	}
	item := items[0].(map[string]interface{})
	if _, ok := item["key"]; ok {
		t.Error("Key nhạy cảm trong array phải bị loại")
	}
	if item["label"] != "visible" {
		t.Errorf("Key thường trong array phải giữ nguyên, nhận: %v", item)
	}
}

func TestResponseFilter_ExemptRouteKeepsToken(t *testing.T) {
	app := newFilterApp()

	got := filterGet(t, app, http.MethodPost, "/api/v1/auth/login")
	if got["token"] != "jwt-here" {
		t.Errorf("Route miễn trừ phải giữ nguyên token, nhận: %v", got)
	}
}

func TestResponseFilter_NonJSONUntouched(t *testing.T) {
	app := newFilterApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/plain", nil))
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	if string(raw) != "password=still-here" {
		t.Errorf("Response không phải JSON phải giữ nguyên, nhận: %s", raw)
	}
}
