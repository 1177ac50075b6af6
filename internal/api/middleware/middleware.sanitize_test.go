package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
)

// newEchoApp dựng app với SanitizeMiddleware, handler trả lại body và query nhận được.
func newEchoApp() *fiber.App {
	app := fiber.New()
	app.Use(SanitizeMiddleware())
	app.Post("/echo", func(c fiber.Ctx) error {
		c.Set("Content-Type", "application/json")
		return c.Send(c.Body())
	})
	app.Get("/query", func(c fiber.Ctx) error {
		out := map[string]string{}
		c.Request().URI().QueryArgs().VisitAll(func(k, v []byte) {
			out[string(k)] = string(v)
		})
		return c.JSON(out)
	})
	return app
}

func TestSanitizeMiddleware_BodyOperatorKeys(t *testing.T) {
	newTestConfig(t)
	app := newEchoApp()

	body := `{"$where":"sleep(1000)","profile":{"a.b":1,"$gt":2},"name":"An"}`
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)

	var got map[string]interface{}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Body sau sanitize không còn là JSON hợp lệ: %v", err)
	}

	if _, ok := got["$where"]; ok {
		t.Error("Key $where phải bị đổi tên")
	}
	if _, ok := got["_where"]; !ok {
		t.Errorf("Key $where phải thành _where, body: %s", raw)
	}
	if got["name"] != "An" {
		t.Errorf("Key thường phải giữ nguyên, nhận: %v", got["name"])
	}

	profile, ok := got["profile"].(map[string]interface{})
	if !ok {
		t.Fatalf("profile phải là object, body: %s", raw)
	}
	if _, ok := profile["a_b"]; !ok {
		t.Errorf("Key lồng nhau a.b phải thành a_b, profile: %v", profile)
	}
	if _, ok := profile["_gt"]; !ok {
		t.Errorf("Key lồng nhau $gt phải thành _gt, profile: %v", profile)
	}
}

func TestSanitizeMiddleware_QueryArgs(t *testing.T) {
	newTestConfig(t)
	app := newEchoApp()

	req := httptest.NewRequest(http.MethodGet, "/query?$gt=5&name=an", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)

	var got map[string]string
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Response không phải JSON: %v", err)
	}
	if _, ok := got["$gt"]; ok {
		t.Error("Query key $gt phải bị đổi tên")
	}
	if got["_gt"] != "5" {
		t.Errorf("Query key $gt phải thành _gt giữ nguyên value, nhận: %v", got)
	}
	if got["name"] != "an" {
		t.Errorf("Query key thường phải giữ nguyên, nhận: %v", got)
	}
}

func TestSanitizeMiddleware_NonJSONBodyUntouched(t *testing.T) {
	newTestConfig(t)
	app := newEchoApp()

	body := "plain text $where body"
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/plain")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	if string(raw) != body {
		t.Errorf("Body không phải JSON phải giữ nguyên, nhận: %s", raw)
	}
}
