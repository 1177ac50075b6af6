package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func newHppApp() *fiber.App {
	app := fiber.New()
	app.Use(HppMiddleware())
	app.Get("/echo", func(c fiber.Ctx) error {
		out := map[string][]string{}
		c.Request().URI().QueryArgs().VisitAll(func(k, v []byte) {
			key := string(k)
			out[key] = append(out[key], string(v))
		})
		return c.JSON(out)
	})
	return app
}

func hppEcho(t *testing.T, app *fiber.App, target string) map[string][]string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var got map[string][]string
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Response không phải JSON: %v", err)
	}
	return got
}

func TestHppMiddleware_CollapsesDuplicates(t *testing.T) {
	app := newHppApp()

	got := hppEcho(t, app, "/echo?id=1&id=2&id=3")
	if len(got["id"]) != 1 || got["id"][0] != "3" {
		t.Errorf("Param ngoài whitelist phải chỉ giữ giá trị cuối, nhận: %v", got["id"])
	}
}

func TestHppMiddleware_WhitelistKeepsAll(t *testing.T) {
	app := newHppApp()

	got := hppEcho(t, app, "/echo?sort=a&sort=b&id=1&id=2")
	if len(got["sort"]) != 2 {
		t.Errorf("Param whitelist (sort) phải giữ đủ giá trị, nhận: %v", got["sort"])
	}
	if len(got["id"]) != 1 || got["id"][0] != "2" {
		t.Errorf("Param ngoài whitelist vẫn phải bị gom, nhận: %v", got["id"])
	}
}

func TestHppMiddleware_NoDuplicatesUntouched(t *testing.T) {
	app := newHppApp()

	got := hppEcho(t, app, "/echo?id=1&name=an")
	if got["id"][0] != "1" || got["name"][0] != "an" {
		t.Errorf("Query không trùng lặp phải giữ nguyên, nhận: %v", got)
	}
}
