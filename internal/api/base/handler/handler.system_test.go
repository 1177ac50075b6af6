package basehdl

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
)

func TestHandleHealth_PayloadDayDu(t *testing.T) {
	handler, err := NewSystemHandler()
	if err != nil {
		t.Fatalf("NewSystemHandler lỗi: %v", err)
	}

	app := fiber.New()
	app.Get("/api/v1/system/health", handler.HandleHealth)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/system/health", nil))
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Health check phải trả 200, nhận: %d", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var got map[string]interface{}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Response không phải JSON: %v (body: %s)", err, raw)
	}

	data, ok := got["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("Envelope phải có data dạng object, nhận: %v", got)
	}

	if data["version"] != AppVersion {
		t.Errorf("Health payload phải chứa version %q, nhận: %v", AppVersion, data["version"])
	}
	if data["status"] == nil || data["status"] == "" {
		t.Errorf("Health payload phải chứa status, nhận: %v", data["status"])
	}

	ts, ok := data["timestamp"].(string)
	if !ok {
		t.Fatalf("Health payload phải chứa timestamp dạng chuỗi, nhận: %v", data["timestamp"])
	}
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Errorf("timestamp phải theo định dạng RFC3339: %v", err)
	}
}
