package middleware

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// sensitiveKeys là các key bị loại khỏi mọi JSON response ở bất kỳ độ sâu nào.
var sensitiveKeys = map[string]struct{}{
	"password": {},
	"token":    {},
	"secret":   {},
	"key":      {},
	"hash":     {},
}

// filterExemptRoutes là các route được phép trả về token cho client.
// So khớp CHÍNH XÁC theo path — không so theo prefix để tránh mở rộng vùng miễn trừ.
var filterExemptRoutes = map[string]struct{}{
	"/api/v1/auth/login":    {},
	"/api/v1/auth/register": {},
	"/api/v1/checkToken":    {},
}

// ResponseFilter loại bỏ các key nhạy cảm khỏi JSON response trước khi trả về client.
// Chạy SAU handler (hậu xử lý response); các route trong filterExemptRoutes được bỏ qua.
func ResponseFilter() fiber.Handler {
	return func(c fiber.Ctx) error {
		err := c.Next()

		if _, exempt := filterExemptRoutes[c.Path()]; exempt {
			return err
		}

		contentType := string(c.Response().Header.ContentType())
		if !strings.Contains(contentType, "application/json") {
			return err
		}

		body := c.Response().Body()
		if len(body) == 0 {
			return err
		}

		var payload interface{}
		if jsonErr := json.Unmarshal(body, &payload); jsonErr != nil {
			return err
		}

		filtered, changed := stripSensitiveKeys(payload)
		if !changed {
			return err
		}

		newBody, jsonErr := json.Marshal(filtered)
		if jsonErr != nil {
			return err
		}
		c.Response().SetBodyRaw(newBody)
		return err
	}
}

// stripSensitiveKeys đệ quy loại bỏ key nhạy cảm khỏi object/array lồng nhau.
// Trả về payload đã lọc và cờ cho biết có key nào bị loại không.
func stripSensitiveKeys(value interface{}) (interface{}, bool) {
	switch v := value.(type) {
	case map[string]interface{}:
		changed := false
		filtered := make(map[string]interface{}, len(v))
		for key, item := range v {
			if _, sensitive := sensitiveKeys[strings.ToLower(key)]; sensitive {
				changed = true
				continue
			}
			filteredItem, itemChanged := stripSensitiveKeys(item)
			if itemChanged {
				changed = true
			}
			filtered[key] = filteredItem
		}
		return filtered, changed
	case []interface{}:
		changed := false
		filtered := make([]interface{}, len(v))
		for i, item := range v {
			filteredItem, itemChanged := stripSensitiveKeys(item)
			if itemChanged {
				changed = true
			}
			filtered[i] = filteredItem
		}
		return filtered, changed
	default:
		return value, false
	}
}
