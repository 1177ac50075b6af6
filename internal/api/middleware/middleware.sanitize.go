package middleware

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"hrm_portal/internal/common"
	"hrm_portal/internal/logger"
)

// SanitizeMiddleware vô hiệu hóa các key mang operator MongoDB trong request.
// Các key bắt đầu bằng '$' hoặc chứa '.' trong JSON body và query string được
// thay ký tự nguy hiểm bằng '_' trước khi request đi tiếp vào handler.
func SanitizeMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Làm sạch query string
		sanitizeQueryArgs(c)

		// Làm sạch JSON body nếu có
		body := c.Body()
		if len(body) > 0 && strings.Contains(c.Get("Content-Type"), "application/json") {
			var payload interface{}
			if err := json.Unmarshal(body, &payload); err != nil {
				// Body không phải JSON hợp lệ — để handler phía sau báo lỗi parse
				return c.Next()
			}

			cleaned, changed := sanitizeValue(payload)
			if changed {
				logger.GetSecurityLogger().WithFields(logrus.Fields{
					"path":   c.Path(),
					"method": c.Method(),
					"ip":     c.IP(),
				}).Warn("⚠️ [SANITIZE] Neutralized MongoDB operator keys in request body")

				newBody, err := json.Marshal(cleaned)
				if err != nil {
					HandleErrorResponse(c, common.ErrInvalidFormat)
					return nil
				}
				c.Request().SetBodyRaw(newBody)
			}
		}

		return c.Next()
	}
}

// sanitizeQueryArgs thay các ký tự operator trong tên query param
func sanitizeQueryArgs(c fiber.Ctx) {
	args := c.Request().URI().QueryArgs()

	type pair struct {
		key   string
		value string
	}
	var pairs []pair
	dirty := false

	args.VisitAll(func(key, value []byte) {
		k := string(key)
		if strings.HasPrefix(k, "$") || strings.Contains(k, ".") {
			dirty = true
			k = sanitizeKey(k)
		}
		pairs = append(pairs, pair{key: k, value: string(value)})
	})

	if !dirty {
		return
	}

	args.Reset()
	for _, p := range pairs {
		args.Add(p.key, p.value)
	}
}

// sanitizeKey thay '$' và '.' trong key bằng '_'
func sanitizeKey(key string) string {
	key = strings.ReplaceAll(key, "$", "_")
	key = strings.ReplaceAll(key, ".", "_")
	return key
}

// sanitizeValue đệ quy làm sạch key trong mọi object lồng nhau.
// Trả về giá trị đã làm sạch và cờ cho biết có thay đổi hay không.
func sanitizeValue(value interface{}) (interface{}, bool) {
	switch v := value.(type) {
	case map[string]interface{}:
		changed := false
		cleaned := make(map[string]interface{}, len(v))
		for key, item := range v {
			newKey := key
			if strings.HasPrefix(key, "$") || strings.Contains(key, ".") {
				newKey = sanitizeKey(key)
				changed = true
			}
			cleanedItem, itemChanged := sanitizeValue(item)
			if itemChanged {
				changed = true
			}
			cleaned[newKey] = cleanedItem
		}
		return cleaned, changed
	case []interface{}:
		changed := false
		cleaned := make([]interface{}, len(v))
		for i, item := range v {
			cleanedItem, itemChanged := sanitizeValue(item)
			if itemChanged {
				changed = true
			}
			cleaned[i] = cleanedItem
		}
		return cleaned, changed
	default:
		return value, false
	}
}
