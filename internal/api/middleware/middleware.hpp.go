package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"
)

// hppWhitelist là các query param được phép lặp lại nhiều lần.
var hppWhitelist = map[string]struct{}{
	"sort":   {},
	"fields": {},
	"page":   {},
	"limit":  {},
	"filter": {},
}

// HppMiddleware chống parameter pollution: mỗi query param ngoài whitelist
// chỉ giữ lại giá trị CUỐI CÙNG khi client gửi trùng tên param nhiều lần.
func HppMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		args := c.Request().URI().QueryArgs()

		// Gom tất cả giá trị theo key, giữ thứ tự xuất hiện
		order := []string{}
		values := map[string][]string{}
		args.VisitAll(func(key, value []byte) {
			k := string(key)
			if _, seen := values[k]; !seen {
				order = append(order, k)
			}
			values[k] = append(values[k], string(value))
		})

		// Kiểm tra có param nào ngoài whitelist bị lặp không
		dirty := false
		for key, vals := range values {
			if len(vals) > 1 {
				if _, ok := hppWhitelist[key]; !ok {
					dirty = true
					break
				}
			}
		}
		if !dirty {
			return c.Next()
		}

		rebuildArgs(args, order, values)
		return c.Next()
	}
}

// rebuildArgs ghi lại query args: param ngoài whitelist chỉ giữ giá trị cuối.
func rebuildArgs(args *fasthttp.Args, order []string, values map[string][]string) {
	args.Reset()
	for _, key := range order {
		vals := values[key]
		if _, ok := hppWhitelist[key]; ok {
			for _, v := range vals {
				args.Add(key, v)
			}
			continue
		}
		args.Add(key, vals[len(vals)-1])
	}
}
