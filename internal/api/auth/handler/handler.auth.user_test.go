// Package authhdl - Test endpoint kiểm tra token.
package authhdl

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	authdto "hrm_portal/internal/api/auth/dto"
	models "hrm_portal/internal/api/auth/models"
	basehdl "hrm_portal/internal/api/base/handler"
	"hrm_portal/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// newCheckTokenApp dựng app với claims gắn sẵn vào Locals như AuthMiddleware làm.
func newCheckTokenApp(claims *utility.TokenClaims) *fiber.App {
	handler := &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserChangeInfoInput](nil),
	}

	app := fiber.New()
	app.Get("/api/v1/checkToken", func(c fiber.Ctx) error {
		if claims != nil {
			c.Locals("claims", claims)
		}
		return handler.HandleCheckToken(c)
	})
	return app
}

func TestHandleCheckToken_TraVeDayDuClaims(t *testing.T) {
	app := newCheckTokenApp(&utility.TokenClaims{
		UserID:         "64f000000000000000000001",
		Username:       "nva",
		Role:           "manager",
		DepartmentID:   "64f000000000000000000002",
		OrganizationID: "64f000000000000000000003",
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/checkToken", nil))
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("checkToken hợp lệ phải trả 200, nhận: %d", resp.StatusCode)
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
	if data["valid"] != true {
		t.Errorf("data.valid phải là true, nhận: %v", data["valid"])
	}

	wantFields := map[string]string{
		"userId":         "64f000000000000000000001",
		"username":       "nva",
		"role":           "manager",
		"departmentId":   "64f000000000000000000002",
		"organizationId": "64f000000000000000000003",
	}
	for key, want := range wantFields {
		if data[key] != want {
			t.Errorf("data.%s = %v, muốn %q", key, data[key], want)
		}
	}
}

func TestHandleCheckToken_ThieuClaims(t *testing.T) {
	app := newCheckTokenApp(nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/checkToken", nil))
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("checkToken không có claims phải trả 401, nhận: %d", resp.StatusCode)
	}
}
