package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
)

func TestMemoryCounterStore_HitCountForget(t *testing.T) {
	store := NewMemoryCounterStore()
	defer store.Stop()

	window := time.Minute
	if n := store.Count("k", window); n != 0 {
		t.Errorf("Count key mới phải là 0, nhận %d", n)
	}

	for i := 1; i <= 3; i++ {
		if n := store.Hit("k", window); n != i {
			t.Errorf("Hit lần %d phải trả %d, nhận %d", i, i, n)
		}
	}
	if n := store.Count("k", window); n != 3 {
		t.Errorf("Count sau 3 hit phải là 3, nhận %d", n)
	}

	// Key khác không ảnh hưởng lẫn nhau
	if n := store.Count("other", window); n != 0 {
		t.Errorf("Key khác phải là 0, nhận %d", n)
	}

	store.Forget("k")
	if n := store.Count("k", window); n != 0 {
		t.Errorf("Count sau Forget phải là 0, nhận %d", n)
	}
}

func TestMemoryCounterStore_WindowExpiry(t *testing.T) {
	store := NewMemoryCounterStore()
	defer store.Stop()

	// Window rất ngắn: hit rơi ra ngoài window sau khi chờ
	store.Hit("k", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	if n := store.Count("k", 10*time.Millisecond); n != 0 {
		t.Errorf("Hit ngoài window phải bị loại, nhận %d", n)
	}
}

// newLoginApp dựng app với LoginRateLimit và handler login giả trả status tùy body.
func newLoginApp(store CounterStore) *fiber.App {
	app := fiber.New()
	app.Use(LoginRateLimit(store))
	app.Post("/login", func(c fiber.Ctx) error {
		if strings.Contains(string(c.Body()), `"good"`) {
			return c.Status(http.StatusOK).JSON(fiber.Map{"success": true})
		}
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"success": false})
	})
	return app
}

func loginRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLoginRateLimit_BlocksAfterMaxFailures(t *testing.T) {
	newTestConfig(t) // LoginRateLimit_Max = 3, production

	store := NewMemoryCounterStore()
	defer store.Stop()
	app := newLoginApp(store)

	body := `{"username":"nva","password":"bad"}`
	for i := 0; i < 3; i++ {
		resp, err := app.Test(loginRequest(body))
		if err != nil {
			t.Fatalf("app.Test lỗi: %v", err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("Lần thất bại %d phải trả 401, nhận %d", i+1, resp.StatusCode)
		}
	}

	// Lần thứ 4 với cùng (IP, username) phải bị chặn
	resp, err := app.Test(loginRequest(body))
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Errorf("Vượt quota phải trả 429, nhận %d", resp.StatusCode)
	}

	// Username khác cùng IP vẫn còn quota riêng
	resp, err = app.Test(loginRequest(`{"username":"ntb","password":"bad"}`))
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Username khác phải có quota riêng, nhận %d", resp.StatusCode)
	}
}

func TestLoginRateLimit_SuccessesNotCounted(t *testing.T) {
	newTestConfig(t)

	store := NewMemoryCounterStore()
	defer store.Stop()
	app := newLoginApp(store)

	// Nhiều lần đăng nhập thành công hơn hẳn quota thất bại
	body := `{"username":"nva","password":"good"}`
	for i := 0; i < 10; i++ {
		resp, err := app.Test(loginRequest(body))
		if err != nil {
			t.Fatalf("app.Test lỗi: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Đăng nhập thành công lần %d không được bị chặn, nhận %d", i+1, resp.StatusCode)
		}
	}
}

func TestLoginRateLimit_DisabledConfig(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.RateLimit_Enabled = false

	store := NewMemoryCounterStore()
	defer store.Stop()
	app := newLoginApp(store)

	body := `{"username":"nva","password":"bad"}`
	for i := 0; i < 10; i++ {
		resp, err := app.Test(loginRequest(body))
		if err != nil {
			t.Fatalf("app.Test lỗi: %v", err)
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			t.Fatalf("Rate limit tắt nhưng vẫn bị chặn ở lần %d", i+1)
		}
	}
}
