package middleware

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"hrm_portal/internal/common"
	"hrm_portal/internal/global"
	"hrm_portal/internal/logger"
)

// CounterStore trừu tượng hóa bộ đếm rate limit theo sliding window.
// Triển khai mặc định giữ counter trong bộ nhớ process; có thể thay bằng
// store chia sẻ (Redis...) khi chạy nhiều instance mà không đổi middleware.
type CounterStore interface {
	// Hit ghi nhận một lần gọi cho key, trả về số lần gọi trong window
	Hit(key string, window time.Duration) int
	// Count trả về số lần gọi của key trong window mà không ghi nhận thêm
	Count(key string, window time.Duration) int
	// Forget xóa toàn bộ counter của key
	Forget(key string)
}

// MemoryCounterStore là CounterStore trong bộ nhớ process.
// Mỗi key giữ danh sách timestamp; các timestamp ngoài window bị loại khi đọc/ghi.
type MemoryCounterStore struct {
	mu       sync.Mutex
	hits     map[string][]time.Time
	stopChan chan struct{}
}

// maxRetention là thời gian giữ tối đa của một timestamp trước khi bị dọn dẹp.
const maxRetention = time.Hour

// NewMemoryCounterStore tạo store mới và chạy goroutine dọn dẹp định kỳ.
func NewMemoryCounterStore() *MemoryCounterStore {
	store := &MemoryCounterStore{
		hits:     make(map[string][]time.Time),
		stopChan: make(chan struct{}),
	}
	go store.cleanupLoop()
	return store
}

// Hit ghi nhận một lần gọi và trả về số lần gọi trong window
func (s *MemoryCounterStore) Hit(key string, window time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	kept := pruneOld(s.hits[key], now.Add(-window))
	kept = append(kept, now)
	s.hits[key] = kept
	return len(kept)
}

// Count trả về số lần gọi trong window mà không ghi nhận thêm
func (s *MemoryCounterStore) Count(key string, window time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := pruneOld(s.hits[key], time.Now().Add(-window))
	s.hits[key] = kept
	return len(kept)
}

// Forget xóa toàn bộ counter của key
func (s *MemoryCounterStore) Forget(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.hits, key)
}

// Stop dừng goroutine dọn dẹp
func (s *MemoryCounterStore) Stop() {
	close(s.stopChan)
}

func pruneOld(timestamps []time.Time, cutoff time.Time) []time.Time {
	kept := timestamps[:0]
	for _, ts := range timestamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	return kept
}

// cleanupLoop loại bỏ định kỳ các key không còn timestamp trong thời gian giữ
func (s *MemoryCounterStore) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-maxRetention)
			s.mu.Lock()
			for key, timestamps := range s.hits {
				kept := pruneOld(timestamps, cutoff)
				if len(kept) == 0 {
					delete(s.hits, key)
				} else {
					s.hits[key] = kept
				}
			}
			s.mu.Unlock()
		case <-s.stopChan:
			return
		}
	}
}

// loginKey tạo key rate limit từ IP client và username gửi lên.
// Username lấy từ body mà không tiêu thụ body (handler phía sau vẫn đọc được).
func loginKey(c fiber.Ctx) string {
	var input struct {
		Username string `json:"username"`
	}
	// Lỗi parse không chặn request — key rơi về IP đơn thuần
	_ = json.Unmarshal(c.Body(), &input)
	return c.IP() + "|" + input.Username
}

// LoginRateLimit giới hạn số lần đăng nhập THẤT BẠI theo (IP + username)
// trong sliding window. Lần đăng nhập thành công không bị tính vào quota.
func LoginRateLimit(store CounterStore) fiber.Handler {
	return func(c fiber.Ctx) error {
		cfg := global.MongoDB_ServerConfig
		if !cfg.RateLimit_Enabled {
			return c.Next()
		}

		window := time.Duration(cfg.RateLimit_Window) * time.Second
		max := cfg.LoginRateLimit_Max
		if !cfg.IsProduction() {
			// Nới lỏng ngoài production để không cản trở phát triển và test thủ công
			max *= 10
		}

		key := loginKey(c)
		if store.Count(key, window) >= max {
			logger.GetSecurityLogger().WithFields(logrus.Fields{
				"ip":   c.IP(),
				"path": c.Path(),
			}).Warn("🚫 [RATELIMIT] Login attempts exceeded for this IP/username pair")
			HandleErrorResponse(c, common.ErrTooManyRequests)
			return nil
		}

		if err := c.Next(); err != nil {
			store.Hit(key, window)
			return err
		}

		// Chỉ tính lần gọi thất bại vào quota
		if c.Response().StatusCode() != common.StatusOK {
			store.Hit(key, window)
		}
		return nil
	}
}

// Slowdown chèn delay tăng dần khi một IP vượt ngưỡng mềm trong window,
// thay vì chặn cứng — làm cùn script abuse mà không phá burst hợp lệ.
func Slowdown(store CounterStore) fiber.Handler {
	return func(c fiber.Ctx) error {
		cfg := global.MongoDB_ServerConfig
		if !cfg.RateLimit_Enabled {
			return c.Next()
		}

		window := time.Duration(cfg.RateLimit_Window) * time.Second
		count := store.Hit("slowdown|"+c.IP(), window)

		if over := count - cfg.Slowdown_Threshold; over > 0 {
			delay := time.Duration(over*cfg.Slowdown_StepMs) * time.Millisecond
			maxDelay := time.Duration(cfg.Slowdown_MaxDelayMs) * time.Millisecond
			if delay > maxDelay {
				delay = maxDelay
			}
			time.Sleep(delay)
		}

		return c.Next()
	}
}
