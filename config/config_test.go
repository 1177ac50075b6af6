// Package config - Test nạp cấu hình từ environment variables.
package config

import (
	"os"
	"testing"
)

// unsetEnv xóa biến môi trường trong phạm vi test và khôi phục sau khi chạy xong.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	orig, had := os.LookupEnv(key)
	os.Unsetenv(key)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, orig)
		}
	})
}

func TestNewConfig_DuThongTinKetNoi(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("MONGODB_CONNECTION_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_DBNAME", "hrm_test")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig với đủ biến bắt buộc không được trả lỗi: %v", err)
	}
	if cfg == nil {
		t.Fatal("NewConfig phải trả về config khác nil")
	}

	if cfg.MongoDB_ConnectionURI != "mongodb://localhost:27017" {
		t.Errorf("MongoDB_ConnectionURI sai: %s", cfg.MongoDB_ConnectionURI)
	}
	if cfg.MongoDB_DBName != "hrm_test" {
		t.Errorf("MongoDB_DBName sai: %s", cfg.MongoDB_DBName)
	}

	// Các giá trị mặc định quan trọng cho pipeline bảo mật
	if cfg.Address != ":8080" {
		t.Errorf("Address mặc định phải là :8080, nhận: %s", cfg.Address)
	}
	if cfg.RateLimit_Max != 100 {
		t.Errorf("RateLimit_Max mặc định phải là 100, nhận: %d", cfg.RateLimit_Max)
	}
	if cfg.LoginRateLimit_Max != 5 {
		t.Errorf("LoginRateLimit_Max mặc định phải là 5, nhận: %d", cfg.LoginRateLimit_Max)
	}
	if cfg.IsProduction() {
		t.Error("GO_ENV=test không được coi là production")
	}
}

func TestNewConfig_ThieuBienBatBuoc(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("MONGODB_DBNAME", "hrm_test")
	unsetEnv(t, "MONGODB_CONNECTION_URI")

	cfg, err := NewConfig()
	if err == nil {
		t.Fatal("Thiếu MONGODB_CONNECTION_URI phải trả lỗi")
	}
	if cfg != nil {
		t.Errorf("Khi lỗi, config trả về phải là nil, nhận: %+v", cfg)
	}
}
