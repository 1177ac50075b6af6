package logger

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	Level      logrus.Level // Mức log tối thiểu
	Dir        string       // Thư mục chứa file log
	ToFile     bool         // Có ghi ra file không (mặc định chỉ stdout)
	MaxSizeMB  int          // Kích thước tối đa của một file log (MB)
	MaxBackups int          // Số file log cũ giữ lại
	MaxAgeDays int          // Số ngày giữ file log cũ
	Compress   bool         // Nén file log cũ
}

// DefaultConfig trả về cấu hình logging mặc định, có thể override qua environment.
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:      logrus.InfoLevel,
		Dir:        "logs",
		ToFile:     false,
		MaxSizeMB:  50,
		MaxBackups: 5,
		MaxAgeDays: 30,
		Compress:   true,
	}

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if parsed, err := logrus.ParseLevel(lvl); err == nil {
			cfg.Level = parsed
		}
	}
	if dir := os.Getenv("LOG_DIR"); dir != "" {
		cfg.Dir = dir
	}
	if toFile := os.Getenv("LOG_TO_FILE"); toFile != "" {
		if parsed, err := strconv.ParseBool(toFile); err == nil {
			cfg.ToFile = parsed
		}
	}

	return cfg
}
