package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// loggers map lưu các logger instances theo category
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex

	// config chứa cấu hình logging
	config *LogConfig
)

// Init khởi tạo hệ thống logging với cấu hình.
// Truyền nil để dùng cấu hình mặc định (đọc từ environment).
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	// Tạo thư mục logs nếu ghi ra file
	if cfg.ToFile {
		if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
			return fmt.Errorf("failed to create logs directory: %w", err)
		}
	}

	return nil
}

// getLogger trả về logger theo category, tạo mới nếu chưa có.
// Mỗi category ghi ra một file riêng (app.log, security.log, ...) khi bật ToFile.
func getLogger(category string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if log, exists := loggers[category]; exists {
		return log
	}

	if config == nil {
		config = DefaultConfig()
	}

	log := logrus.New()
	log.SetLevel(config.Level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if config.ToFile {
		fileWriter := &lumberjack.Logger{
			Filename:   filepath.Join(config.Dir, category+".log"),
			MaxSize:    config.MaxSizeMB,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAgeDays,
			Compress:   config.Compress,
		}
		log.SetOutput(io.MultiWriter(os.Stdout, fileWriter))
	} else {
		log.SetOutput(os.Stdout)
	}

	loggers[category] = log
	return log
}

// GetAppLogger trả về logger chính của ứng dụng
func GetAppLogger() *logrus.Logger {
	return getLogger("app")
}

// GetSecurityLogger trả về logger cho các sự kiện bảo mật
// (từ chối token, rate limit, origin bị chặn, payload bị sanitize).
// Chi tiết các sự kiện này CHỈ được ghi server-side, không bao giờ trả cho client.
func GetSecurityLogger() *logrus.Logger {
	return getLogger("security")
}
