package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Tất cả giá trị được nạp một lần khi khởi động và không thay đổi trong runtime.
type Configuration struct {
	InitMode    bool   `env:"INITMODE" envDefault:"false"`     // Chế độ khởi tạo dữ liệu mặc định
	Address     string `env:"ADDRESS" envDefault:":8080"`      // Địa chỉ server
	Environment string `env:"GO_ENV" envDefault:"development"` // Môi trường chạy (production / development / test)

	// JwtSecret KHÔNG đánh dấu required: server vẫn khởi động được khi thiếu,
	// nhưng mọi lần phát hành token sẽ fail-closed với lỗi cấu hình (500).
	// Tuyệt đối không có secret mặc định.
	JwtSecret string `env:"JWT_SECRET"`

	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"` // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`         // Tên cơ sở dữ liệu HRM

	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials

	// Rate limit chung cho toàn bộ API (sliding window)
	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"` // Bật/tắt rate limiting
	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"100"`      // Số request tối đa trong window (production; ngoài production nhân 10)
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW" envDefault:"900"`   // Thời gian window (giây, mặc định 15 phút)

	// Rate limit riêng cho login, key theo (IP + username), không tính lần đăng nhập thành công
	LoginRateLimit_Max int `env:"LOGIN_RATE_LIMIT_MAX" envDefault:"5"`

	// Slowdown: vượt ngưỡng mềm trong window thì chèn delay tăng dần thay vì chặn cứng
	Slowdown_Threshold  int `env:"SLOWDOWN_THRESHOLD" envDefault:"50"`      // Số request bắt đầu bị làm chậm
	Slowdown_StepMs     int `env:"SLOWDOWN_STEP_MS" envDefault:"100"`       // Delay cộng thêm cho mỗi request vượt ngưỡng (ms)
	Slowdown_MaxDelayMs int `env:"SLOWDOWN_MAX_DELAY_MS" envDefault:"2000"` // Delay tối đa (ms)

	// Frontend URL
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"` // URL frontend

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)

	// Tài khoản admin mặc định (chỉ tạo khi collection users rỗng)
	Admin_Username string `env:"ADMIN_USERNAME" envDefault:"admin"`
	Admin_Password string `env:"ADMIN_PASSWORD"`
}

// IsProduction cho biết server có đang chạy ở môi trường production không.
// Một số chính sách (CORS same-host, rate limit nới lỏng, HSTS) phụ thuộc giá trị này.
func (c *Configuration) IsProduction() bool {
	return c.Environment == "production"
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	envName := os.Getenv("GO_ENV")
	if envName == "" {
		envName = "development"
	}

	// Tìm thư mục config/env từ working directory đi lên
	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		envFile := filepath.Join(currentDir, "config", "env", envName+".env")
		if _, err := os.Stat(envFile); err == nil {
			return envFile
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig nạp file env (nếu có) rồi parse environment variables thành Configuration.
func NewConfig() (*Configuration, error) {
	if envPath := getEnvPath(); envPath != "" {
		// Lỗi load file env không chặn khởi động — biến môi trường hệ thống vẫn dùng được
		_ = godotenv.Load(envPath)
	}

	cfg := &Configuration{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}
	return cfg, nil
}
