package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"hrm_portal/config"
	authrouter "hrm_portal/internal/api/auth/router"
	hrmrouter "hrm_portal/internal/api/hrm/router"
	"hrm_portal/internal/api/middleware"
	"hrm_portal/internal/api/router"
	"hrm_portal/internal/common"
	"hrm_portal/internal/global"
	"hrm_portal/internal/logger"
)

// pipelineStage là một stage có tên trong chuỗi middleware bảo mật.
// Toàn bộ pipeline được khai báo thành một danh sách có thứ tự thay vì
// rải rác qua các lần gọi Use — thứ tự chạy đọc được ngay từ danh sách.
type pipelineStage struct {
	name    string
	handler fiber.Handler
}

// InitFiberApp khởi tạo ứng dụng Fiber với chuỗi middleware bảo mật.
//
// Thứ tự middleware là một phần của thiết kế, không đổi chỗ tùy tiện:
// request-id -> security headers -> CORS -> origin check -> sanitize ->
// HPP -> rate limit chung -> slowdown -> recover -> response filter.
// Giới hạn body 10MB do BodyLimit của Fiber đảm nhiệm, ErrorHandler
// map lỗi 413 về envelope chuẩn.
func InitFiberApp() *fiber.App {
	cfg := global.MongoDB_ServerConfig

	app := fiber.New(fiber.Config{
		// Cấu hình cơ bản
		AppName:       "HRM Portal API",
		ServerHeader:  "HRM Portal API",
		StrictRouting: false,
		CaseSensitive: true,
		UnescapePath:  true,

		// Performance
		BodyLimit:       10 * 1024 * 1024, // Max size của request body (10MB)
		Concurrency:     256 * 1024,
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,

		// Timeouts
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		ErrorHandler: fiberErrorHandler,
	})

	// Store đếm request dùng chung cho rate limit login và slowdown
	store := middleware.NewMemoryCounterStore()

	// Pipeline bảo mật: danh sách có thứ tự, đăng ký một lượt ở cuối.
	// Stage nào từ chối request thì request dừng tại stage đó.
	stages := []pipelineStage{
		{"request-id", requestid.New(requestid.Config{
			Header: "X-Request-ID",
			Generator: func() string {
				return fmt.Sprintf("%d", time.Now().UnixNano())
			},
		})},
		{"security-headers", middleware.SecurityHeaders()},
		// CORS đặt trước origin check để xử lý preflight requests
		{"cors", cors.New(corsConfig(cfg))},
		{"origin-check", middleware.OriginCheck()},
		{"sanitize", middleware.SanitizeMiddleware()},
		{"hpp", middleware.HppMiddleware()},
	}

	// Rate limit chung theo IP (ngoài production nới lỏng x10)
	if cfg.RateLimit_Enabled && cfg.RateLimit_Max > 0 {
		rateLimitMax := cfg.RateLimit_Max
		if !cfg.IsProduction() {
			rateLimitMax *= 10
		}
		stages = append(stages, pipelineStage{"rate-limit", limiter.New(limiter.Config{
			Max:        rateLimitMax,
			Expiration: time.Duration(cfg.RateLimit_Window) * time.Second,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(common.StatusTooManyRequests).JSON(fiber.Map{
					"code":    common.ErrCodeRateLimit.Code,
					"message": common.MsgTooManyRequests,
					"status":  "error",
				})
			},
			Next: func(c fiber.Ctx) bool {
				// Bỏ qua health check và preflight requests
				return strings.HasSuffix(c.Path(), "/health") || c.Method() == "OPTIONS"
			},
		})})
		logger.GetAppLogger().Infof("Rate limiting enabled: %d requests per %d seconds", rateLimitMax, cfg.RateLimit_Window)
	} else {
		logger.GetAppLogger().Info("Rate limiting disabled")
	}

	stages = append(stages,
		// Làm chậm dần client gửi quá nhiều request thay vì chặn hẳn
		pipelineStage{"slowdown", middleware.Slowdown(store)},
		// Bắt panic, log stack trace và trả lỗi chuẩn
		pipelineStage{"recover", recover.New(recover.Config{
			EnableStackTrace: true,
			StackTraceHandler: func(c fiber.Ctx, e interface{}) {
				logger.WithRequest(c).WithFields(map[string]interface{}{
					"panic": e,
				}).Error("Panic recovered")

				c.Status(common.StatusInternalServerError).JSON(fiber.Map{
					"code":    common.ErrCodeInternalServer.Code,
					"message": common.MsgInternalError,
					"status":  "error",
				})
			},
			Next: func(c fiber.Ctx) bool {
				return strings.HasSuffix(c.Path(), "/health")
			},
		})},
		// Gỡ các key nhạy cảm khỏi body JSON trả về
		pipelineStage{"response-filter", middleware.ResponseFilter()},
	)

	stageNames := make([]string, len(stages))
	for i, stage := range stages {
		app.Use(stage.handler)
		stageNames[i] = stage.name
	}
	logger.GetAppLogger().Infof("Security pipeline: %s", strings.Join(stageNames, " -> "))

	// Rate limit riêng cho login (IP + username), gán trước khi đăng ký route
	authrouter.LoginLimiter = []fiber.Handler{middleware.LoginRateLimit(store)}

	if err := router.SetupRoutes(app, authrouter.Register, hrmrouter.Register); err != nil {
		logger.GetAppLogger().Fatalf("Failed to setup routes: %v", err)
	}

	return app
}

// corsConfig dựng cấu hình CORS từ danh sách origin trong config.
func corsConfig(cfg *config.Configuration) cors.Config {
	var allowOrigins []string
	if cfg.CORS_Origins == "*" {
		allowOrigins = []string{"*"}
	} else {
		allowOrigins = strings.Split(cfg.CORS_Origins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}

	return cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
			"X-Requested-With",
		},
		AllowCredentials: cfg.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "Content-Range", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}
}

// fiberErrorHandler trả lỗi theo envelope chuẩn {code, message, status}.
func fiberErrorHandler(c fiber.Ctx, err error) error {
	code := common.StatusInternalServerError
	message := common.MsgInternalError
	errorCode := common.ErrCodeInternalServer.Code

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
		switch code {
		case common.StatusBadRequest:
			errorCode = common.ErrCodeValidationInput.Code
		case common.StatusUnauthorized:
			errorCode = common.ErrCodeAuthToken.Code
		case common.StatusForbidden:
			errorCode = common.ErrCodeAuthRole.Code
		case common.StatusNotFound:
			errorCode = common.ErrCodeDatabaseQuery.Code
		case common.StatusConflict:
			errorCode = common.ErrCodeDatabaseQuery.Code
		case common.StatusPayloadTooLarge:
			// Body vượt BodyLimit 10MB
			customErr := common.ErrPayloadTooLarge.(*common.Error)
			errorCode = customErr.Code.Code
			message = customErr.Message
		}
	}

	logger.WithRequest(c).WithFields(map[string]interface{}{
		"code":      code,
		"errorCode": errorCode,
		"message":   message,
	}).Error("Request error")

	return c.Status(code).JSON(fiber.Map{
		"code":    errorCode,
		"message": message,
		"status":  "error",
	})
}
