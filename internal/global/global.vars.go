// Package global chứa các biến dùng chung toàn ứng dụng: cấu hình server,
// session MongoDB, registry collections và validator.
package global

import (
	"hrm_portal/config"
	"hrm_portal/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// MongoDB_ServerConfig cấu hình server, nạp một lần khi khởi động
	MongoDB_ServerConfig *config.Configuration

	// MongoDB_Session client MongoDB dùng chung
	MongoDB_Session *mongo.Client

	// RegistryCollections registry chứa các collection đã đăng ký
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()

	// Validate validator instance dùng chung (khởi tạo qua InitValidator)
	Validate *validator.Validate
)

// colNames chứa tên các collection trong database
type colNames struct {
	Users         string
	Employees     string
	Departments   string
	Attendance    string
	Leaves        string
	Expenses      string
	Announcements string
	Holidays      string
	Notifications string
}

// MongoDB_ColNames tên các collection, gán giá trị trong cmd/server/init.go
var MongoDB_ColNames colNames
