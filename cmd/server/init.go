package main

import (
	"context"

	"hrm_portal/config"
	"hrm_portal/internal/database"
	"hrm_portal/internal/global"

	"github.com/sirupsen/logrus"
)

// InitGlobal khởi tạo các biến toàn cục theo thứ tự phụ thuộc.
func InitGlobal() {
	initColNames()         // Tên các collection trong database
	initValidator()        // Validator với các rule custom
	initConfig()           // Cấu hình server từ env
	initDatabase_MongoDB() // Kết nối database + index
}

// initColNames khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "auth_users"

	// Domain HRM (tiền tố hrm_)
	global.MongoDB_ColNames.Employees = "hrm_employees"
	global.MongoDB_ColNames.Departments = "hrm_departments"
	global.MongoDB_ColNames.Attendance = "hrm_attendance"
	global.MongoDB_ColNames.Leaves = "hrm_leaves"
	global.MongoDB_ColNames.Expenses = "hrm_expenses"
	global.MongoDB_ColNames.Announcements = "hrm_announcements"
	global.MongoDB_ColNames.Holidays = "hrm_holidays"
	global.MongoDB_ColNames.Notifications = "hrm_notifications"

	logrus.Info("Initialized collection names")
}

// initValidator đăng ký các custom validator (no_xss, strong_password, hrm_role)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig khởi tạo cấu hình server
func initConfig() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to initialize config: %v", err)
	}
	global.MongoDB_ServerConfig = cfg
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB khởi tạo kết nối database và tạo index
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	if err := database.CreateHrmIndexes(context.TODO(), global.MongoDB_Session.Database(dbName)); err != nil {
		logrus.Fatalf("Failed to create indexes: %v", err)
	}
	logrus.Info("Ensured database indexes")
}
