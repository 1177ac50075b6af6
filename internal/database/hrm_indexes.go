// Package database - Kết nối MongoDB và các index phục vụ truy vấn HRM.
package database

import (
	"context"
	"strings"

	"hrm_portal/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateHrmIndexes tạo các index cho các collection HRM.
// Gọi một lần khi khởi động server, sau khi kết nối database thành công.
func CreateHrmIndexes(ctx context.Context, db *mongo.Database) error {
	// auth_users: username unique — đảm bảo không trùng tài khoản đăng nhập
	users := db.Collection(global.MongoDB_ColNames.Users)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetName("auth_user_username").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// hrm_employees: (departmentId, status) — danh sách nhân viên theo phòng ban
	employees := db.Collection(global.MongoDB_ColNames.Employees)
	if _, err := employees.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "departmentId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("hrm_employee_dept_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// hrm_employees: userId sparse — tra cứu hồ sơ nhân viên từ tài khoản đăng nhập
	if _, err := employees.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetName("hrm_employee_user").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// hrm_attendance: (employeeId, date) unique — mỗi nhân viên một bản ghi chấm công mỗi ngày
	attendance := db.Collection(global.MongoDB_ColNames.Attendance)
	if _, err := attendance.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "employeeId", Value: 1},
			{Key: "date", Value: 1},
		},
		Options: options.Index().SetName("hrm_attendance_employee_date").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// hrm_leaves: (employeeId, status) — duyệt đơn nghỉ phép theo nhân viên
	leaves := db.Collection(global.MongoDB_ColNames.Leaves)
	if _, err := leaves.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "employeeId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("hrm_leave_employee_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// hrm_expenses: (employeeId, status) — duyệt đề nghị thanh toán theo nhân viên
	expenses := db.Collection(global.MongoDB_ColNames.Expenses)
	if _, err := expenses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "employeeId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("hrm_expense_employee_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// hrm_notifications: (recipientId, read) — đếm thông báo chưa đọc
	notifications := db.Collection(global.MongoDB_ColNames.Notifications)
	if _, err := notifications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "recipientId", Value: 1},
			{Key: "read", Value: 1},
		},
		Options: options.Index().SetName("hrm_notification_recipient_read"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// hrm_holidays: date — lịch nghỉ lễ theo ngày
	holidays := db.Collection(global.MongoDB_ColNames.Holidays)
	if _, err := holidays.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: 1}},
		Options: options.Index().SetName("hrm_holiday_date"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
