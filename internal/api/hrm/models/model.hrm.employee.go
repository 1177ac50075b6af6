// Package models - Employee thuộc domain HRM (hrm_employees).
// Lưu hồ sơ nhân viên, liên kết với tài khoản đăng nhập qua userId.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee lưu hồ sơ nhân viên (hrm_employees).
type Employee struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Identity
	Code     string `json:"code,omitempty" bson:"code,omitempty"` // Mã nhân viên nội bộ
	FullName string `json:"fullName" bson:"fullName"`
	Email    string `json:"email,omitempty" bson:"email,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`

	// Liên kết
	UserID       *primitive.ObjectID `json:"userId,omitempty" bson:"userId,omitempty" index:"single:1"`             // Tài khoản đăng nhập (auth_users), có thể chưa gắn
	DepartmentID primitive.ObjectID  `json:"departmentId" bson:"departmentId" index:"compound:hrm_employee_dept"`   // Phòng ban trực thuộc
	ManagerID    *primitive.ObjectID `json:"managerId,omitempty" bson:"managerId,omitempty"`                        // Quản lý trực tiếp

	// Công việc
	Position string `json:"position,omitempty" bson:"position,omitempty"`
	JoinDate int64  `json:"joinDate,omitempty" bson:"joinDate,omitempty"` // Unix milli
	Status   string `json:"status" bson:"status" index:"compound:hrm_employee_dept"` // active | inactive

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
