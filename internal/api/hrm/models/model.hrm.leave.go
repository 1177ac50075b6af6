// Package models - Leave thuộc domain HRM (hrm_leaves).
// Đơn nghỉ phép: nhân viên tạo ở trạng thái pending, quản lý duyệt hoặc từ chối.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Leave lưu đơn nghỉ phép (hrm_leaves).
type Leave struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	EmployeeID primitive.ObjectID `json:"employeeId" bson:"employeeId" index:"compound:hrm_leave_emp_status"`
	LeaveType  string             `json:"leaveType" bson:"leaveType"` // annual | sick | unpaid | maternity | other
	StartDate  string             `json:"startDate" bson:"startDate"` // YYYY-MM-DD
	EndDate    string             `json:"endDate" bson:"endDate"`     // YYYY-MM-DD
	Reason     string             `json:"reason,omitempty" bson:"reason,omitempty"`

	// Duyệt
	Status     string              `json:"status" bson:"status" index:"compound:hrm_leave_emp_status"` // pending | approved | rejected
	ReviewerID *primitive.ObjectID `json:"reviewerId,omitempty" bson:"reviewerId,omitempty"`           // User duyệt/từ chối
	ReviewNote string              `json:"reviewNote,omitempty" bson:"reviewNote,omitempty"`
	ReviewedAt int64               `json:"reviewedAt,omitempty" bson:"reviewedAt,omitempty"` // Unix milli

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
