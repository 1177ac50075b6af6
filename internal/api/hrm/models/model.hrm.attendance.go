// Package models - Attendance thuộc domain HRM (hrm_attendance).
// Mỗi nhân viên có tối đa 1 bản ghi chấm công cho mỗi ngày (unique employeeId + date).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance lưu bản ghi chấm công theo ngày (hrm_attendance).
type Attendance struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	EmployeeID primitive.ObjectID `json:"employeeId" bson:"employeeId" index:"compound:hrm_attendance_day_unique"`
	Date       string             `json:"date" bson:"date" index:"compound:hrm_attendance_day_unique"` // YYYY-MM-DD theo giờ server

	CheckIn  int64  `json:"checkIn,omitempty" bson:"checkIn,omitempty"`   // Unix milli, 0 nếu chưa check-in
	CheckOut int64  `json:"checkOut,omitempty" bson:"checkOut,omitempty"` // Unix milli, 0 nếu chưa check-out
	Note     string `json:"note,omitempty" bson:"note,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
