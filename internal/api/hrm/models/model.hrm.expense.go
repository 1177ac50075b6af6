// Package models - Expense thuộc domain HRM (hrm_expenses).
// Đề nghị thanh toán: cùng vòng đời duyệt pending -> approved/rejected như đơn nghỉ phép.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense lưu đề nghị thanh toán (hrm_expenses).
type Expense struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	EmployeeID  primitive.ObjectID `json:"employeeId" bson:"employeeId" index:"compound:hrm_expense_emp_status"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Amount      float64            `json:"amount" bson:"amount"`
	Currency    string             `json:"currency,omitempty" bson:"currency,omitempty"` // Mặc định VND
	SpentAt     string             `json:"spentAt,omitempty" bson:"spentAt,omitempty"`   // YYYY-MM-DD ngày phát sinh chi phí

	// Duyệt
	Status     string              `json:"status" bson:"status" index:"compound:hrm_expense_emp_status"` // pending | approved | rejected
	ReviewerID *primitive.ObjectID `json:"reviewerId,omitempty" bson:"reviewerId,omitempty"`
	ReviewNote string              `json:"reviewNote,omitempty" bson:"reviewNote,omitempty"`
	ReviewedAt int64               `json:"reviewedAt,omitempty" bson:"reviewedAt,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
