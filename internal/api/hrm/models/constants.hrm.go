// Package models - Constants dùng chung cho domain HRM.
package models

// Trạng thái của đơn nghỉ phép và đề nghị thanh toán.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Trạng thái làm việc của nhân viên.
const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
)

// Loại nghỉ phép.
const (
	LeaveTypeAnnual    = "annual"
	LeaveTypeSick      = "sick"
	LeaveTypeUnpaid    = "unpaid"
	LeaveTypeMaternity = "maternity"
	LeaveTypeOther     = "other"
)
