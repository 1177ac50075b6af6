package hrmdto

// LeaveCreateInput dữ liệu tạo đơn nghỉ phép. Đơn mới luôn ở trạng thái pending.
type LeaveCreateInput struct {
	EmployeeID string `json:"employeeId" validate:"required,len=24,hexadecimal"`
	LeaveType  string `json:"leaveType" validate:"required,oneof=annual sick unpaid maternity other"`
	StartDate  string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Reason     string `json:"reason" validate:"omitempty,max=1024,no_xss"`
}

// LeaveUpdateInput dữ liệu sửa đơn nghỉ phép khi còn pending (partial update).
type LeaveUpdateInput struct {
	LeaveType *string `json:"leaveType,omitempty" validate:"omitempty,oneof=annual sick unpaid maternity other"`
	StartDate *string `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Reason    *string `json:"reason,omitempty" validate:"omitempty,max=1024,no_xss"`
}

// ReviewInput dữ liệu duyệt/từ chối dùng chung cho leave và expense.
type ReviewInput struct {
	Note string `json:"note" validate:"omitempty,max=1024,no_xss"`
}
