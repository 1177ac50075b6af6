package hrmdto

// AttendanceCreateInput dữ liệu tạo bản ghi chấm công thủ công (admin sửa công).
type AttendanceCreateInput struct {
	EmployeeID string `json:"employeeId" validate:"required,len=24,hexadecimal"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	CheckIn    int64  `json:"checkIn" validate:"omitempty,gt=0"`
	CheckOut   int64  `json:"checkOut" validate:"omitempty,gt=0"`
	Note       string `json:"note" validate:"omitempty,max=512,no_xss"`
}

// AttendanceUpdateInput dữ liệu sửa bản ghi chấm công (partial update).
type AttendanceUpdateInput struct {
	CheckIn  *int64  `json:"checkIn,omitempty" validate:"omitempty,gt=0"`
	CheckOut *int64  `json:"checkOut,omitempty" validate:"omitempty,gt=0"`
	Note     *string `json:"note,omitempty" validate:"omitempty,max=512,no_xss"`
}

// CheckInOutInput dữ liệu nhân viên tự check-in/check-out trong ngày.
type CheckInOutInput struct {
	Note string `json:"note" validate:"omitempty,max=512,no_xss"`
}
