package hrmdto

// ExpenseCreateInput dữ liệu tạo đề nghị thanh toán. Đề nghị mới luôn ở trạng thái pending.
type ExpenseCreateInput struct {
	EmployeeID  string  `json:"employeeId" validate:"required,len=24,hexadecimal"`
	Title       string  `json:"title" validate:"required,min=2,max=256,no_xss"`
	Description string  `json:"description" validate:"omitempty,max=2048,no_xss"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"omitempty,len=3,alpha"`
	SpentAt     string  `json:"spentAt" validate:"omitempty,datetime=2006-01-02"`
}

// ExpenseUpdateInput dữ liệu sửa đề nghị thanh toán khi còn pending (partial update).
type ExpenseUpdateInput struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=2,max=256,no_xss"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2048,no_xss"`
	Amount      *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Currency    *string  `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
	SpentAt     *string  `json:"spentAt,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
