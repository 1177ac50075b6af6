package hrmdto

// HolidayCreateInput dữ liệu tạo ngày nghỉ lễ.
type HolidayCreateInput struct {
	Name string `json:"name" validate:"required,min=2,max=128,no_xss"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Paid bool   `json:"paid"`
}

// HolidayUpdateInput dữ liệu cập nhật ngày nghỉ lễ (partial update).
type HolidayUpdateInput struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2,max=128,no_xss"`
	Date *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Paid *bool   `json:"paid,omitempty"`
}
