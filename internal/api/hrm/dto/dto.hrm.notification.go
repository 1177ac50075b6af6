package hrmdto

// NotificationCreateInput dữ liệu tạo thông báo cá nhân (admin/hệ thống gửi).
type NotificationCreateInput struct {
	RecipientID string `json:"recipientId" validate:"required,len=24,hexadecimal"`
	Title       string `json:"title" validate:"required,min=2,max=256,no_xss"`
	Content     string `json:"content" validate:"omitempty,max=2048,no_xss"`
	RefType     string `json:"refType" validate:"omitempty,oneof=leave expense announcement system"`
	RefID       string `json:"refId" validate:"omitempty,len=24,hexadecimal"`
}

// NotificationUpdateInput dữ liệu cập nhật thông báo cá nhân (partial update).
type NotificationUpdateInput struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=2,max=256,no_xss"`
	Content *string `json:"content,omitempty" validate:"omitempty,max=2048,no_xss"`
}
