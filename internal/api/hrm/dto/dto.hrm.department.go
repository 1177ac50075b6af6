package hrmdto

// DepartmentCreateInput dữ liệu tạo phòng ban.
type DepartmentCreateInput struct {
	Name        string `json:"name" validate:"required,min=2,max=128,no_xss"`
	Code        string `json:"code" validate:"omitempty,max=32,no_xss"`
	Description string `json:"description" validate:"omitempty,max=1024,no_xss"`
	ManagerID   string `json:"managerId" validate:"omitempty,len=24,hexadecimal"`
	ParentID    string `json:"parentId" validate:"omitempty,len=24,hexadecimal"`
}

// DepartmentUpdateInput dữ liệu cập nhật phòng ban (partial update).
type DepartmentUpdateInput struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=128,no_xss"`
	Code        *string `json:"code,omitempty" validate:"omitempty,max=32,no_xss"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1024,no_xss"`
	ManagerID   *string `json:"managerId,omitempty" validate:"omitempty,len=24,hexadecimal"`
	ParentID    *string `json:"parentId,omitempty" validate:"omitempty,len=24,hexadecimal"`
}
