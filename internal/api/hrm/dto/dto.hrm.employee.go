// Package hrmdto - Input cho các API domain HRM.
// Mọi input đều validate qua global.Validate trước khi chuyển thành model.
package hrmdto

// EmployeeCreateInput dữ liệu tạo hồ sơ nhân viên.
type EmployeeCreateInput struct {
	Code         string `json:"code" validate:"omitempty,max=32,no_xss"`
	FullName     string `json:"fullName" validate:"required,min=2,max=128,no_xss"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"omitempty,max=20"`
	UserID       string `json:"userId" validate:"omitempty,len=24,hexadecimal"`
	DepartmentID string `json:"departmentId" validate:"required,len=24,hexadecimal"`
	ManagerID    string `json:"managerId" validate:"omitempty,len=24,hexadecimal"`
	Position     string `json:"position" validate:"omitempty,max=128,no_xss"`
	JoinDate     int64  `json:"joinDate" validate:"omitempty,gt=0"`
	Status       string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// EmployeeUpdateInput dữ liệu cập nhật hồ sơ nhân viên. Field nil sẽ bị bỏ qua (partial update).
type EmployeeUpdateInput struct {
	Code         *string `json:"code,omitempty" validate:"omitempty,max=32,no_xss"`
	FullName     *string `json:"fullName,omitempty" validate:"omitempty,min=2,max=128,no_xss"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	UserID       *string `json:"userId,omitempty" validate:"omitempty,len=24,hexadecimal"`
	DepartmentID *string `json:"departmentId,omitempty" validate:"omitempty,len=24,hexadecimal"`
	ManagerID    *string `json:"managerId,omitempty" validate:"omitempty,len=24,hexadecimal"`
	Position     *string `json:"position,omitempty" validate:"omitempty,max=128,no_xss"`
	JoinDate     *int64  `json:"joinDate,omitempty" validate:"omitempty,gt=0"`
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}
