package authdto

// UserLoginInput đầu vào đăng nhập người dùng.
type UserLoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserRegisterInput đầu vào đăng ký tài khoản mới.
type UserRegisterInput struct {
	Username       string `json:"username" validate:"required,min=3,max=64"`
	FullName       string `json:"fullName" validate:"required"`
	Password       string `json:"password" validate:"required,strong_password"`
	Role           string `json:"role" validate:"required,hrm_role"`
	DepartmentID   string `json:"departmentId,omitempty" validate:"omitempty,len=24,hexadecimal"`
	OrganizationID string `json:"organizationId,omitempty" validate:"omitempty,len=24,hexadecimal"`
}

// UserCreateInput đầu vào tạo người dùng (CRUD admin).
type UserCreateInput struct {
	Username       string `json:"username" validate:"required,min=3,max=64"`
	FullName       string `json:"fullName" validate:"required"`
	Password       string `json:"password" validate:"required,strong_password"`
	Role           string `json:"role" validate:"required,hrm_role"`
	DepartmentID   string `json:"departmentId,omitempty" validate:"omitempty,len=24,hexadecimal"`
	OrganizationID string `json:"organizationId,omitempty" validate:"omitempty,len=24,hexadecimal"`
	Active         bool   `json:"active"`
}

// UserChangeInfoInput đầu vào thay đổi thông tin người dùng.
type UserChangeInfoInput struct {
	FullName string `json:"fullName,omitempty"`
}
