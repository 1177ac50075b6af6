// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình tài khoản đăng nhập.
// Password giữ bcrypt hash, không bao giờ serialize ra JSON.
// Role là một trong ba giá trị cố định: admin | manager | employee.
type User struct {
	ID             primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Username       string              `json:"username" bson:"username" index:"unique"`
	FullName       string              `json:"fullName" bson:"fullName"`
	Password       string              `json:"-" bson:"password,omitempty"`
	Role           string              `json:"role" bson:"role"`
	DepartmentID   *primitive.ObjectID `json:"departmentId,omitempty" bson:"departmentId,omitempty"`
	OrganizationID *primitive.ObjectID `json:"organizationId,omitempty" bson:"organizationId,omitempty"`
	Active         bool                `json:"active" bson:"active"`
	CreatedAt      int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64               `json:"updatedAt" bson:"updatedAt"`
}

// SanitizedUser là projection an toàn của User trả về cho client sau khi đăng nhập.
// Chỉ chứa các field định danh, tuyệt đối không chứa password hash.
type SanitizedUser struct {
	ID             primitive.ObjectID  `json:"id"`
	Username       string              `json:"username"`
	FullName       string              `json:"fullName"`
	Role           string              `json:"role"`
	DepartmentID   *primitive.ObjectID `json:"departmentId,omitempty"`
	OrganizationID *primitive.ObjectID `json:"organizationId,omitempty"`
	Active         bool                `json:"active"`
}

// Sanitize trả về projection an toàn của user
func (u *User) Sanitize() SanitizedUser {
	return SanitizedUser{
		ID:             u.ID,
		Username:       u.Username,
		FullName:       u.FullName,
		Role:           u.Role,
		DepartmentID:   u.DepartmentID,
		OrganizationID: u.OrganizationID,
		Active:         u.Active,
	}
}
