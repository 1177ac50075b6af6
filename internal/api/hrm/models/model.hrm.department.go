// Package models - Department thuộc domain HRM (hrm_departments).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Department lưu phòng ban (hrm_departments).
type Department struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name        string              `json:"name" bson:"name"`
	Code        string              `json:"code,omitempty" bson:"code,omitempty"`
	Description string              `json:"description,omitempty" bson:"description,omitempty"`
	ManagerID   *primitive.ObjectID `json:"managerId,omitempty" bson:"managerId,omitempty"` // Trưởng phòng (hrm_employees)
	ParentID    *primitive.ObjectID `json:"parentId,omitempty" bson:"parentId,omitempty"`   // Phòng ban cha, nil nếu là gốc

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
