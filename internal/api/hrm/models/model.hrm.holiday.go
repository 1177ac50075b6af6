// Package models - Holiday thuộc domain HRM (hrm_holidays).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Holiday lưu ngày nghỉ lễ của công ty (hrm_holidays).
type Holiday struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name string `json:"name" bson:"name"`
	Date string `json:"date" bson:"date" index:"single:1"` // YYYY-MM-DD
	Paid bool   `json:"paid" bson:"paid"`                  // Nghỉ có lương

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
