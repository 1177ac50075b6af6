// Package models - Notification thuộc domain HRM (hrm_notifications).
// Thông báo cá nhân gửi tới từng user (kết quả duyệt đơn, nhắc việc...).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification lưu thông báo cá nhân (hrm_notifications).
type Notification struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	RecipientID primitive.ObjectID `json:"recipientId" bson:"recipientId" index:"compound:hrm_notification_recipient"`
	Title       string             `json:"title" bson:"title"`
	Content     string             `json:"content,omitempty" bson:"content,omitempty"`
	RefType     string             `json:"refType,omitempty" bson:"refType,omitempty"` // leave | expense | announcement | system
	RefID       *primitive.ObjectID `json:"refId,omitempty" bson:"refId,omitempty"`    // Document liên quan

	Read   bool  `json:"read" bson:"read" index:"compound:hrm_notification_recipient"`
	ReadAt int64 `json:"readAt,omitempty" bson:"readAt,omitempty"` // Unix milli

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
