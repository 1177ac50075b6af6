// Package models - Announcement thuộc domain HRM (hrm_announcements).
// Thông báo chung toàn công ty, mọi tài khoản đã đăng nhập đều đọc được.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement lưu thông báo chung (hrm_announcements).
type Announcement struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Title    string              `json:"title" bson:"title"`
	Content  string              `json:"content" bson:"content"`
	AuthorID *primitive.ObjectID `json:"authorId,omitempty" bson:"authorId,omitempty"` // User tạo thông báo
	Pinned   bool                `json:"pinned" bson:"pinned"`                         // Ghim lên đầu danh sách

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
