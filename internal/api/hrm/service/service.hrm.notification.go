package hrmsvc

import (
	"context"
	"fmt"
	"time"

	basesvc "hrm_portal/internal/api/base/service"
	"hrm_portal/internal/api/hrm/models"
	"hrm_portal/internal/common"
	"hrm_portal/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationService xử lý nghiệp vụ thông báo cá nhân.
type NotificationService struct {
	*basesvc.BaseServiceMongoImpl[models.Notification]
}

// NewNotificationService tạo mới NotificationService.
func NewNotificationService() (*NotificationService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Notifications)
	if !exist {
		return nil, fmt.Errorf("failed to get notifications collection: %v", common.ErrNotFound)
	}
	return &NotificationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Notification](col),
	}, nil
}

// MarkRead đánh dấu một thông báo là đã đọc.
// Chỉ chủ sở hữu (recipientId trùng với user trong token) mới được đánh dấu.
func (s *NotificationService) MarkRead(ctx context.Context, id, recipientID primitive.ObjectID) (models.Notification, error) {
	now := time.Now().UnixMilli()
	filter := bson.M{"_id": id, "recipientId": recipientID}
	update := bson.M{"$set": bson.M{
		"read":      true,
		"readAt":    now,
		"updatedAt": now,
	}}
	return s.UpdateOne(ctx, filter, update, nil)
}

// NotifyReview tạo thông báo kết quả duyệt đơn cho user nhận.
// Lỗi khi tạo thông báo không làm fail nghiệp vụ chính — caller tự log warning.
func (s *NotificationService) NotifyReview(ctx context.Context, recipientID primitive.ObjectID, refType string, refID primitive.ObjectID, title string) error {
	notif := models.Notification{
		RecipientID: recipientID,
		Title:       title,
		RefType:     refType,
		RefID:       &refID,
		Read:        false,
	}
	_, err := s.InsertOne(ctx, notif)
	return err
}
