package hrmhdl

import (
	"fmt"

	basehdl "hrm_portal/internal/api/base/handler"
	hrmdto "hrm_portal/internal/api/hrm/dto"
	"hrm_portal/internal/api/hrm/models"
	hrmsvc "hrm_portal/internal/api/hrm/service"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
)

// NotificationHandler xử lý các route thông báo cá nhân.
type NotificationHandler struct {
	*basehdl.BaseHandler[models.Notification, hrmdto.NotificationCreateInput, hrmdto.NotificationUpdateInput]
	NotificationService *hrmsvc.NotificationService
}

// NewNotificationHandler tạo một instance mới của NotificationHandler
func NewNotificationHandler() (*NotificationHandler, error) {
	svc, err := hrmsvc.NewNotificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %v", err)
	}
	return &NotificationHandler{
		BaseHandler:         basehdl.NewBaseHandler[models.Notification, hrmdto.NotificationCreateInput, hrmdto.NotificationUpdateInput](svc),
		NotificationService: svc,
	}, nil
}

// HandleMyNotifications trả về thông báo của user đang đăng nhập, mới nhất trước.
// Query ?unread=true chỉ trả các thông báo chưa đọc.
func (h *NotificationHandler) HandleMyNotifications(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		filter := bson.M{"recipientId": userID}
		if c.Query("unread") == "true" {
			filter["read"] = false
		}

		page, limit := basehdl.ParsePagination(c)
		result, err := h.NotificationService.FindWithPagination(c.Context(), filter, page, limit, basehdl.SortByNewest("createdAt"))
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleMarkRead đánh dấu một thông báo của chính user là đã đọc.
func (h *NotificationHandler) HandleMarkRead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		userID, err := currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		notif, err := h.NotificationService.MarkRead(c.Context(), id, userID)
		h.HandleResponse(c, notif, err)
		return nil
	})
}
