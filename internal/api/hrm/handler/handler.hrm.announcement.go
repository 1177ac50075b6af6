package hrmhdl

import (
	"fmt"

	basehdl "hrm_portal/internal/api/base/handler"
	hrmdto "hrm_portal/internal/api/hrm/dto"
	"hrm_portal/internal/api/hrm/models"
	hrmsvc "hrm_portal/internal/api/hrm/service"

	"github.com/gofiber/fiber/v3"
)

// AnnouncementHandler xử lý các route thông báo chung.
type AnnouncementHandler struct {
	*basehdl.BaseHandler[models.Announcement, hrmdto.AnnouncementCreateInput, hrmdto.AnnouncementUpdateInput]
}

// NewAnnouncementHandler tạo một instance mới của AnnouncementHandler
func NewAnnouncementHandler() (*AnnouncementHandler, error) {
	svc, err := hrmsvc.NewAnnouncementService()
	if err != nil {
		return nil, fmt.Errorf("failed to create announcement service: %v", err)
	}
	return &AnnouncementHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Announcement, hrmdto.AnnouncementCreateInput, hrmdto.AnnouncementUpdateInput](svc),
	}, nil
}

// InsertOne override base để gắn authorId từ user đang đăng nhập.
func (h *AnnouncementHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input hrmdto.AnnouncementCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Tác giả luôn là người gọi API, không tin authorId trong body
		if userID, err := currentUserID(c); err == nil {
			input.AuthorID = userID.Hex()
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.InsertOne(c.Context(), *model)
		h.HandleResponse(c, data, err)
		return nil
	})
}
