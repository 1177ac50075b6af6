// Package hrmhdl - handler cho domain HRM.
// Phần lớn handler kế thừa CRUD từ BaseHandler; các nghiệp vụ đặc thù
// (chấm công, duyệt đơn, thông báo cá nhân) có method riêng.
package hrmhdl

import (
	"fmt"

	basehdl "hrm_portal/internal/api/base/handler"
	hrmdto "hrm_portal/internal/api/hrm/dto"
	"hrm_portal/internal/api/hrm/models"
	hrmsvc "hrm_portal/internal/api/hrm/service"

	"github.com/gofiber/fiber/v3"
)

// EmployeeHandler xử lý các route hồ sơ nhân viên.
type EmployeeHandler struct {
	*basehdl.BaseHandler[models.Employee, hrmdto.EmployeeCreateInput, hrmdto.EmployeeUpdateInput]
	EmployeeService *hrmsvc.EmployeeService
}

// NewEmployeeHandler tạo một instance mới của EmployeeHandler
func NewEmployeeHandler() (*EmployeeHandler, error) {
	svc, err := hrmsvc.NewEmployeeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create employee service: %v", err)
	}
	return &EmployeeHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Employee, hrmdto.EmployeeCreateInput, hrmdto.EmployeeUpdateInput](svc),
		EmployeeService: svc,
	}, nil
}

// InsertOne override base để set mặc định status = active khi không truyền.
func (h *EmployeeHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input hrmdto.EmployeeCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if input.Status == "" {
			input.Status = models.EmployeeStatusActive
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

// HandleGetMyRecord trả về hồ sơ nhân viên gắn với tài khoản đang đăng nhập.
func (h *EmployeeHandler) HandleGetMyRecord(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		emp, err := h.EmployeeService.FindByUserID(c.Context(), userID)
		h.HandleResponse(c, emp, err)
		return nil
	})
}
