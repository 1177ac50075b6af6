package hrmhdl

import (
	"fmt"

	basehdl "hrm_portal/internal/api/base/handler"
	hrmdto "hrm_portal/internal/api/hrm/dto"
	"hrm_portal/internal/api/hrm/models"
	hrmsvc "hrm_portal/internal/api/hrm/service"
	"hrm_portal/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
)

// LeaveHandler xử lý các route đơn nghỉ phép.
type LeaveHandler struct {
	*basehdl.BaseHandler[models.Leave, hrmdto.LeaveCreateInput, hrmdto.LeaveUpdateInput]
	LeaveService    *hrmsvc.LeaveService
	EmployeeService *hrmsvc.EmployeeService
}

// NewLeaveHandler tạo một instance mới của LeaveHandler
func NewLeaveHandler() (*LeaveHandler, error) {
	svc, err := hrmsvc.NewLeaveService()
	if err != nil {
		return nil, fmt.Errorf("failed to create leave service: %v", err)
	}
	empSvc, err := hrmsvc.NewEmployeeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create employee service: %v", err)
	}
	return &LeaveHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Leave, hrmdto.LeaveCreateInput, hrmdto.LeaveUpdateInput](svc),
		LeaveService:    svc,
		EmployeeService: empSvc,
	}, nil
}

// InsertOne override base để mọi đơn tạo mới luôn ở trạng thái pending,
// bất kể client gửi gì.
func (h *LeaveHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input, err := h.parseLeaveInput(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformCreateInputToModel(input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		model.Status = models.StatusPending

		data, err := h.BaseService.InsertOne(c.Context(), *model)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleRequestLeave nhân viên tự tạo đơn nghỉ phép.
// EmployeeID luôn lấy từ hồ sơ gắn với token, không tin employeeId trong body.
func (h *LeaveHandler) HandleRequestLeave(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		emp, err := currentEmployee(c.Context(), c, h.EmployeeService)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input hrmdto.LeaveCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		input.EmployeeID = emp.ID.Hex()
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if input.EndDate < input.StartDate {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Ngày kết thúc phải sau hoặc bằng ngày bắt đầu", common.StatusBadRequest, nil))
			return nil
		}

		model, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		model.Status = models.StatusPending

		data, err := h.BaseService.InsertOne(c.Context(), *model)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleMyLeaves trả về danh sách đơn nghỉ phép của chính nhân viên.
func (h *LeaveHandler) HandleMyLeaves(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		emp, err := currentEmployee(c.Context(), c, h.EmployeeService)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := basehdl.ParsePagination(c)
		result, err := h.LeaveService.FindWithPagination(c.Context(), bson.M{"employeeId": emp.ID}, page, limit, basehdl.SortByNewest("createdAt"))
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleApprove quản lý duyệt đơn nghỉ phép.
func (h *LeaveHandler) HandleApprove(c fiber.Ctx) error {
	return h.handleReview(c, true)
}

// HandleReject quản lý từ chối đơn nghỉ phép.
func (h *LeaveHandler) HandleReject(c fiber.Ctx) error {
	return h.handleReview(c, false)
}

func (h *LeaveHandler) handleReview(c fiber.Ctx, approve bool) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		reviewerID, err := currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input hrmdto.ReviewInput
		if len(c.Body()) > 0 {
			if err := h.ParseRequestBody(c, &input); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			if err := h.ValidateInput(&input); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}

		leave, err := h.LeaveService.Review(c.Context(), id, reviewerID, approve, input.Note)
		h.HandleResponse(c, leave, err)
		return nil
	})
}

// parseLeaveInput parse + validate LeaveCreateInput từ body.
func (h *LeaveHandler) parseLeaveInput(c fiber.Ctx) (*hrmdto.LeaveCreateInput, error) {
	var input hrmdto.LeaveCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return nil, err
	}
	if err := h.ValidateInput(&input); err != nil {
		return nil, err
	}
	if input.EndDate < input.StartDate {
		return nil, common.NewError(common.ErrCodeValidationInput, "Ngày kết thúc phải sau hoặc bằng ngày bắt đầu", common.StatusBadRequest, nil)
	}
	return &input, nil
}
