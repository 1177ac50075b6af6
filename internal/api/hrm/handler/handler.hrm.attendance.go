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

// AttendanceHandler xử lý các route chấm công.
type AttendanceHandler struct {
	*basehdl.BaseHandler[models.Attendance, hrmdto.AttendanceCreateInput, hrmdto.AttendanceUpdateInput]
	AttendanceService *hrmsvc.AttendanceService
	EmployeeService   *hrmsvc.EmployeeService
}

// NewAttendanceHandler tạo một instance mới của AttendanceHandler
func NewAttendanceHandler() (*AttendanceHandler, error) {
	svc, err := hrmsvc.NewAttendanceService()
	if err != nil {
		return nil, fmt.Errorf("failed to create attendance service: %v", err)
	}
	empSvc, err := hrmsvc.NewEmployeeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create employee service: %v", err)
	}
	return &AttendanceHandler{
		BaseHandler:       basehdl.NewBaseHandler[models.Attendance, hrmdto.AttendanceCreateInput, hrmdto.AttendanceUpdateInput](svc),
		AttendanceService: svc,
		EmployeeService:   empSvc,
	}, nil
}

// parseCheckInOut đọc body tùy chọn {note}. Body rỗng vẫn hợp lệ.
func (h *AttendanceHandler) parseCheckInOut(c fiber.Ctx) (hrmdto.CheckInOutInput, error) {
	var input hrmdto.CheckInOutInput
	if len(c.Body()) == 0 {
		return input, nil
	}
	if err := h.ParseRequestBody(c, &input); err != nil {
		return input, err
	}
	if err := h.ValidateInput(&input); err != nil {
		return input, err
	}
	return input, nil
}

// HandleCheckIn nhân viên tự check-in cho ngày hiện tại.
func (h *AttendanceHandler) HandleCheckIn(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		emp, err := currentEmployee(c.Context(), c, h.EmployeeService)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input, err := h.parseCheckInOut(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		record, err := h.AttendanceService.CheckIn(c.Context(), emp.ID, input.Note)
		h.HandleResponse(c, record, err)
		return nil
	})
}

// HandleCheckOut nhân viên tự check-out cho ngày hiện tại.
func (h *AttendanceHandler) HandleCheckOut(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		emp, err := currentEmployee(c.Context(), c, h.EmployeeService)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input, err := h.parseCheckInOut(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		record, err := h.AttendanceService.CheckOut(c.Context(), emp.ID, input.Note)
		h.HandleResponse(c, record, err)
		return nil
	})
}

// HandleMyAttendance trả về lịch sử chấm công của chính nhân viên, mới nhất trước.
func (h *AttendanceHandler) HandleMyAttendance(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		emp, err := currentEmployee(c.Context(), c, h.EmployeeService)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := basehdl.ParsePagination(c)
		result, err := h.AttendanceService.FindWithPagination(c.Context(), bson.M{"employeeId": emp.ID}, page, limit, basehdl.SortByNewest("date"))
		h.HandleResponse(c, result, err)
		return nil
	})
}
