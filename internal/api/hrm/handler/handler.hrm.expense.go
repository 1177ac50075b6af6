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

// ExpenseHandler xử lý các route đề nghị thanh toán.
type ExpenseHandler struct {
	*basehdl.BaseHandler[models.Expense, hrmdto.ExpenseCreateInput, hrmdto.ExpenseUpdateInput]
	ExpenseService  *hrmsvc.ExpenseService
	EmployeeService *hrmsvc.EmployeeService
}

// NewExpenseHandler tạo một instance mới của ExpenseHandler
func NewExpenseHandler() (*ExpenseHandler, error) {
	svc, err := hrmsvc.NewExpenseService()
	if err != nil {
		return nil, fmt.Errorf("failed to create expense service: %v", err)
	}
	empSvc, err := hrmsvc.NewEmployeeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create employee service: %v", err)
	}
	return &ExpenseHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Expense, hrmdto.ExpenseCreateInput, hrmdto.ExpenseUpdateInput](svc),
		ExpenseService:  svc,
		EmployeeService: empSvc,
	}, nil
}

// InsertOne override base để mọi đề nghị tạo mới luôn ở trạng thái pending.
func (h *ExpenseHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input hrmdto.ExpenseCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.insertPending(c, &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleSubmitExpense nhân viên tự tạo đề nghị thanh toán.
// EmployeeID luôn lấy từ hồ sơ gắn với token.
func (h *ExpenseHandler) HandleSubmitExpense(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		emp, err := currentEmployee(c.Context(), c, h.EmployeeService)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input hrmdto.ExpenseCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		input.EmployeeID = emp.ID.Hex()
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.insertPending(c, &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// insertPending transform input -> model, ép status pending và default currency.
func (h *ExpenseHandler) insertPending(c fiber.Ctx, input *hrmdto.ExpenseCreateInput) (models.Expense, error) {
	var zero models.Expense
	model, err := h.TransformCreateInputToModel(input)
	if err != nil {
		return zero, err
	}
	model.Status = models.StatusPending
	if model.Currency == "" {
		model.Currency = "VND"
	}
	return h.BaseService.InsertOne(c.Context(), *model)
}

// HandleMyExpenses trả về danh sách đề nghị thanh toán của chính nhân viên.
func (h *ExpenseHandler) HandleMyExpenses(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		emp, err := currentEmployee(c.Context(), c, h.EmployeeService)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := basehdl.ParsePagination(c)
		result, err := h.ExpenseService.FindWithPagination(c.Context(), bson.M{"employeeId": emp.ID}, page, limit, basehdl.SortByNewest("createdAt"))
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleApprove quản lý duyệt đề nghị thanh toán.
func (h *ExpenseHandler) HandleApprove(c fiber.Ctx) error {
	return h.handleReview(c, true)
}

// HandleReject quản lý từ chối đề nghị thanh toán.
func (h *ExpenseHandler) HandleReject(c fiber.Ctx) error {
	return h.handleReview(c, false)
}

func (h *ExpenseHandler) handleReview(c fiber.Ctx, approve bool) error {
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

		expense, err := h.ExpenseService.Review(c.Context(), id, reviewerID, approve, input.Note)
		h.HandleResponse(c, expense, err)
		return nil
	})
}
