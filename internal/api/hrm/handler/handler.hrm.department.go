package hrmhdl

import (
	"fmt"

	basehdl "hrm_portal/internal/api/base/handler"
	hrmdto "hrm_portal/internal/api/hrm/dto"
	"hrm_portal/internal/api/hrm/models"
	hrmsvc "hrm_portal/internal/api/hrm/service"
)

// DepartmentHandler xử lý các route phòng ban. CRUD thuần qua BaseHandler.
type DepartmentHandler struct {
	*basehdl.BaseHandler[models.Department, hrmdto.DepartmentCreateInput, hrmdto.DepartmentUpdateInput]
}

// NewDepartmentHandler tạo một instance mới của DepartmentHandler
func NewDepartmentHandler() (*DepartmentHandler, error) {
	svc, err := hrmsvc.NewDepartmentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create department service: %v", err)
	}
	return &DepartmentHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Department, hrmdto.DepartmentCreateInput, hrmdto.DepartmentUpdateInput](svc),
	}, nil
}
