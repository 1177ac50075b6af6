package hrmhdl

import (
	"fmt"

	basehdl "hrm_portal/internal/api/base/handler"
	hrmdto "hrm_portal/internal/api/hrm/dto"
	"hrm_portal/internal/api/hrm/models"
	hrmsvc "hrm_portal/internal/api/hrm/service"
)

// HolidayHandler xử lý các route ngày nghỉ lễ. CRUD thuần qua BaseHandler.
type HolidayHandler struct {
	*basehdl.BaseHandler[models.Holiday, hrmdto.HolidayCreateInput, hrmdto.HolidayUpdateInput]
}

// NewHolidayHandler tạo một instance mới của HolidayHandler
func NewHolidayHandler() (*HolidayHandler, error) {
	svc, err := hrmsvc.NewHolidayService()
	if err != nil {
		return nil, fmt.Errorf("failed to create holiday service: %v", err)
	}
	return &HolidayHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Holiday, hrmdto.HolidayCreateInput, hrmdto.HolidayUpdateInput](svc),
	}, nil
}
