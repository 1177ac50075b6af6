package hrmhdl

import (
	"context"
	"errors"

	"hrm_portal/internal/api/hrm/models"
	hrmsvc "hrm_portal/internal/api/hrm/service"
	"hrm_portal/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// currentUserID lấy ObjectID của user đang đăng nhập từ Locals (AuthMiddleware đã gắn).
func currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return primitive.NilObjectID, common.ErrTokenMissing
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	return userID, nil
}

// currentEmployee suy ra hồ sơ nhân viên của user đang đăng nhập.
// Các route self-service đều đi qua đây để không bao giờ tin employeeId từ client.
func currentEmployee(ctx context.Context, c fiber.Ctx, employees *hrmsvc.EmployeeService) (models.Employee, error) {
	var zero models.Employee
	userID, err := currentUserID(c)
	if err != nil {
		return zero, err
	}

	emp, err := employees.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return zero, common.NewError(common.ErrCodeBusinessState, "Tài khoản chưa được gắn hồ sơ nhân viên", common.StatusForbidden, nil)
		}
		return zero, err
	}
	return emp, nil
}
