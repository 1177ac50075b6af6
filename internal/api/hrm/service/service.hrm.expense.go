package hrmsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	basesvc "hrm_portal/internal/api/base/service"
	"hrm_portal/internal/api/hrm/models"
	"hrm_portal/internal/common"
	"hrm_portal/internal/global"
	"hrm_portal/internal/logger"
	"hrm_portal/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExpenseService xử lý nghiệp vụ đề nghị thanh toán.
// Cùng vòng đời duyệt với đơn nghỉ phép: pending -> approved | rejected.
type ExpenseService struct {
	*basesvc.BaseServiceMongoImpl[models.Expense]

	employees *EmployeeService
	notifier  *NotificationService
}

// NewExpenseService tạo mới ExpenseService.
func NewExpenseService() (*ExpenseService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Expenses)
	if !exist {
		return nil, fmt.Errorf("failed to get expenses collection: %v", common.ErrNotFound)
	}
	employees, err := NewEmployeeService()
	if err != nil {
		return nil, err
	}
	notifier, err := NewNotificationService()
	if err != nil {
		return nil, err
	}
	return &ExpenseService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Expense](col),
		employees:            employees,
		notifier:             notifier,
	}, nil
}

// Review duyệt hoặc từ chối một đề nghị thanh toán đang pending.
// Transition atomic qua filter {_id, status: pending}.
func (s *ExpenseService) Review(ctx context.Context, id, reviewerID primitive.ObjectID, approve bool, note string) (models.Expense, error) {
	var zero models.Expense

	newStatus := models.StatusApproved
	if !approve {
		newStatus = models.StatusRejected
	}

	filter := bson.M{"_id": id, "status": models.StatusPending}
	set := bson.M{
		"status":     newStatus,
		"reviewerId": reviewerID,
		"reviewedAt": time.Now().UnixMilli(),
	}
	if note != "" {
		set["reviewNote"] = note
	}

	updated, err := s.UpdateOne(ctx, filter, bson.M{"$set": set}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return zero, common.NewError(common.ErrCodeBusinessState, "Đề nghị thanh toán không ở trạng thái chờ duyệt", common.StatusConflict, nil)
		}
		return zero, err
	}

	// Gửi thông báo ngoài request path, không để lỗi thông báo ảnh hưởng response
	go utility.GoProtect(func() {
		s.notifyOwner(context.Background(), updated)
	})
	return updated, nil
}

func (s *ExpenseService) notifyOwner(ctx context.Context, expense models.Expense) {
	emp, err := s.employees.FindOneById(ctx, expense.EmployeeID)
	if err != nil || emp.UserID == nil {
		return
	}

	title := "Đề nghị thanh toán của bạn đã được duyệt"
	if expense.Status == models.StatusRejected {
		title = "Đề nghị thanh toán của bạn đã bị từ chối"
	}
	if err := s.notifier.NotifyReview(ctx, *emp.UserID, "expense", expense.ID, title); err != nil {
		logger.GetAppLogger().WithError(err).Warn("Không gửi được thông báo kết quả duyệt đề nghị thanh toán")
	}
}
