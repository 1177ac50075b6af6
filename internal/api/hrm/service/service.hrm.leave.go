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

// LeaveService xử lý nghiệp vụ đơn nghỉ phép.
// Vòng đời: pending -> approved | rejected. Đơn đã duyệt/từ chối là bất biến.
type LeaveService struct {
	*basesvc.BaseServiceMongoImpl[models.Leave]

	employees *EmployeeService
	notifier  *NotificationService
}

// NewLeaveService tạo mới LeaveService.
func NewLeaveService() (*LeaveService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Leaves)
	if !exist {
		return nil, fmt.Errorf("failed to get leaves collection: %v", common.ErrNotFound)
	}
	employees, err := NewEmployeeService()
	if err != nil {
		return nil, err
	}
	notifier, err := NewNotificationService()
	if err != nil {
		return nil, err
	}
	return &LeaveService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Leave](col),
		employees:            employees,
		notifier:             notifier,
	}, nil
}

// Review duyệt hoặc từ chối một đơn nghỉ phép đang pending.
// Transition được thực hiện atomic qua filter {_id, status: pending} —
// hai request duyệt đồng thời chỉ có một request thắng.
func (s *LeaveService) Review(ctx context.Context, id, reviewerID primitive.ObjectID, approve bool, note string) (models.Leave, error) {
	var zero models.Leave

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
			// Đơn không tồn tại hoặc đã được xử lý trước đó
			return zero, common.NewError(common.ErrCodeBusinessState, "Đơn nghỉ phép không ở trạng thái chờ duyệt", common.StatusConflict, nil)
		}
		return zero, err
	}

	// Gửi thông báo ngoài request path, không để lỗi thông báo ảnh hưởng response
	go utility.GoProtect(func() {
		s.notifyOwner(context.Background(), updated)
	})
	return updated, nil
}

// notifyOwner gửi thông báo kết quả duyệt cho nhân viên tạo đơn (best-effort).
func (s *LeaveService) notifyOwner(ctx context.Context, leave models.Leave) {
	emp, err := s.employees.FindOneById(ctx, leave.EmployeeID)
	if err != nil || emp.UserID == nil {
		return
	}

	title := "Đơn nghỉ phép của bạn đã được duyệt"
	if leave.Status == models.StatusRejected {
		title = "Đơn nghỉ phép của bạn đã bị từ chối"
	}
	if err := s.notifier.NotifyReview(ctx, *emp.UserID, "leave", leave.ID, title); err != nil {
		logger.GetAppLogger().WithError(err).Warn("Không gửi được thông báo kết quả duyệt đơn nghỉ phép")
	}
}
