package hrmsvc

import (
	"context"
	"fmt"
	"time"

	basesvc "hrm_portal/internal/api/base/service"
	"hrm_portal/internal/api/hrm/models"
	"hrm_portal/internal/common"
	"hrm_portal/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendanceService xử lý nghiệp vụ chấm công.
// Mỗi nhân viên chỉ có 1 bản ghi/ngày — đảm bảo bởi unique index (employeeId, date)
// và thao tác Upsert theo cùng cặp khóa.
type AttendanceService struct {
	*basesvc.BaseServiceMongoImpl[models.Attendance]
}

// NewAttendanceService tạo mới AttendanceService.
func NewAttendanceService() (*AttendanceService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Attendance)
	if !exist {
		return nil, fmt.Errorf("failed to get attendance collection: %v", common.ErrNotFound)
	}
	return &AttendanceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Attendance](col),
	}, nil
}

// todayKey trả về ngày hiện tại theo giờ server, dạng YYYY-MM-DD.
func todayKey() string {
	return time.Now().Format("2006-01-02")
}

// CheckIn ghi nhận giờ vào của nhân viên trong ngày hiện tại.
// Check-in lần thứ hai trong cùng ngày bị từ chối.
func (s *AttendanceService) CheckIn(ctx context.Context, employeeID primitive.ObjectID, note string) (models.Attendance, error) {
	var zero models.Attendance
	date := todayKey()
	filter := bson.M{"employeeId": employeeID, "date": date}

	existing, err := s.FindOne(ctx, filter, nil)
	if err == nil && existing.CheckIn > 0 {
		return zero, common.NewError(common.ErrCodeBusinessState, "Hôm nay đã check-in rồi", common.StatusConflict, nil)
	}

	set := bson.M{
		"employeeId": employeeID,
		"date":       date,
		"checkIn":    time.Now().UnixMilli(),
	}
	if note != "" {
		set["note"] = note
	}
	return s.Upsert(ctx, filter, set)
}

// CheckOut ghi nhận giờ ra của nhân viên trong ngày hiện tại.
// Yêu cầu đã check-in trước đó trong cùng ngày.
func (s *AttendanceService) CheckOut(ctx context.Context, employeeID primitive.ObjectID, note string) (models.Attendance, error) {
	var zero models.Attendance
	date := todayKey()
	filter := bson.M{"employeeId": employeeID, "date": date}

	existing, err := s.FindOne(ctx, filter, nil)
	if err != nil || existing.CheckIn == 0 {
		return zero, common.NewError(common.ErrCodeBusinessState, "Chưa check-in nên không thể check-out", common.StatusBadRequest, nil)
	}

	set := bson.M{"checkOut": time.Now().UnixMilli()}
	if note != "" {
		set["note"] = note
	}
	return s.Upsert(ctx, filter, set)
}
