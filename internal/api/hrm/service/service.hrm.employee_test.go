// Package hrmsvc - Test cache tra cứu userId -> employee của EmployeeService.
package hrmsvc

import (
	"context"
	"testing"
	"time"

	"hrm_portal/internal/api/hrm/models"
	"hrm_portal/internal/utility"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// newCachedEmployeeService tạo service chỉ có cache, không có kết nối database.
// BaseServiceMongoImpl để nil: nếu luồng test chạm vào database sẽ panic ngay.
func newCachedEmployeeService() *EmployeeService {
	return &EmployeeService{cache: utility.NewCache(5*time.Minute, 10*time.Minute)}
}

func TestFindByUserID_CacheHitKhongChamDatabase(t *testing.T) {
	svc := newCachedEmployeeService()
	userID := primitive.NewObjectID()
	want := models.Employee{
		ID:       primitive.NewObjectID(),
		UserID:   &userID,
		FullName: "Nguyễn Văn An",
	}
	svc.cache.Set("employee_by_user:"+userID.Hex(), want)

	got, err := svc.FindByUserID(context.Background(), userID)
	if err != nil {
		t.Fatalf("FindByUserID với cache hit không được trả lỗi: %v", err)
	}
	if got.ID != want.ID {
		t.Errorf("FindByUserID phải trả về bản ghi trong cache, nhận: %+v", got)
	}
}

func TestInvalidateUserCache_XoaEntryTheoUser(t *testing.T) {
	svc := newCachedEmployeeService()
	userID := primitive.NewObjectID()
	emp := models.Employee{ID: primitive.NewObjectID(), UserID: &userID}
	key := "employee_by_user:" + userID.Hex()
	svc.cache.Set(key, emp)

	svc.invalidateUserCache(&emp)

	if _, found := svc.cache.Get(key); found {
		t.Error("Entry cache theo user phải bị xóa sau khi hồ sơ thay đổi")
	}
}

func TestInvalidateUserCache_HoSoChuaGanTaiKhoan(t *testing.T) {
	svc := newCachedEmployeeService()

	// Hồ sơ chưa gắn tài khoản: không có gì để xóa, không được panic
	svc.invalidateUserCache(&models.Employee{ID: primitive.NewObjectID()})
}
