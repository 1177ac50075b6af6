// Package hrmsvc - Service layer cho domain HRM.
// Các service mỏng kế thừa BaseServiceMongoImpl, chỉ bổ sung nghiệp vụ đặc thù.
package hrmsvc

import (
	"context"
	"fmt"
	"time"

	basesvc "hrm_portal/internal/api/base/service"
	"hrm_portal/internal/api/hrm/models"
	"hrm_portal/internal/common"
	"hrm_portal/internal/global"
	"hrm_portal/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmployeeService xử lý nghiệp vụ hồ sơ nhân viên.
type EmployeeService struct {
	*basesvc.BaseServiceMongoImpl[models.Employee]
	cache *utility.Cache
}

// NewEmployeeService tạo mới EmployeeService.
func NewEmployeeService() (*EmployeeService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Employees)
	if !exist {
		return nil, fmt.Errorf("failed to get employees collection: %v", common.ErrNotFound)
	}
	return &EmployeeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Employee](col),
		// Cache tra cứu userId -> employee cho các route self-service,
		// TTL ngắn nên thay đổi hồ sơ chỉ trễ tối đa 5 phút
		cache: utility.NewCache(5*time.Minute, 10*time.Minute),
	}, nil
}

// FindByUserID tra cứu hồ sơ nhân viên theo tài khoản đăng nhập.
// Dùng cho các route self-service: từ token suy ra employee tương ứng.
func (s *EmployeeService) FindByUserID(ctx context.Context, userID primitive.ObjectID) (models.Employee, error) {
	cacheKey := "employee_by_user:" + userID.Hex()
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(models.Employee), nil
	}

	employee, err := s.FindOne(ctx, bson.M{"userId": userID}, nil)
	if err != nil {
		return employee, err
	}

	s.cache.Set(cacheKey, employee)
	return employee, nil
}

// UpdateById override base để xóa cache tra cứu theo user sau khi cập nhật hồ sơ.
func (s *EmployeeService) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (models.Employee, error) {
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, data)
	if err != nil {
		return updated, err
	}
	s.invalidateUserCache(&updated)
	return updated, nil
}

// DeleteById override base để xóa cache trước khi bản ghi biến mất.
func (s *EmployeeService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	emp, findErr := s.FindOneById(ctx, id)
	if err := s.BaseServiceMongoImpl.DeleteById(ctx, id); err != nil {
		return err
	}
	if findErr == nil {
		s.invalidateUserCache(&emp)
	}
	return nil
}

// invalidateUserCache xóa entry cache userId -> employee nếu hồ sơ có gắn tài khoản
func (s *EmployeeService) invalidateUserCache(emp *models.Employee) {
	if emp.UserID != nil {
		s.cache.Delete("employee_by_user:" + emp.UserID.Hex())
	}
}
