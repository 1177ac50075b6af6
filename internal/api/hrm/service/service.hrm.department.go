package hrmsvc

import (
	"fmt"

	basesvc "hrm_portal/internal/api/base/service"
	"hrm_portal/internal/api/hrm/models"
	"hrm_portal/internal/common"
	"hrm_portal/internal/global"
)

// DepartmentService xử lý nghiệp vụ phòng ban. CRUD thuần, không có nghiệp vụ riêng.
type DepartmentService struct {
	*basesvc.BaseServiceMongoImpl[models.Department]
}

// NewDepartmentService tạo mới DepartmentService.
func NewDepartmentService() (*DepartmentService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Departments)
	if !exist {
		return nil, fmt.Errorf("failed to get departments collection: %v", common.ErrNotFound)
	}
	return &DepartmentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Department](col),
	}, nil
}
