package hrmsvc

import (
	"fmt"

	basesvc "hrm_portal/internal/api/base/service"
	"hrm_portal/internal/api/hrm/models"
	"hrm_portal/internal/common"
	"hrm_portal/internal/global"
)

// HolidayService xử lý nghiệp vụ ngày nghỉ lễ. CRUD thuần.
type HolidayService struct {
	*basesvc.BaseServiceMongoImpl[models.Holiday]
}

// NewHolidayService tạo mới HolidayService.
func NewHolidayService() (*HolidayService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Holidays)
	if !exist {
		return nil, fmt.Errorf("failed to get holidays collection: %v", common.ErrNotFound)
	}
	return &HolidayService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Holiday](col),
	}, nil
}
