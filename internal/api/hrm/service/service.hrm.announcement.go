package hrmsvc

import (
	"fmt"

	basesvc "hrm_portal/internal/api/base/service"
	"hrm_portal/internal/api/hrm/models"
	"hrm_portal/internal/common"
	"hrm_portal/internal/global"
)

// AnnouncementService xử lý nghiệp vụ thông báo chung. CRUD thuần.
type AnnouncementService struct {
	*basesvc.BaseServiceMongoImpl[models.Announcement]
}

// NewAnnouncementService tạo mới AnnouncementService.
func NewAnnouncementService() (*AnnouncementService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Announcements)
	if !exist {
		return nil, fmt.Errorf("failed to get announcements collection: %v", common.ErrNotFound)
	}
	return &AnnouncementService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Announcement](col),
	}, nil
}
