// Package authsvc - service người dùng (User) và nghiệp vụ đăng nhập.
package authsvc

import (
	"context"
	"errors"
	"fmt"

	authdto "hrm_portal/internal/api/auth/dto"
	models "hrm_portal/internal/api/auth/models"
	basesvc "hrm_portal/internal/api/base/service"
	"hrm_portal/internal/common"
	"hrm_portal/internal/global"
	"hrm_portal/internal/utility"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]

	// lookupByUsername được tách thành field để test có thể thay bằng lookup giả
	// mà không cần database thật. Mặc định tra cứu collection users.
	lookupByUsername func(ctx context.Context, username string) (models.User, error)
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	svc := &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}
	svc.lookupByUsername = func(ctx context.Context, username string) (models.User, error) {
		// Tra cứu case-sensitive và exact — không normalize username
		return svc.BaseServiceMongoImpl.FindOne(ctx, bson.M{"username": username}, nil)
	}
	return svc, nil
}

// Login xác thực thông tin đăng nhập và phát hành token.
//
// Mọi nhánh từ chối (không tìm thấy user, user bị vô hiệu, sai mật khẩu) trả về
// CÙNG một sentinel ErrInvalidLogin — caller không thể phân biệt nguyên nhân từ
// status code hay message. Nguyên nhân thật chỉ được ghi vào security log.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (string, *models.SanitizedUser, error) {
	user, err := s.lookupByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			logrus.WithField("username", input.Username).Warn("Login: username not found")
			return "", nil, common.ErrInvalidLogin
		}
		return "", nil, err
	}

	if !user.Active {
		logrus.WithField("username", input.Username).Warn("Login: account inactive")
		return "", nil, common.ErrInvalidLogin
	}

	if err := utility.ComparePassword(user.Password, input.Password); err != nil {
		logrus.WithField("username", input.Username).Warn("Login: password mismatch")
		return "", nil, common.ErrInvalidLogin
	}

	claims := &utility.TokenClaims{
		UserID:   user.ID.Hex(),
		Username: user.Username,
		Role:     user.Role,
	}
	if user.DepartmentID != nil {
		claims.DepartmentID = user.DepartmentID.Hex()
	}
	if user.OrganizationID != nil {
		claims.OrganizationID = user.OrganizationID.Hex()
	}

	token, err := utility.CreateToken(global.MongoDB_ServerConfig.JwtSecret, claims)
	if err != nil {
		// Lỗi cấu hình (thiếu secret) — không lộ chi tiết cho client
		logrus.WithError(err).Error("Login: token issuance failed")
		return "", nil, err
	}

	sanitized := user.Sanitize()
	return token, &sanitized, nil
}

// Register tạo tài khoản mới với mật khẩu đã băm bcrypt.
// Username trùng trả về lỗi 409 qua unique index của collection.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (*models.SanitizedUser, error) {
	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err)
	}

	user := models.User{
		Username: input.Username,
		FullName: input.FullName,
		Password: hashed,
		Role:     input.Role,
		Active:   true,
	}
	if input.DepartmentID != "" {
		if deptID, err := primitive.ObjectIDFromHex(input.DepartmentID); err == nil {
			user.DepartmentID = &deptID
		}
	}
	if input.OrganizationID != "" {
		if orgID, err := primitive.ObjectIDFromHex(input.OrganizationID); err == nil {
			user.OrganizationID = &orgID
		}
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return nil, common.NewError(common.ErrCodeAuthCredentials, "Tên đăng nhập đã tồn tại", common.StatusConflict, nil)
		}
		return nil, err
	}

	sanitized := created.Sanitize()
	return &sanitized, nil
}

// ChangeInfo cập nhật thông tin hiển thị của user
func (s *UserService) ChangeInfo(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangeInfoInput) (*models.SanitizedUser, error) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{},
	}
	if input.FullName != "" {
		updateData.Set["fullName"] = input.FullName
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	if err != nil {
		return nil, err
	}

	sanitized := updated.Sanitize()
	return &sanitized, nil
}

// GetProfile trả về projection an toàn của user theo ID
func (s *UserService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.SanitizedUser, error) {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return nil, err
	}
	sanitized := user.Sanitize()
	return &sanitized, nil
}
