// Package authhdl - handler xác thực người dùng.
package authhdl

import (
	"errors"
	"fmt"

	authdto "hrm_portal/internal/api/auth/dto"
	models "hrm_portal/internal/api/auth/models"
	authsvc "hrm_portal/internal/api/auth/service"
	basehdl "hrm_portal/internal/api/base/handler"
	"hrm_portal/internal/common"
	"hrm_portal/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler xử lý các route xác thực và hồ sơ người dùng.
// CRUD user cho admin dùng BaseHandler; các nghiệp vụ đăng nhập/đăng ký dùng UserService.
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserChangeInfoInput]
	UserService *authsvc.UserService
}

// NewUserHandler tạo một instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}

	return &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserChangeInfoInput](userService),
		UserService: userService,
	}, nil
}

// HandleLogin xử lý đăng nhập.
//
// Response của endpoint này KHÔNG theo envelope chuẩn của hệ thống:
// thành công trả {success, token, user}, thất bại trả {success:false, message}.
// Message thất bại giống hệt nhau cho mọi nguyên nhân (anti-enumeration).
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return basehdl.JSONResponse(c, common.StatusBadRequest, fiber.Map{
				"success": false,
				"message": common.MsgValidationError,
			})
		}
		if err := h.ValidateInput(&input); err != nil {
			return basehdl.JSONResponse(c, common.StatusBadRequest, fiber.Map{
				"success": false,
				"message": common.MsgValidationError,
			})
		}

		token, user, err := h.UserService.Login(c.Context(), &input)
		if err != nil {
			var customErr *common.Error
			if errors.As(err, &customErr) {
				return basehdl.JSONResponse(c, customErr.StatusCode, fiber.Map{
					"success": false,
					"message": customErr.Message,
				})
			}
			return basehdl.JSONResponse(c, common.StatusInternalServerError, fiber.Map{
				"success": false,
				"message": common.MsgInternalError,
			})
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": true,
			"token":   token,
			"user":    user,
		})
	})
}

// HandleRegister xử lý đăng ký tài khoản mới
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserRegisterInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.Register(c.Context(), &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleCheckToken xác nhận token còn hiệu lực.
// AuthMiddleware đã verify token trước khi request đến đây — handler chỉ
// trả về claims đã gắn trong Locals.
func (h *UserHandler) HandleCheckToken(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		claims, ok := c.Locals("claims").(*utility.TokenClaims)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		h.HandleResponse(c, fiber.Map{
			"valid":          true,
			"userId":         claims.UserID,
			"username":       claims.Username,
			"role":           claims.Role,
			"departmentId":   claims.DepartmentID,
			"organizationId": claims.OrganizationID,
			"expiresAt":      claims.ExpiresAt,
		}, nil)
		return nil
	})
}

// HandleGetProfile trả về hồ sơ của user đang đăng nhập
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.GetProfile(c.Context(), userID)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUpdateProfile cập nhật thông tin hiển thị của user đang đăng nhập
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.UserChangeInfoInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.ChangeInfo(c.Context(), userID, &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// currentUserID lấy ObjectID của user đang đăng nhập từ Locals
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
