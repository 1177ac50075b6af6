// Package authsvc - Test nghiệp vụ đăng nhập với lookup giả (không cần database).
// Trọng tâm: cả ba nhánh từ chối trả về ĐÚNG một lỗi, không phân biệt được nguyên nhân.
package authsvc

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"hrm_portal/config"
	authdto "hrm_portal/internal/api/auth/dto"
	models "hrm_portal/internal/api/auth/models"
	"hrm_portal/internal/common"
	"hrm_portal/internal/global"
	"hrm_portal/internal/utility"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// setTestConfig gắn config test vào global (Login cần JwtSecret để phát hành token).
func setTestConfig(t *testing.T) *config.Configuration {
	t.Helper()
	cfg := &config.Configuration{
		Environment: "test",
		JwtSecret:   "authsvc-test-secret",
	}
	old := global.MongoDB_ServerConfig
	global.MongoDB_ServerConfig = cfg
	t.Cleanup(func() { global.MongoDB_ServerConfig = old })
	return cfg
}

// newFakeUserService tạo UserService với lookup giả từ map username -> user.
func newFakeUserService(users map[string]models.User) *UserService {
	svc := &UserService{}
	svc.lookupByUsername = func(ctx context.Context, username string) (models.User, error) {
		if u, ok := users[username]; ok {
			return u, nil
		}
		return models.User{}, common.ErrNotFound
	}
	return svc
}

func makeUser(t *testing.T, username, password string, active bool) models.User {
	t.Helper()
	hashed, err := utility.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	return models.User{
		ID:       primitive.NewObjectID(),
		Username: username,
		FullName: "Nguyen Van A",
		Password: hashed,
		Role:     "employee",
		Active:   active,
	}
}

func TestLogin_Success(t *testing.T) {
	setTestConfig(t)

	svc := newFakeUserService(map[string]models.User{
		"nva": makeUser(t, "nva", "S3cret!pass", true),
	})

	token, user, err := svc.Login(context.Background(), &authdto.UserLoginInput{
		Username: "nva",
		Password: "S3cret!pass",
	})
	if err != nil {
		t.Fatalf("Login hợp lệ phải thành công, nhận lỗi: %v", err)
	}
	if token == "" {
		t.Error("Login thành công phải trả token")
	}
	if user == nil || user.Username != "nva" {
		t.Errorf("Login phải trả user đã sanitize, nhận: %+v", user)
	}
}

func TestLogin_RejectBranchesIndistinguishable(t *testing.T) {
	setTestConfig(t)

	svc := newFakeUserService(map[string]models.User{
		"nva":      makeUser(t, "nva", "S3cret!pass", true),
		"inactive": makeUser(t, "inactive", "S3cret!pass", false),
	})

	cases := []struct {
		name  string
		input authdto.UserLoginInput
	}{
		{"username không tồn tại", authdto.UserLoginInput{Username: "ghost", Password: "S3cret!pass"}},
		{"tài khoản bị vô hiệu", authdto.UserLoginInput{Username: "inactive", Password: "S3cret!pass"}},
		{"sai mật khẩu", authdto.UserLoginInput{Username: "nva", Password: "wrong"}},
	}

	var envelopes []string
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, user, err := svc.Login(context.Background(), &tc.input)
			if token != "" || user != nil {
				t.Error("Nhánh từ chối không được trả token hay user")
			}
			if !errors.Is(err, common.ErrInvalidLogin) {
				t.Fatalf("Nhánh từ chối phải trả ErrInvalidLogin, nhận: %v", err)
			}

			var customErr *common.Error
			if !errors.As(err, &customErr) {
				t.Fatalf("Lỗi phải là *common.Error, nhận: %T", err)
			}
			if customErr.StatusCode != common.StatusUnauthorized {
				t.Errorf("Status phải là 401, nhận %d", customErr.StatusCode)
			}
			if customErr.Message != common.MsgInvalidLogin {
				t.Errorf("Message phải là %q, nhận %q", common.MsgInvalidLogin, customErr.Message)
			}

			// So sánh byte-for-byte envelope của cả ba nhánh
			raw, _ := json.Marshal(map[string]interface{}{
				"code":    customErr.Code.Code,
				"message": customErr.Message,
				"status":  customErr.StatusCode,
			})
			envelopes = append(envelopes, string(raw))
		})
	}

	for i := 1; i < len(envelopes); i++ {
		if envelopes[i] != envelopes[0] {
			t.Errorf("Envelope nhánh %d khác nhánh đầu: %s vs %s", i, envelopes[i], envelopes[0])
		}
	}
}

func TestLogin_TokenCarriesClaims(t *testing.T) {
	cfg := setTestConfig(t)

	deptID := primitive.NewObjectID()
	user := makeUser(t, "nva", "S3cret!pass", true)
	user.Role = "manager"
	user.DepartmentID = &deptID

	svc := newFakeUserService(map[string]models.User{"nva": user})

	token, _, err := svc.Login(context.Background(), &authdto.UserLoginInput{
		Username: "nva",
		Password: "S3cret!pass",
	})
	if err != nil {
		t.Fatalf("Login lỗi: %v", err)
	}

	claims, err := utility.VerifyToken(cfg.JwtSecret, token)
	if err != nil {
		t.Fatalf("Token phát hành phải verify được: %v", err)
	}
	if claims.UserID != user.ID.Hex() {
		t.Errorf("Claim userId sai: %q", claims.UserID)
	}
	if claims.Role != "manager" {
		t.Errorf("Claim role sai: %q", claims.Role)
	}
	if claims.DepartmentID != deptID.Hex() {
		t.Errorf("Claim departmentId sai: %q", claims.DepartmentID)
	}
}

func TestLogin_EmptySecretFailsClosed(t *testing.T) {
	cfg := setTestConfig(t)
	cfg.JwtSecret = ""

	svc := newFakeUserService(map[string]models.User{
		"nva": makeUser(t, "nva", "S3cret!pass", true),
	})

	token, _, err := svc.Login(context.Background(), &authdto.UserLoginInput{
		Username: "nva",
		Password: "S3cret!pass",
	})
	if token != "" {
		t.Error("Secret rỗng không được phát hành token")
	}
	if !errors.Is(err, common.ErrServerConfig) {
		t.Errorf("Secret rỗng phải trả ErrServerConfig, nhận: %v", err)
	}
}
