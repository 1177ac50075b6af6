package utility

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	jwt "github.com/dgrijalva/jwt-go"

	"hrm_portal/internal/common"
)

// TokenLifetime là thời gian sống của JWT kể từ lúc phát hành.
const TokenLifetime = 24 * time.Hour

// TokenClaims chứa dữ liệu danh tính gắn trong JWT.
// Server không tra cứu database khi xác thực — mọi thông tin quyền hạn
// nằm trọn trong claims và được tin cậy khi chữ ký hợp lệ.
type TokenClaims struct {
	UserID         string `json:"user_id"`                  // ID của user trong collection auth_users
	Username       string `json:"username"`                 // Tên đăng nhập
	Role           string `json:"role"`                     // Vai trò: admin | manager | employee
	DepartmentID   string `json:"department_id,omitempty"`  // Phòng ban của user (nếu có)
	OrganizationID string `json:"organization_id,omitempty"` // Tổ chức của user (nếu có)
	jwt.StandardClaims
}

// CreateToken phát hành JWT ký bằng HS256 với thời hạn TokenLifetime.
// Nếu secret rỗng, trả về lỗi cấu hình thay vì phát hành token không an toàn.
func CreateToken(secret string, claims *TokenClaims) (string, error) {
	if secret == "" {
		return "", common.ErrServerConfig
	}

	now := time.Now()
	claims.StandardClaims = jwt.StandardClaims{
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(TokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", common.NewError(common.ErrCodeConfiguration, common.MsgInternalError, common.StatusInternalServerError, err)
	}
	return signed, nil
}

// VerifyToken kiểm tra chữ ký và thời hạn của token, trả về claims nếu hợp lệ.
// Chỉ chấp nhận thuật toán HMAC — token ký bằng alg khác bị từ chối.
func VerifyToken(secret string, tokenString string) (*TokenClaims, error) {
	if secret == "" {
		return nil, common.ErrServerConfig
	}

	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		// Phân biệt token hết hạn với token sai định dạng / sai chữ ký
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}

// CheckTokenSanity kiểm tra sơ bộ cấu trúc token trước khi parse đầy đủ.
// Heuristic: token phải có đúng 3 phần base64url, header phải khai alg HS256,
// và phần giải mã không được chứa dấu hiệu path traversal hay markup injection.
func CheckTokenSanity(tokenString string) error {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return common.ErrTokenInvalid
	}

	for _, part := range parts[:2] {
		decoded, err := base64.RawURLEncoding.DecodeString(part)
		if err != nil {
			return common.ErrTokenInvalid
		}
		s := string(decoded)
		if strings.Contains(s, "../") || strings.Contains(s, "<") || strings.Contains(s, ">") {
			return common.ErrTokenInvalid
		}
	}

	// Chặn alg confusion: chỉ chấp nhận HS256 ngay từ header
	headerBytes, _ := base64.RawURLEncoding.DecodeString(parts[0])
	var header struct {
		Alg string `json:"alg"`
	}
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return common.ErrTokenInvalid
	}
	if !strings.EqualFold(header.Alg, "HS256") {
		return common.ErrTokenInvalid
	}

	return nil
}
