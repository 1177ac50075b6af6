// Package utility - Test vòng đời JWT: phát hành, xác thực, hết hạn và sanity check.
package utility

import (
	"errors"
	"testing"
	"time"

	"hrm_portal/internal/common"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-for-unit-tests"

func TestCreateToken_VerifyRoundTrip(t *testing.T) {
	claims := &TokenClaims{
		UserID:         "64f000000000000000000001",
		Username:       "nva",
		Role:           "manager",
		DepartmentID:   "64f000000000000000000002",
		OrganizationID: "64f000000000000000000003",
	}

	token, err := CreateToken(testSecret, claims)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := VerifyToken(testSecret, token)
	assert.NoError(t, err)
	assert.Equal(t, claims.UserID, parsed.UserID)
	assert.Equal(t, claims.Username, parsed.Username)
	assert.Equal(t, claims.Role, parsed.Role)
	assert.Equal(t, claims.DepartmentID, parsed.DepartmentID)
	assert.Equal(t, claims.OrganizationID, parsed.OrganizationID)

	// ExpiresAt phải xấp xỉ now + TokenLifetime
	expectedExpiry := time.Now().Add(TokenLifetime).Unix()
	assert.InDelta(t, expectedExpiry, parsed.ExpiresAt, 5)
}

func TestCreateToken_EmptySecret(t *testing.T) {
	_, err := CreateToken("", &TokenClaims{UserID: "x", Username: "y", Role: "employee"})
	if err == nil {
		t.Fatal("CreateToken với secret rỗng phải trả lỗi")
	}
	if !errors.Is(err, common.ErrServerConfig) {
		t.Errorf("CreateToken secret rỗng phải trả ErrServerConfig, nhận: %v", err)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := CreateToken(testSecret, &TokenClaims{UserID: "x", Username: "y", Role: "employee"})
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}

	_, err = VerifyToken("other-secret", token)
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("Sai secret phải trả ErrTokenInvalid, nhận: %v", err)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	// Tự ký token đã hết hạn thay vì chờ TokenLifetime
	claims := &TokenClaims{
		UserID:   "x",
		Username: "y",
		Role:     "employee",
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Add(-2 * time.Hour).Unix(),
			ExpiresAt: time.Now().Add(-1 * time.Hour).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("Ký token hết hạn lỗi: %v", err)
	}

	_, err = VerifyToken(testSecret, token)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Errorf("Token hết hạn phải trả ErrTokenExpired, nhận: %v", err)
	}
}

func TestVerifyToken_RejectsNonHMAC(t *testing.T) {
	// Token với alg "none" không được chấp nhận
	noneToken := jwt.NewWithClaims(jwt.SigningMethodNone, &TokenClaims{UserID: "x"})
	raw, err := noneToken.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("Ký token none lỗi: %v", err)
	}

	_, err = VerifyToken(testSecret, raw)
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("Token alg none phải trả ErrTokenInvalid, nhận: %v", err)
	}
}

func TestCheckTokenSanity(t *testing.T) {
	valid, err := CreateToken(testSecret, &TokenClaims{UserID: "x", Username: "y", Role: "employee"})
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}

	cases := []struct {
		name  string
		token string
		want  bool
	}{
		{"token hợp lệ", valid, true},
		{"thiếu phần", "abc.def", false},
		{"rỗng", "", false},
		{"không phải base64", "!!!.###.$$$", false},
		{"chứa path traversal", makeTamperedToken(t, `{"alg":"HS256","typ":"JWT"}`, `{"sub":"../etc/passwd"}`), false},
		{"chứa thẻ html", makeTamperedToken(t, `{"alg":"HS256","typ":"JWT"}`, `{"sub":"<script>"}`), false},
		{"alg khác HS256", makeTamperedToken(t, `{"alg":"RS256","typ":"JWT"}`, `{"sub":"x"}`), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckTokenSanity(tc.token)
			if got := err == nil; got != tc.want {
				t.Errorf("CheckTokenSanity(%q) = %v, muốn hợp lệ=%v", tc.name, err, tc.want)
			}
		})
	}
}

// makeTamperedToken ghép token 3 phần từ header/payload JSON tùy ý (signature giả).
func makeTamperedToken(t *testing.T, header, payload string) string {
	t.Helper()
	enc := func(s string) string {
		return jwt.EncodeSegment([]byte(s))
	}
	return enc(header) + "." + enc(payload) + "." + enc("sig")
}
