package utility

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword băm mật khẩu bằng bcrypt với cost mặc định.
// @params - mật khẩu dạng plain text
// @returns - chuỗi hash và lỗi nếu có
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword so sánh mật khẩu plain text với hash đã lưu.
// Trả về nil nếu khớp, lỗi nếu không khớp hoặc hash không hợp lệ.
func ComparePassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
