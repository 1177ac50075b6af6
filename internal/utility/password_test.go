package utility

import "testing"

func TestHashPassword_CompareRoundTrip(t *testing.T) {
	hash, err := HashPassword("S3cret!pass")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	if hash == "S3cret!pass" {
		t.Fatal("HashPassword không được trả về plaintext")
	}

	if err := ComparePassword(hash, "S3cret!pass"); err != nil {
		t.Errorf("ComparePassword phải đúng với password gốc, nhận lỗi: %v", err)
	}
	if err := ComparePassword(hash, "S3cret!pass2"); err == nil {
		t.Error("ComparePassword phải sai với password khác")
	}
	if err := ComparePassword(hash, ""); err == nil {
		t.Error("ComparePassword phải sai với password rỗng")
	}
}

func TestHashPassword_DifferentSalts(t *testing.T) {
	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	if h1 == h2 {
		t.Error("Hai lần hash cùng password phải khác nhau (salt ngẫu nhiên)")
	}
}
