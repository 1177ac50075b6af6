package utility

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ConvertStruct chuyển đổi dữ liệu giữa hai struct qua JSON trung gian.
// Dùng để map DTO đầu vào sang model trước khi lưu database.
// @params - struct nguồn, con trỏ struct đích
// @returns - struct đích đã gán dữ liệu và lỗi nếu có
func ConvertStruct(source interface{}, target interface{}) (interface{}, error) {
	// Chuyển source thành JSON
	jsonData, err := json.Marshal(source)
	if err != nil {
		return nil, err
	}

	// Chuyển JSON thành target struct
	err = json.Unmarshal(jsonData, target)
	if err != nil {
		return nil, err
	}

	return target, nil
}

// ToMap chuyển đổi struct thành map[string]interface{} qua BSON trung gian.
// Dùng BSON thay vì JSON để giữ đúng tên field theo bson tag của model.
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	if err := bson.Unmarshal(raw, &stringInterfaceMap); err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, nil
}
