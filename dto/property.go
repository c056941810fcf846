package dto

// PropertyForm là buffer nhập liệu cho form tạo/sửa property,
// đồng thời là body gửi lên kho dữ liệu
type PropertyForm struct {
	PropertyName string `json:"propertyName"`
	Address      string `json:"address"`
	Description  string `json:"description"`
}
