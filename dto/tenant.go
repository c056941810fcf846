package dto

// AssignTenantForm là buffer nhập email, mỗi phòng một buffer riêng
type AssignTenantForm struct {
	Email string `json:"email"`
}

// AssignTenantRequest là body gửi lên kho dữ liệu khi gán tenant
type AssignTenantRequest struct {
	TenantEmail string `json:"tenantEmail"`
}
