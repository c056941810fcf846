package constants

// Vai trò người dùng lấy từ claims của token
const (
	RoleOwner  = 2
	RoleTenant = 3
)
