package services

import (
	"casaboard/dto"
	"casaboard/models"
)

// FormStateManager giữ buffer nhập liệu của các form đang mở.
// Form gán tenant có buffer riêng cho từng phòng để nhiều dòng mở cùng lúc
// không ghi đè lẫn nhau; form thêm phòng dùng chung một buffer và được reset
// mỗi khi mở cho property khác.
type FormStateManager struct {
	PropertyForm dto.PropertyForm
	RoomForm     dto.RoomForm

	// property đang sở hữu buffer thêm phòng
	roomFormProperty uint

	TenantFormByRoom map[uint]dto.AssignTenantForm

	// Buffer form sửa, seed từ giá trị hiện tại khi mở và bỏ khi cancel
	PropertyEdit dto.PropertyForm
	RoomEdit     dto.RoomForm
}

// NewFormStateManager tạo các buffer trắng
func NewFormStateManager() *FormStateManager {
	return &FormStateManager{
		RoomForm:         dto.NewRoomForm(),
		TenantFormByRoom: make(map[uint]dto.AssignTenantForm),
	}
}

// SetPropertyForm ghi buffer form tạo property
func (f *FormStateManager) SetPropertyForm(form dto.PropertyForm) {
	f.PropertyForm = form
}

// ResetPropertyForm xóa buffer sau khi tạo thành công hoặc đóng form
func (f *FormStateManager) ResetPropertyForm() {
	f.PropertyForm = dto.PropertyForm{}
}

// OpenAddRoomForm chuẩn bị buffer thêm phòng cho một property.
// Buffer luôn về mặc định khi mở, nên giá trị gõ dở cho property khác không lọt sang.
func (f *FormStateManager) OpenAddRoomForm(propertyID uint) {
	f.roomFormProperty = propertyID
	f.RoomForm = dto.NewRoomForm()
}

// SetRoomForm ghi buffer form thêm phòng
func (f *FormStateManager) SetRoomForm(form dto.RoomForm) {
	f.RoomForm = form
}

// ResetRoomForm trả buffer thêm phòng về mặc định
func (f *FormStateManager) ResetRoomForm() {
	f.RoomForm = dto.NewRoomForm()
}

// RoomFormProperty cho biết buffer thêm phòng đang thuộc property nào
func (f *FormStateManager) RoomFormProperty() uint {
	return f.roomFormProperty
}

// SetTenantEmail ghi buffer email của đúng một phòng
func (f *FormStateManager) SetTenantEmail(roomID uint, email string) {
	f.TenantFormByRoom[roomID] = dto.AssignTenantForm{Email: email}
}

// TenantEmail đọc buffer email của một phòng, mặc định rỗng
func (f *FormStateManager) TenantEmail(roomID uint) string {
	return f.TenantFormByRoom[roomID].Email
}

// ClearTenantForm xóa buffer email của một phòng
func (f *FormStateManager) ClearTenantForm(roomID uint) {
	f.TenantFormByRoom[roomID] = dto.AssignTenantForm{}
}

// DropTenantForm bỏ hẳn buffer khi phòng bị xóa
func (f *FormStateManager) DropTenantForm(roomID uint) {
	delete(f.TenantFormByRoom, roomID)
}

// SeedPropertyEdit nạp buffer sửa property từ giá trị hiện tại
func (f *FormStateManager) SeedPropertyEdit(p models.Property) {
	f.PropertyEdit = dto.FormFromProperty(p)
}

// SetPropertyEdit ghi buffer sửa property
func (f *FormStateManager) SetPropertyEdit(form dto.PropertyForm) {
	f.PropertyEdit = form
}

// DiscardPropertyEdit bỏ buffer sửa khi cancel hoặc submit xong
func (f *FormStateManager) DiscardPropertyEdit() {
	f.PropertyEdit = dto.PropertyForm{}
}

// SeedRoomEdit nạp buffer sửa phòng từ giá trị hiện tại
func (f *FormStateManager) SeedRoomEdit(room models.Room) {
	f.RoomEdit = dto.FormFromRoom(room)
}

// SetRoomEdit ghi buffer sửa phòng
func (f *FormStateManager) SetRoomEdit(form dto.RoomForm) {
	f.RoomEdit = form
}

// DiscardRoomEdit bỏ buffer sửa phòng
func (f *FormStateManager) DiscardRoomEdit() {
	f.RoomEdit = dto.RoomForm{}
}
