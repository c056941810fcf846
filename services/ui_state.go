package services

import "casaboard/models"

// UIStateMaps giữ trạng thái giao diện tạm thời theo từng entity id.
// Mỗi map keyed theo id nên thao tác trên một dòng không ảnh hưởng dòng khác;
// key chưa có trong map mặc định là false/đóng.
type UIStateMaps struct {
	Expanded             map[uint]bool
	ShowAddRoomForm      map[uint]bool
	ShowAssignTenantForm map[uint]bool

	// Mỗi loại entity chỉ mở một form sửa tại một thời điểm
	EditingPropertyID uint
	EditingRoomID     uint

	SelectedPropertyID uint
	ExpandedTenantKey  string
	PropertyFilter     string
}

// NewUIStateMaps tạo trạng thái giao diện mặc định
func NewUIStateMaps() *UIStateMaps {
	return &UIStateMaps{
		Expanded:             make(map[uint]bool),
		ShowAddRoomForm:      make(map[uint]bool),
		ShowAssignTenantForm: make(map[uint]bool),
		PropertyFilter:       FilterAll,
	}
}

// InitForProperties seed map cho danh sách property vừa fetch: tất cả đóng
func (u *UIStateMaps) InitForProperties(properties []models.Property) {
	u.Expanded = make(map[uint]bool, len(properties))
	u.ShowAddRoomForm = make(map[uint]bool, len(properties))
	for _, p := range properties {
		u.Expanded[p.ID] = false
		u.ShowAddRoomForm[p.ID] = false
	}
	u.ShowAssignTenantForm = make(map[uint]bool)
}

// ToggleExpanded đảo trạng thái mở/đóng bảng phòng của một property
func (u *UIStateMaps) ToggleExpanded(propertyID uint) bool {
	u.Expanded[propertyID] = !u.Expanded[propertyID]
	return u.Expanded[propertyID]
}

// IsExpanded đọc trạng thái mở, mặc định đóng
func (u *UIStateMaps) IsExpanded(propertyID uint) bool {
	return u.Expanded[propertyID]
}

// ToggleAddRoomForm đảo hiển thị form thêm phòng của một property
func (u *UIStateMaps) ToggleAddRoomForm(propertyID uint) bool {
	u.ShowAddRoomForm[propertyID] = !u.ShowAddRoomForm[propertyID]
	return u.ShowAddRoomForm[propertyID]
}

// HideAddRoomForm ẩn form thêm phòng sau khi submit thành công
func (u *UIStateMaps) HideAddRoomForm(propertyID uint) {
	u.ShowAddRoomForm[propertyID] = false
}

// ToggleAssignTenantForm đảo hiển thị form gán tenant của một phòng
func (u *UIStateMaps) ToggleAssignTenantForm(roomID uint) bool {
	u.ShowAssignTenantForm[roomID] = !u.ShowAssignTenantForm[roomID]
	return u.ShowAssignTenantForm[roomID]
}

// HideAssignTenantForm ẩn form gán tenant sau khi submit thành công
func (u *UIStateMaps) HideAssignTenantForm(roomID uint) {
	u.ShowAssignTenantForm[roomID] = false
}

// SelectProperty chọn/bỏ chọn property đang xem chi tiết
func (u *UIStateMaps) SelectProperty(propertyID uint) {
	if u.SelectedPropertyID == propertyID {
		u.SelectedPropertyID = 0
		return
	}
	u.SelectedPropertyID = propertyID
}

// ToggleTenantDetail mở/đóng dòng chi tiết của một tenant trong danh sách tổng hợp
func (u *UIStateMaps) ToggleTenantDetail(key string) {
	if u.ExpandedTenantKey == key {
		u.ExpandedTenantKey = ""
		return
	}
	u.ExpandedTenantKey = key
}

// OpenPropertyEdit đánh dấu property đang sửa (chỉ một tại một thời điểm)
func (u *UIStateMaps) OpenPropertyEdit(propertyID uint) {
	u.EditingPropertyID = propertyID
}

// ClosePropertyEdit đóng form sửa property
func (u *UIStateMaps) ClosePropertyEdit() {
	u.EditingPropertyID = 0
}

// OpenRoomEdit đánh dấu phòng đang sửa (chỉ một tại một thời điểm)
func (u *UIStateMaps) OpenRoomEdit(roomID uint) {
	u.EditingRoomID = roomID
}

// CloseRoomEdit đóng form sửa phòng
func (u *UIStateMaps) CloseRoomEdit() {
	u.EditingRoomID = 0
}

// SetPropertyFilter đặt filter danh sách tenant ("all" hoặc property id)
func (u *UIStateMaps) SetPropertyFilter(filter string) {
	if filter == "" {
		filter = FilterAll
	}
	u.PropertyFilter = filter
}

// DropProperty dọn trạng thái của property vừa bị xóa cùng các phòng của nó
func (u *UIStateMaps) DropProperty(propertyID uint, roomIDs []uint) {
	delete(u.Expanded, propertyID)
	delete(u.ShowAddRoomForm, propertyID)
	for _, roomID := range roomIDs {
		delete(u.ShowAssignTenantForm, roomID)
		if u.EditingRoomID == roomID {
			u.EditingRoomID = 0
		}
	}
	if u.SelectedPropertyID == propertyID {
		u.SelectedPropertyID = 0
	}
	if u.EditingPropertyID == propertyID {
		u.EditingPropertyID = 0
	}
}

// DropRoom dọn trạng thái của phòng vừa bị xóa
func (u *UIStateMaps) DropRoom(roomID uint) {
	delete(u.ShowAssignTenantForm, roomID)
	if u.EditingRoomID == roomID {
		u.EditingRoomID = 0
	}
}
