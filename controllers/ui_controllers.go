package controllers

import (
	"casaboard/dto"
	"casaboard/response"
	"casaboard/services"

	"github.com/gin-gonic/gin"
)

// UIController phục vụ các toggle trạng thái giao diện và buffer form.
// Không endpoint nào ở đây chạm tới kho dữ liệu.
type UIController struct {
	sessions *services.SessionManager
}

// NewUIController tạo controller trạng thái giao diện
func NewUIController(sessions *services.SessionManager) *UIController {
	return &UIController{sessions: sessions}
}

// ToggleExpanded đảo trạng thái mở/đóng bảng phòng của property
func (ctrl *UIController) ToggleExpanded(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	session.Lock()
	defer session.Unlock()

	session.UIState.ToggleExpanded(id)
	response.Success(c, uiView(session.UIState))
}

// ToggleAddRoomForm đảo hiển thị form thêm phòng; mở ra thì buffer reset
// về mặc định và gắn với property này
func (ctrl *UIController) ToggleAddRoomForm(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	session.Lock()
	defer session.Unlock()

	if session.UIState.ToggleAddRoomForm(id) {
		session.Forms.OpenAddRoomForm(id)
	}
	response.Success(c, uiView(session.UIState))
}

// SelectProperty chọn/bỏ chọn property đang xem chi tiết
func (ctrl *UIController) SelectProperty(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	session.Lock()
	defer session.Unlock()

	session.UIState.SelectProperty(id)
	response.Success(c, uiView(session.UIState))
}

// OpenPropertyEdit mở form sửa property, seed buffer từ cache.
// Đang sửa property khác thì chuyển sang cái mới, thay đổi dở bị bỏ.
func (ctrl *UIController) OpenPropertyEdit(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	session.Lock()
	defer session.Unlock()

	property, found := session.Store.FindProperty(id)
	if !found {
		response.NotFound(c, "Property not found")
		return
	}

	session.Forms.SeedPropertyEdit(property)
	session.UIState.OpenPropertyEdit(id)
	response.Success(c, uiView(session.UIState))
}

// ClosePropertyEdit đóng form sửa property, bỏ thay đổi dở
func (ctrl *UIController) ClosePropertyEdit(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}

	session.Lock()
	defer session.Unlock()

	session.Forms.DiscardPropertyEdit()
	session.UIState.ClosePropertyEdit()
	response.Success(c, uiView(session.UIState))
}

// ToggleAssignTenantForm đảo hiển thị form gán tenant của một phòng;
// đóng lại thì buffer email của phòng đó bị xóa
func (ctrl *UIController) ToggleAssignTenantForm(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}
	roomID, ok := uintParam(c, "roomId")
	if !ok {
		return
	}

	session.Lock()
	defer session.Unlock()

	if !session.UIState.ToggleAssignTenantForm(roomID) {
		session.Forms.ClearTenantForm(roomID)
	}
	response.Success(c, uiView(session.UIState))
}

// OpenRoomEdit mở form sửa phòng, seed buffer từ cache
func (ctrl *UIController) OpenRoomEdit(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}
	propertyID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	roomID, ok := uintParam(c, "roomId")
	if !ok {
		return
	}

	session.Lock()
	defer session.Unlock()

	room, found := session.Store.FindRoom(propertyID, roomID)
	if !found {
		response.NotFound(c, "Room not found")
		return
	}

	session.Forms.SeedRoomEdit(room)
	session.UIState.OpenRoomEdit(roomID)
	response.Success(c, uiView(session.UIState))
}

// CloseRoomEdit đóng form sửa phòng, bỏ thay đổi dở
func (ctrl *UIController) CloseRoomEdit(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}

	session.Lock()
	defer session.Unlock()

	session.Forms.DiscardRoomEdit()
	session.UIState.CloseRoomEdit()
	response.Success(c, uiView(session.UIState))
}

// ToggleTenantDetail đảo panel chi tiết của một tenant trong view tổng hợp
func (ctrl *UIController) ToggleTenantDetail(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}

	key := c.Param("key")
	if key == "" {
		response.BadRequest(c, "Invalid key parameter")
		return
	}

	session.Lock()
	defer session.Unlock()

	session.UIState.ToggleTenantDetail(key)
	response.Success(c, uiView(session.UIState))
}

// SetPropertyFilter đặt filter property của view tenant
func (ctrl *UIController) SetPropertyFilter(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}

	var body struct {
		Filter string `json:"filter"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session.Lock()
	defer session.Unlock()

	session.UIState.SetPropertyFilter(body.Filter)
	response.Success(c, uiView(session.UIState))
}

// SetPropertyForm cập nhật buffer form thêm property theo từng phím gõ
func (ctrl *UIController) SetPropertyForm(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}

	var form dto.PropertyForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session.Lock()
	defer session.Unlock()

	session.Forms.SetPropertyForm(form)
	response.Success(c, form)
}

// SetPropertyEditForm cập nhật buffer form sửa property
func (ctrl *UIController) SetPropertyEditForm(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}

	var form dto.PropertyForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session.Lock()
	defer session.Unlock()

	session.Forms.SetPropertyEdit(form)
	response.Success(c, form)
}

// SetRoomForm cập nhật buffer form thêm phòng
func (ctrl *UIController) SetRoomForm(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}

	var form dto.RoomForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session.Lock()
	defer session.Unlock()

	session.Forms.SetRoomForm(form)
	response.Success(c, form)
}

// SetRoomEditForm cập nhật buffer form sửa phòng
func (ctrl *UIController) SetRoomEditForm(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}

	var form dto.RoomForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session.Lock()
	defer session.Unlock()

	session.Forms.SetRoomEdit(form)
	response.Success(c, form)
}

// SetTenantEmail cập nhật buffer email gán tenant của một phòng.
// Mỗi phòng một buffer riêng, gõ ở phòng này không chạm buffer phòng khác.
func (ctrl *UIController) SetTenantEmail(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}
	roomID, ok := uintParam(c, "roomId")
	if !ok {
		return
	}

	var form dto.AssignTenantForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session.Lock()
	defer session.Unlock()

	session.Forms.SetTenantEmail(roomID, form.Email)
	response.Success(c, form)
}
