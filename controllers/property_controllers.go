package controllers

import (
	"casaboard/dto"
	"casaboard/response"
	"casaboard/services"

	"github.com/gin-gonic/gin"
)

// PropertyController phục vụ dashboard và CRUD property
type PropertyController struct {
	sessions *services.SessionManager
}

// NewPropertyController tạo controller property
func NewPropertyController(sessions *services.SessionManager) *PropertyController {
	return &PropertyController{sessions: sessions}
}

// GetDashboard trả snapshot đầy đủ: property, phòng, tenant tổng hợp,
// metrics và trạng thái giao diện. Lần gọi đầu của phiên fetch từ kho dữ liệu.
func (ctrl *PropertyController) GetDashboard(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}
	session.Lock()
	defer session.Unlock()

	if err := session.EnsureLoaded(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, dashboardSnapshot(session))
}

// RefreshDashboard fetch lại toàn bộ snapshot từ kho dữ liệu
func (ctrl *PropertyController) RefreshDashboard(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}
	session.Lock()
	defer session.Unlock()

	if err := session.Coordinator.RefreshAll(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	session.UIState.InitForProperties(session.Store.Properties())
	session.Recompute()

	response.Success(c, dashboardSnapshot(session))
}

// CreateProperty tạo property mới từ form; cache chỉ cập nhật sau khi
// kho dữ liệu xác nhận, lỗi thì buffer form giữ nguyên cho người dùng sửa
func (ctrl *PropertyController) CreateProperty(c *gin.Context) {
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

	created, err := session.Coordinator.CreateProperty(c.Request.Context(), form)
	if err != nil {
		writeError(c, err)
		return
	}

	session.Forms.ResetPropertyForm()
	session.Recompute()

	response.Success(c, created)
}

// UpdateProperty cập nhật property đang sửa, đóng form khi thành công
func (ctrl *PropertyController) UpdateProperty(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}

	id, ok := uintParam(c, "id")
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

	updated, err := session.Coordinator.UpdateProperty(c.Request.Context(), id, form)
	if err != nil {
		writeError(c, err)
		return
	}

	session.Forms.DiscardPropertyEdit()
	session.UIState.ClosePropertyEdit()
	session.Recompute()

	response.Success(c, updated)
}

// DeleteProperty xóa property kèm toàn bộ phòng của nó.
// Thiếu ?confirm=true thì không có request nào rời khỏi gateway.
func (ctrl *PropertyController) DeleteProperty(c *gin.Context) {
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

	// Giữ danh sách phòng trước khi cache cascade, để dọn trạng thái giao diện
	rooms := session.Store.RoomsFor(id)
	roomIDs := make([]uint, 0, len(rooms))
	for _, room := range rooms {
		roomIDs = append(roomIDs, room.ID)
	}

	if err := session.Coordinator.DeleteProperty(c.Request.Context(), id, confirmed(c)); err != nil {
		writeError(c, err)
		return
	}

	session.UIState.DropProperty(id, roomIDs)
	for _, roomID := range roomIDs {
		session.Forms.DropTenantForm(roomID)
	}
	if session.Forms.RoomFormProperty() == id {
		session.Forms.ResetRoomForm()
	}
	session.Recompute()

	response.Success(c, nil)
}
