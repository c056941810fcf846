package controllers

import (
	"fmt"

	"casaboard/dto"
	"casaboard/response"
	"casaboard/services"

	"github.com/gin-gonic/gin"
)

// RoomController phục vụ CRUD phòng và gán/gỡ tenant
type RoomController struct {
	sessions *services.SessionManager
}

// NewRoomController tạo controller phòng
func NewRoomController(sessions *services.SessionManager) *RoomController {
	return &RoomController{sessions: sessions}
}

// CreateRoom thêm phòng vào một property
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}

	propertyID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var form dto.RoomForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if form.PaymentSchedule == "" {
		form.PaymentSchedule = dto.NewRoomForm().PaymentSchedule
	}

	session.Lock()
	defer session.Unlock()

	session.Forms.SetRoomForm(form)

	created, err := session.Coordinator.CreateRoom(c.Request.Context(), propertyID, form)
	if err != nil {
		writeError(c, err)
		return
	}

	session.Forms.ResetRoomForm()
	session.UIState.HideAddRoomForm(propertyID)
	session.Recompute()

	response.Success(c, created)
}

// UpdateRoom cập nhật phòng đang sửa
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
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

	var form dto.RoomForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session.Lock()
	defer session.Unlock()

	session.Forms.SetRoomEdit(form)

	updated, err := session.Coordinator.UpdateRoom(c.Request.Context(), propertyID, roomID, form)
	if err != nil {
		writeError(c, err)
		return
	}

	session.Forms.DiscardRoomEdit()
	session.UIState.CloseRoomEdit()
	session.Recompute()

	response.Success(c, updated)
}

// DeleteRoom xóa phòng; yêu cầu ?confirm=true
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
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

	if err := session.Coordinator.DeleteRoom(c.Request.Context(), propertyID, roomID, confirmed(c)); err != nil {
		writeError(c, err)
		return
	}

	session.UIState.DropRoom(roomID)
	session.Forms.DropTenantForm(roomID)
	session.Recompute()

	response.Success(c, nil)
}

// AssignTenant gán tenant theo email; không có email trong body thì dùng
// buffer riêng của phòng
func (ctrl *RoomController) AssignTenant(c *gin.Context) {
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

	var form dto.AssignTenantForm
	_ = c.ShouldBindJSON(&form)

	session.Lock()
	defer session.Unlock()

	email := form.Email
	if email == "" {
		email = session.Forms.TenantEmail(roomID)
	} else {
		session.Forms.SetTenantEmail(roomID, email)
	}

	room, err := session.Coordinator.AssignTenant(c.Request.Context(), propertyID, roomID, email)
	if err != nil {
		writeError(c, err)
		return
	}

	session.Forms.ClearTenantForm(roomID)
	session.UIState.HideAssignTenantForm(roomID)
	session.Recompute()

	response.Success(c, room)
}

// RemoveTenant gỡ tenant khỏi phòng; yêu cầu ?confirm=true
func (ctrl *RoomController) RemoveTenant(c *gin.Context) {
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
	tenantID, ok := uintParam(c, "tenantId")
	if !ok {
		return
	}

	session.Lock()
	defer session.Unlock()

	room, err := session.Coordinator.RemoveTenant(c.Request.Context(), propertyID, roomID, tenantID, confirmed(c))
	if err != nil {
		writeError(c, err)
		return
	}

	// Panel chi tiết của tenant vừa gỡ không còn gì để hiển thị
	if session.UIState.ExpandedTenantKey == fmt.Sprintf("%d-%d", tenantID, roomID) {
		session.UIState.ExpandedTenantKey = ""
	}
	session.Recompute()

	response.Success(c, room)
}
