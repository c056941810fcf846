package controllers

import (
	"casaboard/dto"
	"casaboard/response"
	"casaboard/services"

	"github.com/gin-gonic/gin"
)

// MeController phục vụ các view của tenant đang đăng nhập
type MeController struct {
	sessions *services.SessionManager
}

// NewMeController tạo controller cho tenant
func NewMeController(sessions *services.SessionManager) *MeController {
	return &MeController{sessions: sessions}
}

// GetMyRoom trả phòng, property và chủ nhà của tenant.
// Chưa được gán phòng thì data là null, không phải lỗi.
func (ctrl *MeController) GetMyRoom(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}
	session.Lock()
	defer session.Unlock()

	residence, err := session.Coordinator.MyRoom(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, residence)
}

// GetBills trả các khoản thanh toán tenant đã nộp
func (ctrl *MeController) GetBills(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}
	session.Lock()
	defer session.Unlock()

	bills, err := session.Coordinator.ListBills(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessWithTotal(c, bills, len(bills))
}

// SubmitBill nộp một khoản thanh toán rồi trả danh sách đã làm mới
func (ctrl *MeController) SubmitBill(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}

	var form dto.BillPaymentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session.Lock()
	defer session.Unlock()

	if err := session.Coordinator.SubmitBill(c.Request.Context(), form); err != nil {
		writeError(c, err)
		return
	}

	bills, err := session.Coordinator.ListBills(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessWithTotal(c, bills, len(bills))
}
