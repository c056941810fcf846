package controllers

import (
	"casaboard/response"
	"casaboard/services"

	"github.com/gin-gonic/gin"
)

// SessionController quản lý vòng đời phiên dashboard
type SessionController struct {
	sessions *services.SessionManager
}

// NewSessionController tạo controller phiên
func NewSessionController(sessions *services.SessionManager) *SessionController {
	return &SessionController{sessions: sessions}
}

// Register đăng ký phiên mới cho token hiện tại
func (ctrl *SessionController) Register(c *gin.Context) {
	session, ok := currentSession(c, ctrl.sessions)
	if !ok {
		return
	}

	response.Success(c, gin.H{
		"sessionId": session.ID,
		"userId":    session.Credentials.UserID,
		"role":      session.Credentials.Role,
	})
}

// Logout hủy phiên; toàn bộ cache và trạng thái giao diện mất theo
func (ctrl *SessionController) Logout(c *gin.Context) {
	sessionID := c.GetString("sessionId")
	ctrl.sessions.Drop(c.Request.Context(), sessionID)
	response.Success(c, nil)
}
