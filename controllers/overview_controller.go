package controllers

import (
	"casaboard/response"
	"casaboard/services"

	"github.com/gin-gonic/gin"
)

// OverviewController phục vụ trang tổng quan của chủ nhà
type OverviewController struct {
	sessions *services.SessionManager
}

// NewOverviewController tạo controller tổng quan
func NewOverviewController(sessions *services.SessionManager) *OverviewController {
	return &OverviewController{sessions: sessions}
}

// GetOverview trả metrics danh mục và số phản ánh đang chờ.
// Đếm phản ánh lỗi thì hiển thị 0, không chặn cả trang.
func (ctrl *OverviewController) GetOverview(c *gin.Context) {
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

	concerns := session.Coordinator.ConcernsCount(c.Request.Context())

	response.Success(c, gin.H{
		"metrics":  session.Metrics,
		"concerns": concerns,
	})
}
