package controllers

import (
	"casaboard/response"
	"casaboard/services"

	"github.com/gin-gonic/gin"
)

// TenantController phục vụ view tenant tổng hợp toàn danh mục
type TenantController struct {
	sessions *services.SessionManager
}

// NewTenantController tạo controller tenant
func NewTenantController(sessions *services.SessionManager) *TenantController {
	return &TenantController{sessions: sessions}
}

// GetTenants trả danh sách tenant tổng hợp, lọc theo property nếu có.
// Query ?property ghi đè và lưu lại filter của phiên.
func (ctrl *TenantController) GetTenants(c *gin.Context) {
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

	if filter, exists := c.GetQuery("property"); exists {
		session.UIState.SetPropertyFilter(filter)
	}

	tenants := services.FilterTenantsByProperty(session.Tenants, session.UIState.PropertyFilter)
	response.SuccessWithTotal(c, tenants, len(tenants))
}

// SearchTenants tìm tenant theo chuỗi tự do (tên, email, property, phòng)
func (ctrl *TenantController) SearchTenants(c *gin.Context) {
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

	results := services.SearchTenants(c.Query("q"), session.Tenants)
	response.SuccessWithTotal(c, results, len(results))
}
