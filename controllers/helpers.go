package controllers

import (
	"strconv"

	"casaboard/dto"
	"casaboard/errors"
	"casaboard/response"
	"casaboard/services"

	"github.com/gin-gonic/gin"
)

// currentSession lấy phiên cho request hiện tại, tạo mới nếu cần.
// Lỗi được ghi thẳng vào response; caller chỉ cần check ok.
func currentSession(c *gin.Context, sessions *services.SessionManager) (*services.DashboardSession, bool) {
	sessionID := c.GetString("sessionId")
	token := c.GetString("token")

	session, err := sessions.Ensure(c.Request.Context(), sessionID, token)
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	return session, true
}

// writeError map AppError sang HTTP response tương ứng
func writeError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeConfirmRequired:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeNotFound:
		response.NotFound(c, appErr.Message)
	case errors.ErrCodeMissingToken, errors.ErrCodeInvalidToken, errors.ErrCodeExpiredToken, errors.ErrCodeUnauthorized:
		response.Unauthorized(c)
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField, errors.ErrCodeInvalidEmail, errors.ErrCodeInvalidAmount, errors.ErrCodeInvalidFormat:
		response.ValidationError(c, appErr.Message)
	default:
		response.Error(c, 0, appErr.Message)
	}
}

// uintParam đọc một path param dạng số; lỗi thì tự trả BadRequest
func uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return uint(value), true
}

// confirmed đọc query ?confirm=true của các thao tác phá hủy
func confirmed(c *gin.Context) bool {
	return c.Query("confirm") == "true"
}

// uiView chụp trạng thái giao diện hiện tại của phiên
func uiView(u *services.UIStateMaps) dto.UIStateView {
	return dto.UIStateView{
		Expanded:             u.Expanded,
		ShowAddRoomForm:      u.ShowAddRoomForm,
		ShowAssignTenantForm: u.ShowAssignTenantForm,
		SelectedPropertyID:   u.SelectedPropertyID,
		EditingPropertyID:    u.EditingPropertyID,
		EditingRoomID:        u.EditingRoomID,
		ExpandedTenantKey:    u.ExpandedTenantKey,
		PropertyFilter:       u.PropertyFilter,
	}
}

// dashboardSnapshot dựng response đầy đủ cho owner dashboard
func dashboardSnapshot(session *services.DashboardSession) dto.DashboardResponse {
	return dto.DashboardResponse{
		Properties: session.Store.Properties(),
		Rooms:      session.Store.RoomsByProperty(),
		Tenants:    session.Tenants,
		Metrics:    session.Metrics,
		UI:         uiView(session.UIState),
	}
}
