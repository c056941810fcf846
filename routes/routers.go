package routes

import (
	"casaboard/constants"
	"casaboard/controllers"
	middlewares "casaboard/middleware"
	"casaboard/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, sessions *services.SessionManager) {

	sessionController := controllers.NewSessionController(sessions)
	propertyController := controllers.NewPropertyController(sessions)
	roomController := controllers.NewRoomController(sessions)
	tenantController := controllers.NewTenantController(sessions)
	uiController := controllers.NewUIController(sessions)
	overviewController := controllers.NewOverviewController(sessions)
	meController := controllers.NewMeController(sessions)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/session", middlewares.AuthMiddleware(), sessionController.Register)
	v1.DELETE("/session", middlewares.AuthMiddleware(), sessionController.Logout)

	owner := middlewares.AuthMiddleware(constants.RoleOwner)
	v1.GET("/dashboard", owner, propertyController.GetDashboard)
	v1.POST("/dashboard/refresh", owner, propertyController.RefreshDashboard)

	v1.POST("/properties", owner, propertyController.CreateProperty)
	v1.PUT("/properties/:id", owner, propertyController.UpdateProperty)
	v1.DELETE("/properties/:id", owner, propertyController.DeleteProperty)

	v1.POST("/properties/:id/rooms", owner, roomController.CreateRoom)
	v1.PUT("/properties/:id/rooms/:roomId", owner, roomController.UpdateRoom)
	v1.DELETE("/properties/:id/rooms/:roomId", owner, roomController.DeleteRoom)
	v1.POST("/properties/:id/rooms/:roomId/tenants", owner, roomController.AssignTenant)
	v1.DELETE("/properties/:id/rooms/:roomId/tenants/:tenantId", owner, roomController.RemoveTenant)

	v1.GET("/tenants", owner, tenantController.GetTenants)
	v1.GET("/tenants/search", owner, tenantController.SearchTenants)
	v1.GET("/overview", owner, overviewController.GetOverview)

	ui := v1.Group("/ui", owner)
	ui.POST("/properties/:id/expand", uiController.ToggleExpanded)
	ui.POST("/properties/:id/add-room", uiController.ToggleAddRoomForm)
	ui.POST("/properties/:id/select", uiController.SelectProperty)
	ui.POST("/properties/:id/edit", uiController.OpenPropertyEdit)
	ui.DELETE("/property-edit", uiController.ClosePropertyEdit)
	ui.POST("/properties/:id/rooms/:roomId/edit", uiController.OpenRoomEdit)
	ui.DELETE("/room-edit", uiController.CloseRoomEdit)
	ui.POST("/rooms/:roomId/assign-form", uiController.ToggleAssignTenantForm)
	ui.POST("/tenants/:key/expand", uiController.ToggleTenantDetail)
	ui.PUT("/filter", uiController.SetPropertyFilter)

	forms := v1.Group("/forms", owner)
	forms.PUT("/property", uiController.SetPropertyForm)
	forms.PUT("/property-edit", uiController.SetPropertyEditForm)
	forms.PUT("/room", uiController.SetRoomForm)
	forms.PUT("/room-edit", uiController.SetRoomEditForm)
	forms.PUT("/rooms/:roomId/tenant", uiController.SetTenantEmail)

	tenant := middlewares.AuthMiddleware(constants.RoleTenant)
	v1.GET("/me/room", tenant, meController.GetMyRoom)
	v1.GET("/me/bills", tenant, meController.GetBills)
	v1.POST("/me/bills", tenant, meController.SubmitBill)
}
