package dto

import "casaboard/models"

// UIStateView là ảnh chụp trạng thái giao diện trả cho client render
type UIStateView struct {
	Expanded             map[uint]bool `json:"expanded"`
	ShowAddRoomForm      map[uint]bool `json:"showAddRoomForm"`
	ShowAssignTenantForm map[uint]bool `json:"showAssignTenantForm"`
	SelectedPropertyID   uint          `json:"selectedPropertyId,omitempty"`
	EditingPropertyID    uint          `json:"editingPropertyId,omitempty"`
	EditingRoomID        uint          `json:"editingRoomId,omitempty"`
	ExpandedTenantKey    string        `json:"expandedTenantKey,omitempty"`
	PropertyFilter       string        `json:"propertyFilter"`
}

// DashboardResponse là snapshot đầy đủ cho owner dashboard
type DashboardResponse struct {
	Properties []models.Property         `json:"properties"`
	Rooms      map[uint][]models.Room    `json:"rooms"`
	Tenants    []models.AggregatedTenant `json:"tenants"`
	Metrics    models.PortfolioMetrics   `json:"metrics"`
	UI         UIStateView               `json:"ui"`
}
