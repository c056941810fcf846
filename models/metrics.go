package models

// PortfolioMetrics là số liệu tổng quan tính lại sau mỗi lần cache thay đổi
type PortfolioMetrics struct {
	TotalProperties int `json:"totalProperties"`
	TotalRooms      int `json:"totalRooms"`
	OccupiedRooms   int `json:"occupiedRooms"`
	AvailableRooms  int `json:"availableRooms"`
	TotalTenants    int `json:"totalTenants"`
	OccupancyPct    int `json:"occupancyPct"`
}
