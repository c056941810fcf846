package services

import (
	"math"
	"strconv"

	"casaboard/models"
)

// FilterAll là giá trị filter giữ nguyên toàn bộ danh sách tenant
const FilterAll = "all"

// AggregateTenants duyệt Properties -> Rooms -> Tenants và trả về danh sách
// tenant phẳng kèm ngữ cảnh phòng/property. Hàm thuần, tính lại sau mỗi lần
// EntityStore thay đổi; lịch thanh toán luôn được resolve tại đây.
func AggregateTenants(properties []models.Property, roomsByProperty map[uint][]models.Room) []models.AggregatedTenant {
	tenants := []models.AggregatedTenant{}

	for _, property := range properties {
		for _, room := range roomsByProperty[property.ID] {
			for _, tenant := range room.Tenants {
				tenants = append(tenants, models.AggregatedTenant{
					Tenant:          tenant,
					RoomID:          room.ID,
					RoomNumber:      room.RoomNumber,
					PropertyID:      property.ID,
					PropertyName:    property.PropertyName,
					PropertyAddress: property.Address,
					PaymentSchedule: models.ResolveSchedule(tenant.PaymentSchedule, room.PaymentSchedule),
				})
			}
		}
	}

	return tenants
}

// ComputeMetrics gập số liệu tổng quan từ cùng một lần duyệt cache
func ComputeMetrics(properties []models.Property, roomsByProperty map[uint][]models.Room) models.PortfolioMetrics {
	metrics := models.PortfolioMetrics{
		TotalProperties: len(properties),
	}

	for _, property := range properties {
		for _, room := range roomsByProperty[property.ID] {
			metrics.TotalRooms++
			if room.Occupied() {
				metrics.OccupiedRooms++
			}
			metrics.TotalTenants += len(room.Tenants)
		}
	}

	metrics.AvailableRooms = metrics.TotalRooms - metrics.OccupiedRooms
	if metrics.AvailableRooms < 0 {
		metrics.AvailableRooms = 0
	}

	if metrics.TotalRooms > 0 {
		metrics.OccupancyPct = int(math.Round(100 * float64(metrics.OccupiedRooms) / float64(metrics.TotalRooms)))
	}

	return metrics
}

// Aggregate tính cả hai view dẫn xuất trong một lượt
func Aggregate(properties []models.Property, roomsByProperty map[uint][]models.Room) ([]models.AggregatedTenant, models.PortfolioMetrics) {
	return AggregateTenants(properties, roomsByProperty), ComputeMetrics(properties, roomsByProperty)
}

// FilterTenantsByProperty lọc danh sách tổng hợp theo property.
// Filter "all" (hoặc rỗng) là identity; id không parse được trả về danh sách rỗng.
func FilterTenantsByProperty(tenants []models.AggregatedTenant, filter string) []models.AggregatedTenant {
	if filter == "" || filter == FilterAll {
		return tenants
	}

	propertyID, err := strconv.ParseUint(filter, 10, 64)
	if err != nil {
		return []models.AggregatedTenant{}
	}

	filtered := []models.AggregatedTenant{}
	for _, t := range tenants {
		if t.PropertyID == uint(propertyID) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
