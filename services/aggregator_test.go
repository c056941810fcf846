package services

import (
	"testing"

	"casaboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func portfolioFixture() ([]models.Property, map[uint][]models.Room) {
	properties := []models.Property{
		{ID: 1, PropertyName: "Casa Feliz", Address: "12 Mabini St"},
		{ID: 2, PropertyName: "Sunrise Villa", Address: "8 Rizal Ave"},
	}
	rooms := map[uint][]models.Room{
		1: {
			{
				ID: 10, PropertyID: 1, RoomNumber: "101", Type: models.RoomTypeStudio,
				PaymentSchedule: models.Schedule15th,
				Tenants: []models.Tenant{
					// Jane không có lịch riêng: thừa kế lịch 15th của phòng
					{ID: 100, FirstName: "Jane", LastName: "Smith", Email: "jane@example.com"},
				},
			},
			{
				ID: 11, PropertyID: 1, RoomNumber: "102", Type: models.RoomTypeBedspace,
				Tenants: []models.Tenant{
					{ID: 101, FirstName: "John", LastName: "Doe", Email: "john@example.com", PaymentSchedule: models.Schedule15th},
					{ID: 102, FirstName: "Maria", LastName: "Cruz", Email: "maria@example.com"},
				},
			},
		},
		2: {
			{ID: 20, PropertyID: 2, RoomNumber: "201", Type: models.RoomTypeOneBedroom},
		},
	}
	return properties, rooms
}

func TestAggregateTenantsFlattensWithContext(t *testing.T) {
	properties, rooms := portfolioFixture()

	tenants := AggregateTenants(properties, rooms)

	require.Len(t, tenants, 3)
	jane := tenants[0]
	assert.Equal(t, "Jane Smith", jane.FullName())
	assert.Equal(t, uint(10), jane.RoomID)
	assert.Equal(t, "101", jane.RoomNumber)
	assert.Equal(t, "Casa Feliz", jane.PropertyName)
	assert.Equal(t, "12 Mabini St", jane.PropertyAddress)
	assert.Equal(t, "100-10", jane.Key())
}

func TestAggregateTenantsResolvesSchedules(t *testing.T) {
	properties, rooms := portfolioFixture()

	tenants := AggregateTenants(properties, rooms)

	require.Len(t, tenants, 3)
	// Jane thừa kế lịch của phòng
	assert.Equal(t, models.Schedule15th, tenants[0].PaymentSchedule)
	// John có lịch riêng, giữ nguyên
	assert.Equal(t, models.Schedule15th, tenants[1].PaymentSchedule)
	// Maria: phòng không có lịch, rơi về mặc định 1st
	assert.Equal(t, models.Schedule1st, tenants[2].PaymentSchedule)
}

func TestAggregateTenantsEmptyPortfolio(t *testing.T) {
	tenants := AggregateTenants(nil, map[uint][]models.Room{})
	assert.NotNil(t, tenants)
	assert.Empty(t, tenants)
}

func TestComputeMetrics(t *testing.T) {
	properties, rooms := portfolioFixture()

	metrics := ComputeMetrics(properties, rooms)

	assert.Equal(t, 2, metrics.TotalProperties)
	assert.Equal(t, 3, metrics.TotalRooms)
	assert.Equal(t, 2, metrics.OccupiedRooms)
	assert.Equal(t, 1, metrics.AvailableRooms)
	assert.Equal(t, 3, metrics.TotalTenants)
	// 2/3 phòng có người: làm tròn 67
	assert.Equal(t, 67, metrics.OccupancyPct)
}

func TestComputeMetricsEmptyPortfolio(t *testing.T) {
	metrics := ComputeMetrics(nil, map[uint][]models.Room{})

	assert.Equal(t, models.PortfolioMetrics{}, metrics)
}

func TestMetricsAfterCascadeDelete(t *testing.T) {
	store := NewEntityStore()
	properties, rooms := portfolioFixture()
	store.SetProperties(properties)
	store.SetAllRooms(rooms)

	store.RemoveProperty(1)
	store.RemoveProperty(2)

	tenants, metrics := Aggregate(store.Properties(), store.RoomsByProperty())
	assert.Empty(t, tenants)
	assert.Equal(t, models.PortfolioMetrics{}, metrics)
}

func TestFilterTenantsByProperty(t *testing.T) {
	properties, rooms := portfolioFixture()
	tenants := AggregateTenants(properties, rooms)

	assert.Len(t, FilterTenantsByProperty(tenants, FilterAll), 3)
	assert.Len(t, FilterTenantsByProperty(tenants, ""), 3)

	filtered := FilterTenantsByProperty(tenants, "1")
	require.Len(t, filtered, 3)
	for _, tenant := range filtered {
		assert.Equal(t, uint(1), tenant.PropertyID)
	}

	assert.Empty(t, FilterTenantsByProperty(tenants, "2"))
	assert.Empty(t, FilterTenantsByProperty(tenants, "not-a-number"))
}

func TestResolveSchedulePrecedence(t *testing.T) {
	assert.Equal(t, models.Schedule15th, models.ResolveSchedule(models.Schedule15th, models.Schedule1st))
	assert.Equal(t, models.Schedule15th, models.ResolveSchedule("", models.Schedule15th))
	assert.Equal(t, models.Schedule1st, models.ResolveSchedule("", ""))
}
