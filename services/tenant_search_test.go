package services

import (
	"testing"

	"casaboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixture() []models.AggregatedTenant {
	return []models.AggregatedTenant{
		{
			Tenant:       models.Tenant{ID: 100, FirstName: "Jane", LastName: "Smith", Email: "jane@example.com"},
			RoomID:       10,
			RoomNumber:   "101",
			PropertyID:   1,
			PropertyName: "Casa Feliz",
		},
		{
			Tenant:       models.Tenant{ID: 101, FirstName: "John", LastName: "Doe", Email: "john.doe@example.com"},
			RoomID:       11,
			RoomNumber:   "102",
			PropertyID:   1,
			PropertyName: "Casa Feliz",
		},
		{
			Tenant:       models.Tenant{ID: 102, FirstName: "María", LastName: "Cruz", Email: "maria@example.com"},
			RoomID:       20,
			RoomNumber:   "201",
			PropertyID:   2,
			PropertyName: "Sunrise Villa",
		},
	}
}

func TestSearchTenantsEmptyQueryIsIdentity(t *testing.T) {
	tenants := searchFixture()

	results := SearchTenants("   ", tenants)

	assert.Equal(t, tenants, results)
}

func TestSearchTenantsByName(t *testing.T) {
	results := SearchTenants("jane", searchFixture())

	require.NotEmpty(t, results)
	assert.Equal(t, uint(100), results[0].ID)
}

func TestSearchTenantsByEmail(t *testing.T) {
	results := SearchTenants("john.doe", searchFixture())

	require.NotEmpty(t, results)
	assert.Equal(t, uint(101), results[0].ID)
}

func TestSearchTenantsIgnoresDiacritics(t *testing.T) {
	// "maría" và "maria" phải match nhau sau khi unidecode
	results := SearchTenants("maria", searchFixture())

	require.NotEmpty(t, results)
	assert.Equal(t, uint(102), results[0].ID)
}

func TestSearchTenantsByPropertyName(t *testing.T) {
	results := SearchTenants("sunrise", searchFixture())

	require.NotEmpty(t, results)
	assert.Equal(t, "Sunrise Villa", results[0].PropertyName)
}

func TestSearchTenantsRanksBestMatchFirst(t *testing.T) {
	results := SearchTenants("jane smith", searchFixture())

	require.NotEmpty(t, results)
	assert.Equal(t, uint(100), results[0].ID)
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "maria cruz", normalizeInput("  María Cruz "))
	assert.Equal(t, "", normalizeInput("   "))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("jane", "jane"))
	assert.Greater(t, calculateSimilarity("jane smith", "jane smyth"), 0.7)
	assert.Less(t, calculateSimilarity("jane", "xxxxxxxxxx"), 0.3)
}
