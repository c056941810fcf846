package services

import (
	"testing"

	"casaboard/dto"
	"casaboard/models"

	"github.com/stretchr/testify/assert"
)

func TestTenantBuffersAreIsolatedPerRoom(t *testing.T) {
	forms := NewFormStateManager()

	forms.SetTenantEmail(10, "jane@example.com")
	forms.SetTenantEmail(11, "john@example.com")

	assert.Equal(t, "jane@example.com", forms.TenantEmail(10))
	assert.Equal(t, "john@example.com", forms.TenantEmail(11))

	// Xóa buffer phòng 10 không chạm phòng 11
	forms.ClearTenantForm(10)
	assert.Equal(t, "", forms.TenantEmail(10))
	assert.Equal(t, "john@example.com", forms.TenantEmail(11))
}

func TestOpenAddRoomFormResetsAcrossProperties(t *testing.T) {
	forms := NewFormStateManager()

	forms.OpenAddRoomForm(1)
	forms.SetRoomForm(dto.RoomForm{RoomNumber: "101", Type: models.RoomTypeStudio, MonthlyRent: "5500"})

	// Mở form cho property khác: giá trị gõ dở không lọt sang
	forms.OpenAddRoomForm(2)

	assert.Equal(t, uint(2), forms.RoomFormProperty())
	assert.Equal(t, "", forms.RoomForm.RoomNumber)
	assert.Equal(t, models.DefaultSchedule, forms.RoomForm.PaymentSchedule)
}

func TestResetRoomFormRestoresDefaults(t *testing.T) {
	forms := NewFormStateManager()
	forms.SetRoomForm(dto.RoomForm{RoomNumber: "101", PaymentSchedule: models.Schedule15th})

	forms.ResetRoomForm()

	assert.Equal(t, dto.NewRoomForm(), forms.RoomForm)
}

func TestSeedRoomEditFromCurrentValues(t *testing.T) {
	forms := NewFormStateManager()

	forms.SeedRoomEdit(models.Room{
		ID:          10,
		RoomNumber:  "101",
		Type:        models.RoomTypeStudio,
		MonthlyRent: 5500,
		Capacity:    2,
	})

	assert.Equal(t, "101", forms.RoomEdit.RoomNumber)
	assert.Equal(t, "5500", forms.RoomEdit.MonthlyRent)
	assert.Equal(t, "2", forms.RoomEdit.Capacity)
	// Phòng không có lịch riêng: form hiển thị mặc định
	assert.Equal(t, models.DefaultSchedule, forms.RoomEdit.PaymentSchedule)

	forms.DiscardRoomEdit()
	assert.Equal(t, dto.RoomForm{}, forms.RoomEdit)
}

func TestSeedPropertyEditFromCurrentValues(t *testing.T) {
	forms := NewFormStateManager()

	forms.SeedPropertyEdit(models.Property{
		ID:           1,
		PropertyName: "Casa Feliz",
		Address:      "12 Mabini St",
		Description:  "Gần trường",
	})

	assert.Equal(t, "Casa Feliz", forms.PropertyEdit.PropertyName)
	assert.Equal(t, "12 Mabini St", forms.PropertyEdit.Address)

	forms.DiscardPropertyEdit()
	assert.Equal(t, dto.PropertyForm{}, forms.PropertyEdit)
}

func TestDropTenantFormRemovesBuffer(t *testing.T) {
	forms := NewFormStateManager()
	forms.SetTenantEmail(10, "jane@example.com")

	forms.DropTenantForm(10)

	assert.NotContains(t, forms.TenantFormByRoom, uint(10))
}
