package validator

import (
	"testing"

	"casaboard/dto"
	"casaboard/errors"
	"casaboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePropertyForm(t *testing.T) {
	err := ValidatePropertyForm(&dto.PropertyForm{PropertyName: "Casa Feliz", Address: "12 Mabini St"})
	assert.NoError(t, err)

	err = ValidatePropertyForm(&dto.PropertyForm{PropertyName: "Casa Feliz"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeRequiredField))

	// Toàn khoảng trắng tính là rỗng
	err = ValidatePropertyForm(&dto.PropertyForm{PropertyName: "   ", Address: "12 Mabini St"})
	require.Error(t, err)
	assert.Equal(t, "Please fill property name and address.", errors.DisplayMessage(err, ""))
}

func TestValidateRoomForm(t *testing.T) {
	valid := dto.RoomForm{
		RoomNumber:      "101",
		Type:            models.RoomTypeStudio,
		MonthlyRent:     "5500",
		Capacity:        "2",
		PaymentSchedule: models.Schedule15th,
	}
	assert.NoError(t, ValidateRoomForm(&valid))

	missing := dto.RoomForm{RoomNumber: "101"}
	err := ValidateRoomForm(&missing)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeRequiredField))

	badType := valid
	badType.Type = "Penthouse"
	err = ValidateRoomForm(&badType)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))

	badRent := valid
	badRent.MonthlyRent = "-100"
	err = ValidateRoomForm(&badRent)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidAmount))

	badCapacity := valid
	badCapacity.Capacity = "two"
	err = ValidateRoomForm(&badCapacity)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidFormat))

	// Capacity để trống là hợp lệ
	noCapacity := valid
	noCapacity.Capacity = ""
	assert.NoError(t, ValidateRoomForm(&noCapacity))

	badSchedule := valid
	badSchedule.PaymentSchedule = "30th"
	err = ValidateRoomForm(&badSchedule)
	require.Error(t, err)
	assert.Equal(t, "Payment schedule must be 1st or 15th.", errors.DisplayMessage(err, ""))
}

func TestValidateTenantEmail(t *testing.T) {
	trimmed, err := ValidateTenantEmail("  jane@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", trimmed)

	_, err = ValidateTenantEmail("   ")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeRequiredField))

	_, err = ValidateTenantEmail("not-an-email")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidEmail))
}

func TestValidateBillPayment(t *testing.T) {
	amount, err := ValidateBillPayment(&dto.BillPaymentForm{Type: models.BillTypeRent, Amount: "5500.50"})
	require.NoError(t, err)
	assert.Equal(t, 5500.50, amount)

	_, err = ValidateBillPayment(&dto.BillPaymentForm{Type: "donation", Amount: "100"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))

	_, err = ValidateBillPayment(&dto.BillPaymentForm{Type: models.BillTypeUtility, Amount: ""})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeRequiredField))

	for _, bad := range []string{"abc", "0", "-5"} {
		_, err = ValidateBillPayment(&dto.BillPaymentForm{Type: models.BillTypeUtility, Amount: bad})
		require.Error(t, err, "amount %q", bad)
		assert.Equal(t, "Please enter a valid amount.", errors.DisplayMessage(err, ""))
	}
}
