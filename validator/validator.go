package validator

import (
	"regexp"
	"strconv"
	"strings"

	"casaboard/dto"
	"casaboard/errors"
	"casaboard/models"
)

// ValidatePropertyForm validate form tạo/sửa property trước khi gửi request
func ValidatePropertyForm(form *dto.PropertyForm) error {
	if strings.TrimSpace(form.PropertyName) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Please fill property name and address.", nil)
	}

	if strings.TrimSpace(form.Address) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Please fill property name and address.", nil)
	}

	return nil
}

// ValidateRoomForm validate form tạo/sửa phòng trước khi gửi request
func ValidateRoomForm(form *dto.RoomForm) error {
	if strings.TrimSpace(form.RoomNumber) == "" || form.Type == "" || form.MonthlyRent == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Please fill required room fields (number, type, monthly rent).", nil)
	}

	if !models.IsValidRoomType(form.Type) {
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid room type.", nil)
	}

	rent, err := strconv.ParseFloat(form.MonthlyRent, 64)
	if err != nil || rent < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Monthly rent must be a valid amount.", nil)
	}

	if form.Capacity != "" {
		capacity, err := strconv.Atoi(form.Capacity)
		if err != nil || capacity < 0 {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Capacity must be a whole number.", nil)
		}
	}

	if form.PaymentSchedule != "" && !models.IsValidSchedule(form.PaymentSchedule) {
		return errors.NewAppError(errors.ErrCodeValidation, "Payment schedule must be 1st or 15th.", nil)
	}

	return nil
}

// ValidateTenantEmail validate email trước khi gán tenant; trả về email đã trim
func ValidateTenantEmail(email string) (string, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "", errors.NewAppError(errors.ErrCodeRequiredField, "Please enter tenant email address.", nil)
	}

	if !isValidEmail(trimmed) {
		return "", errors.NewAppError(errors.ErrCodeInvalidEmail, "Please enter a valid email address.", nil)
	}

	return trimmed, nil
}

// ValidateBillPayment validate khoản thanh toán tenant nộp
func ValidateBillPayment(form *dto.BillPaymentForm) (float64, error) {
	if form.Type != models.BillTypeRent && form.Type != models.BillTypeUtility {
		return 0, errors.NewAppError(errors.ErrCodeValidation, "Payment type must be rent or utility.", nil)
	}

	if strings.TrimSpace(form.Amount) == "" {
		return 0, errors.NewAppError(errors.ErrCodeRequiredField, "Please enter the amount paid.", nil)
	}

	amount, err := strconv.ParseFloat(form.Amount, 64)
	if err != nil || amount <= 0 {
		return 0, errors.NewAppError(errors.ErrCodeInvalidAmount, "Please enter a valid amount.", nil)
	}

	return amount, nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
