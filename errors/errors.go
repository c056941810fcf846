package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeExpiredToken ErrorCode = "EXPIRED_TOKEN"
	ErrCodeInvalidRole  ErrorCode = "INVALID_ROLE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidEmail  ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Remote store errors
	ErrCodeRemote   ErrorCode = "REMOTE_ERROR"
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Business errors
	ErrCodeConfirmRequired ErrorCode = "CONFIRM_REQUIRED"
	ErrCodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsCode kiểm tra error có mang mã lỗi cho trước không
func IsCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

// DisplayMessage trả về chuỗi hiển thị cho người dùng: message của AppError
// nếu có, ngược lại dùng fallback của từng hành động
func DisplayMessage(err error, fallback string) string {
	if appErr := GetAppError(err); appErr != nil && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
