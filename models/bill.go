package models

// Các loại thanh toán tenant có thể nộp
const (
	BillTypeRent    = "rent"
	BillTypeUtility = "utility"
)

// Bill là một khoản thanh toán tenant đã nộp, chờ chủ nhà xác nhận
type Bill struct {
	ID           uint    `json:"id"`
	Type         string  `json:"type"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
	Verification string  `json:"verification"`
	CreatedAt    string  `json:"created_at"`
}
