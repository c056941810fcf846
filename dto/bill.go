package dto

import "casaboard/models"

// BillPaymentForm là buffer nhập liệu khi tenant nộp thanh toán
type BillPaymentForm struct {
	Amount string `json:"amount"`
	Type   string `json:"type"`
}

// BillPaymentRequest là body gửi lên kho dữ liệu
type BillPaymentRequest struct {
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

// BillListResponse là cấu trúc trả về của GET /bills
type BillListResponse struct {
	Bills []models.Bill `json:"bills"`
}

// ConcernsCountResponse là cấu trúc trả về của GET /concerns/count
type ConcernsCountResponse struct {
	Count int `json:"count"`
}
