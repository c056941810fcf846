package models

import "fmt"

// Tenant là người thuê được gán vào đúng một phòng.
// PaymentSchedule rỗng nghĩa là tenant dùng lịch của phòng.
type Tenant struct {
	ID              uint   `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	PaymentSchedule string `json:"paymentSchedule,omitempty"`
}

// FullName ghép họ tên để hiển thị và tìm kiếm
func (t Tenant) FullName() string {
	return t.FirstName + " " + t.LastName
}

// AggregatedTenant là view dẫn xuất: tenant kèm ngữ cảnh phòng và property.
// PaymentSchedule ở đây luôn là giá trị đã resolve.
type AggregatedTenant struct {
	Tenant
	RoomID          uint   `json:"roomId"`
	RoomNumber      string `json:"roomNumber"`
	PropertyID      uint   `json:"propertyId"`
	PropertyName    string `json:"propertyName"`
	PropertyAddress string `json:"propertyAddress"`
	PaymentSchedule string `json:"paymentSchedule"`
}

// Key định danh một dòng tenant trong danh sách tổng hợp
func (t AggregatedTenant) Key() string {
	return fmt.Sprintf("%d-%d", t.ID, t.RoomID)
}

// TenantResidence là kết quả tra cứu "phòng của tôi" phía tenant
type TenantResidence struct {
	Room     *Room     `json:"room"`
	Owner    *Owner    `json:"owner"`
	Property *Property `json:"property"`
}
