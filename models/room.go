package models

// Các loại phòng cố định
const (
	RoomTypeBedspace   = "Bedspace"
	RoomTypeStudio     = "Studio"
	RoomTypeOneBedroom = "One Bedroom"
	RoomTypeTwoBedroom = "Two Bedroom"
	RoomTypeCondoShare = "Condo Sharing"
)

// RoomTypes là danh sách loại phòng hợp lệ, dùng cho validate và render form
var RoomTypes = []string{
	RoomTypeBedspace,
	RoomTypeStudio,
	RoomTypeOneBedroom,
	RoomTypeTwoBedroom,
	RoomTypeCondoShare,
}

// Lịch thanh toán theo ngày trong tháng
const (
	Schedule1st  = "1st"
	Schedule15th = "15th"
)

// DefaultSchedule áp dụng khi cả tenant và phòng đều không có lịch riêng
const DefaultSchedule = Schedule1st

// Room là một đơn vị cho thuê nằm trong một Property
type Room struct {
	ID              uint     `json:"id"`
	PropertyID      uint     `json:"propertyId"`
	RoomNumber      string   `json:"roomNumber"`
	Type            string   `json:"type"`
	MonthlyRent     float64  `json:"monthlyRent"`
	Capacity        int      `json:"capacity"`
	Amenities       string   `json:"amenities"`
	PaymentSchedule string   `json:"paymentSchedule"`
	Tenants         []Tenant `json:"tenants"`
}

// Occupied kiểm tra phòng có tenant hay không
func (r Room) Occupied() bool {
	return len(r.Tenants) > 0
}

// IsValidRoomType kiểm tra loại phòng hợp lệ
func IsValidRoomType(t string) bool {
	for _, rt := range RoomTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// IsValidSchedule kiểm tra lịch thanh toán hợp lệ
func IsValidSchedule(s string) bool {
	return s == Schedule1st || s == Schedule15th
}

// ResolveSchedule trả về lịch thanh toán theo thứ tự ưu tiên:
// lịch riêng của tenant, rồi lịch của phòng, cuối cùng là mặc định
func ResolveSchedule(tenantSchedule, roomSchedule string) string {
	if tenantSchedule != "" {
		return tenantSchedule
	}
	if roomSchedule != "" {
		return roomSchedule
	}
	return DefaultSchedule
}
