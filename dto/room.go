package dto

import (
	"strconv"

	"casaboard/models"
)

// RoomForm là buffer nhập liệu cho form tạo/sửa phòng.
// Các trường số giữ dạng chuỗi đúng như người dùng gõ; chỉ convert khi submit.
type RoomForm struct {
	RoomNumber      string `json:"roomNumber"`
	Type            string `json:"type"`
	MonthlyRent     string `json:"monthlyRent"`
	Capacity        string `json:"capacity"`
	Amenities       string `json:"amenities"`
	PaymentSchedule string `json:"paymentSchedule"`
}

// NewRoomForm trả về buffer trắng với lịch thanh toán mặc định
func NewRoomForm() RoomForm {
	return RoomForm{PaymentSchedule: models.DefaultSchedule}
}

// RoomPayload là body gửi lên kho dữ liệu khi tạo/sửa phòng
type RoomPayload struct {
	RoomNumber      string  `json:"roomNumber"`
	Type            string  `json:"type"`
	MonthlyRent     float64 `json:"monthlyRent"`
	Capacity        int     `json:"capacity"`
	Amenities       string  `json:"amenities"`
	PaymentSchedule string  `json:"paymentSchedule"`
}

// Payload convert buffer đã validate thành body gửi đi
func (f RoomForm) Payload() RoomPayload {
	rent, _ := strconv.ParseFloat(f.MonthlyRent, 64)
	capacity, _ := strconv.Atoi(f.Capacity)
	return RoomPayload{
		RoomNumber:      f.RoomNumber,
		Type:            f.Type,
		MonthlyRent:     rent,
		Capacity:        capacity,
		Amenities:       f.Amenities,
		PaymentSchedule: f.PaymentSchedule,
	}
}

// FormFromRoom seed buffer sửa phòng từ giá trị hiện tại của phòng
func FormFromRoom(room models.Room) RoomForm {
	form := RoomForm{
		RoomNumber:      room.RoomNumber,
		Type:            room.Type,
		MonthlyRent:     strconv.FormatFloat(room.MonthlyRent, 'f', -1, 64),
		Amenities:       room.Amenities,
		PaymentSchedule: room.PaymentSchedule,
	}
	if room.PaymentSchedule == "" {
		form.PaymentSchedule = models.DefaultSchedule
	}
	if room.Capacity > 0 {
		form.Capacity = strconv.Itoa(room.Capacity)
	}
	return form
}

// FormFromProperty seed buffer sửa property từ giá trị hiện tại
func FormFromProperty(p models.Property) PropertyForm {
	return PropertyForm{
		PropertyName: p.PropertyName,
		Address:      p.Address,
		Description:  p.Description,
	}
}
