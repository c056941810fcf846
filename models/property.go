package models

// Property đại diện cho một tòa nhà/căn hộ thuộc sở hữu của chủ nhà
type Property struct {
	ID           uint   `json:"id"`
	PropertyName string `json:"propertyName"`
	Address      string `json:"address"`
	Description  string `json:"description"`
}

// Owner là thông tin chủ nhà trả về kèm phòng của tenant
type Owner struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}
