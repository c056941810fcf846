package services

import "casaboard/models"

// EntityStore giữ snapshot chuẩn hóa Properties -> Rooms -> Tenants của một
// phiên làm việc. Chỉ MutationCoordinator được ghi vào store, và chỉ sau khi
// kho dữ liệu đã xác nhận thay đổi. Tham chiếu tới id không còn trong store
// là no-op: response mạng có thể về sau khi entity đã bị xóa cục bộ.
type EntityStore struct {
	properties      []models.Property
	roomsByProperty map[uint][]models.Room
}

// NewEntityStore tạo store rỗng
func NewEntityStore() *EntityStore {
	return &EntityStore{
		roomsByProperty: make(map[uint][]models.Room),
	}
}

// Properties trả về bản sao danh sách property theo thứ tự hiện tại
func (s *EntityStore) Properties() []models.Property {
	out := make([]models.Property, len(s.properties))
	copy(out, s.properties)
	return out
}

// RoomsByProperty trả về bản sao map phòng theo property, dùng cho aggregate
func (s *EntityStore) RoomsByProperty() map[uint][]models.Room {
	out := make(map[uint][]models.Room, len(s.roomsByProperty))
	for id, rooms := range s.roomsByProperty {
		list := make([]models.Room, len(rooms))
		copy(list, rooms)
		out[id] = list
	}
	return out
}

// RoomsFor trả về bản sao danh sách phòng của một property
func (s *EntityStore) RoomsFor(propertyID uint) []models.Room {
	rooms, ok := s.roomsByProperty[propertyID]
	if !ok {
		return nil
	}
	out := make([]models.Room, len(rooms))
	copy(out, rooms)
	return out
}

// FindProperty tìm property theo id
func (s *EntityStore) FindProperty(id uint) (models.Property, bool) {
	for _, p := range s.properties {
		if p.ID == id {
			return p, true
		}
	}
	return models.Property{}, false
}

// FindRoom tìm phòng theo id trong một property
func (s *EntityStore) FindRoom(propertyID, roomID uint) (models.Room, bool) {
	for _, r := range s.roomsByProperty[propertyID] {
		if r.ID == roomID {
			return r, true
		}
	}
	return models.Room{}, false
}

// SetProperties thay toàn bộ danh sách property sau lần fetch bulk.
// Mỗi property được khởi tạo danh sách phòng rỗng; phòng của property
// không còn tồn tại bị loại bỏ luôn.
func (s *EntityStore) SetProperties(props []models.Property) {
	s.properties = make([]models.Property, len(props))
	copy(s.properties, props)

	rooms := make(map[uint][]models.Room, len(props))
	for _, p := range props {
		rooms[p.ID] = []models.Room{}
	}
	s.roomsByProperty = rooms
}

// UpsertProperty chèn property mới hoặc thay thế property cùng id.
// Property mới được khởi tạo danh sách phòng rỗng.
func (s *EntityStore) UpsertProperty(p models.Property) {
	for i, existing := range s.properties {
		if existing.ID == p.ID {
			s.properties[i] = p
			return
		}
	}
	s.properties = append(s.properties, p)
	s.roomsByProperty[p.ID] = []models.Room{}
}

// RemoveProperty xóa property và toàn bộ phòng của nó (cascade).
// No-op nếu id không tồn tại.
func (s *EntityStore) RemoveProperty(id uint) {
	for i, p := range s.properties {
		if p.ID == id {
			s.properties = append(s.properties[:i], s.properties[i+1:]...)
			delete(s.roomsByProperty, id)
			return
		}
	}
}

// SetRoomsForProperty thay toàn bộ danh sách phòng của một property.
// No-op nếu property không còn trong store.
func (s *EntityStore) SetRoomsForProperty(propertyID uint, rooms []models.Room) {
	if _, ok := s.roomsByProperty[propertyID]; !ok {
		if _, found := s.FindProperty(propertyID); !found {
			return
		}
	}
	list := make([]models.Room, len(rooms))
	copy(list, rooms)
	s.roomsByProperty[propertyID] = list
}

// SetAllRooms áp kết quả fan-out fetch phòng trong một lần ghi duy nhất.
// Chỉ property còn trong store mới được cập nhật.
func (s *EntityStore) SetAllRooms(rooms map[uint][]models.Room) {
	for propertyID, list := range rooms {
		s.SetRoomsForProperty(propertyID, list)
	}
}

// UpsertRoom chèn hoặc thay thế một phòng trong property của nó.
// No-op nếu property không còn trong store.
func (s *EntityStore) UpsertRoom(propertyID uint, room models.Room) {
	rooms, ok := s.roomsByProperty[propertyID]
	if !ok {
		return
	}
	for i, existing := range rooms {
		if existing.ID == room.ID {
			rooms[i] = room
			return
		}
	}
	s.roomsByProperty[propertyID] = append(rooms, room)
}

// RemoveRoom xóa một phòng; tenant trong phòng biến mất theo
func (s *EntityStore) RemoveRoom(propertyID, roomID uint) {
	rooms, ok := s.roomsByProperty[propertyID]
	if !ok {
		return
	}
	for i, r := range rooms {
		if r.ID == roomID {
			s.roomsByProperty[propertyID] = append(rooms[:i], rooms[i+1:]...)
			return
		}
	}
}

// ReplaceRoomTenants thay toàn bộ danh sách tenant của một phòng (atomic,
// không merge từng phần). No-op nếu property/phòng không còn trong store.
func (s *EntityStore) ReplaceRoomTenants(propertyID, roomID uint, tenants []models.Tenant) {
	rooms, ok := s.roomsByProperty[propertyID]
	if !ok {
		return
	}
	for i, r := range rooms {
		if r.ID == roomID {
			list := make([]models.Tenant, len(tenants))
			copy(list, tenants)
			rooms[i].Tenants = list
			return
		}
	}
}
