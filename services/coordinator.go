package services

import (
	"context"
	"fmt"
	"sync"

	"casaboard/dto"
	"casaboard/errors"
	"casaboard/models"
	"casaboard/services/logger"
	"casaboard/validator"
)

// CallState là trạng thái của một hành động: idle -> pending -> applied/failed
type CallState string

const (
	CallIdle    CallState = "idle"
	CallPending CallState = "pending"
	CallApplied CallState = "applied"
	CallFailed  CallState = "failed"
)

// MutationCoordinator là thành phần duy nhất được phép gọi kho dữ liệu.
// Mỗi hành động của người dùng thành đúng một request; input được validate
// trước khi gửi, và store chỉ được ghi sau khi kho dữ liệu xác nhận. Không
// có cập nhật lạc quan, không retry tự động.
type MutationCoordinator struct {
	backend *BackendClient
	store   *EntityStore
	logger  logger.Logger

	mu     sync.Mutex
	states map[string]CallState
}

// MutationCoordinatorOptions gom dependency khi khởi tạo
type MutationCoordinatorOptions struct {
	Backend *BackendClient
	Store   *EntityStore
	Logger  logger.Logger
}

// NewMutationCoordinator tạo coordinator cho một phiên
func NewMutationCoordinator(opts MutationCoordinatorOptions) *MutationCoordinator {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &MutationCoordinator{
		backend: opts.Backend,
		store:   opts.Store,
		logger:  l,
		states:  make(map[string]CallState),
	}
}

// ActionState đọc trạng thái của một hành động, mặc định idle
func (m *MutationCoordinator) ActionState(key string) CallState {
	m.mu.Lock()
	defer m.mu.Unlock()
	if state, ok := m.states[key]; ok {
		return state
	}
	return CallIdle
}

func (m *MutationCoordinator) begin(key string) {
	m.mu.Lock()
	m.states[key] = CallPending
	m.mu.Unlock()
}

func (m *MutationCoordinator) finish(key string, err error) {
	m.mu.Lock()
	if err != nil {
		m.states[key] = CallFailed
	} else {
		m.states[key] = CallApplied
	}
	m.mu.Unlock()
}

// withFallback đảm bảo lỗi mang message hiển thị được: message của kho dữ
// liệu nếu có, ngược lại fallback của từng hành động
func withFallback(err error, fallback string) error {
	if err == nil {
		return nil
	}
	appErr := errors.GetAppError(err)
	if appErr == nil {
		return errors.NewAppError(errors.ErrCodeRemote, fallback, err)
	}
	if appErr.Message == "" {
		return errors.NewAppError(appErr.Code, fallback, appErr.Err)
	}
	return appErr
}

// normalizeRoomTenants resolve lịch thanh toán cho từng tenant của phòng mà
// kho dữ liệu trả về, trước khi ghi vào store
func normalizeRoomTenants(room models.Room) models.Room {
	if len(room.Tenants) == 0 {
		return room
	}
	tenants := make([]models.Tenant, len(room.Tenants))
	for i, t := range room.Tenants {
		t.PaymentSchedule = models.ResolveSchedule(t.PaymentSchedule, room.PaymentSchedule)
		tenants[i] = t
	}
	room.Tenants = tenants
	return room
}

// FetchProperties tải danh sách property và thay snapshot trong store
func (m *MutationCoordinator) FetchProperties(ctx context.Context) ([]models.Property, error) {
	key := "properties:fetch"
	m.begin(key)

	properties, err := m.backend.FetchProperties(ctx)
	if err != nil {
		m.finish(key, err)
		m.logger.Error("Error fetching properties: %v", err)
		return nil, withFallback(err, "Failed to load properties")
	}

	m.store.SetProperties(properties)
	m.finish(key, nil)
	return properties, nil
}

// FetchRoomsForAllProperties fan-out một request mỗi property, đợi tất cả
// rồi ghi store một lần duy nhất. Một property lỗi không làm hỏng cả đợt:
// property đó nhận danh sách phòng rỗng.
func (m *MutationCoordinator) FetchRoomsForAllProperties(ctx context.Context, properties []models.Property) map[uint][]models.Room {
	key := "rooms:fetch"
	m.begin(key)

	type roomsResult struct {
		propertyID uint
		rooms      []models.Room
	}

	resultCh := make(chan roomsResult, len(properties))
	var wg sync.WaitGroup

	for _, property := range properties {
		wg.Add(1)
		go func(p models.Property) {
			defer wg.Done()
			rooms, err := m.backend.FetchRooms(ctx, p.ID)
			if err != nil {
				m.logger.Error("Error fetching rooms for property %d: %v", p.ID, err)
				resultCh <- roomsResult{propertyID: p.ID, rooms: []models.Room{}}
				return
			}
			if rooms == nil {
				rooms = []models.Room{}
			}
			resultCh <- roomsResult{propertyID: p.ID, rooms: rooms}
		}(property)
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	all := make(map[uint][]models.Room, len(properties))
	for r := range resultCh {
		all[r.propertyID] = r.rooms
	}

	m.store.SetAllRooms(all)
	m.finish(key, nil)
	return all
}

// RefreshAll tải lại toàn bộ snapshot: properties trước, rồi fan-out phòng
func (m *MutationCoordinator) RefreshAll(ctx context.Context) error {
	properties, err := m.FetchProperties(ctx)
	if err != nil {
		return err
	}
	m.FetchRoomsForAllProperties(ctx, properties)
	return nil
}

// CreateProperty validate rồi tạo property; store chỉ ghi khi đã xác nhận
func (m *MutationCoordinator) CreateProperty(ctx context.Context, form dto.PropertyForm) (models.Property, error) {
	if err := validator.ValidatePropertyForm(&form); err != nil {
		return models.Property{}, err
	}

	key := "property:create"
	m.begin(key)

	created, err := m.backend.CreateProperty(ctx, form)
	if err != nil {
		m.finish(key, err)
		m.logger.Error("Error adding property: %v", err)
		return models.Property{}, withFallback(err, "Error adding property")
	}

	m.store.UpsertProperty(created)
	m.finish(key, nil)
	return created, nil
}

// UpdateProperty validate rồi cập nhật property
func (m *MutationCoordinator) UpdateProperty(ctx context.Context, id uint, form dto.PropertyForm) (models.Property, error) {
	if err := validator.ValidatePropertyForm(&form); err != nil {
		return models.Property{}, err
	}

	key := fmt.Sprintf("property:update:%d", id)
	m.begin(key)

	updated, err := m.backend.UpdateProperty(ctx, id, form)
	if err != nil {
		m.finish(key, err)
		m.logger.Error("Error updating property %d: %v", id, err)
		return models.Property{}, withFallback(err, "Error updating property")
	}

	m.store.UpsertProperty(updated)
	m.finish(key, nil)
	return updated, nil
}

// DeleteProperty xóa property sau khi người dùng đã xác nhận.
// Từ chối xác nhận thì không có request nào được gửi.
func (m *MutationCoordinator) DeleteProperty(ctx context.Context, id uint, confirmed bool) error {
	if !confirmed {
		return errors.NewAppError(errors.ErrCodeConfirmRequired, "Delete this property and all its rooms? This action cannot be undone.", nil)
	}

	key := fmt.Sprintf("property:delete:%d", id)
	m.begin(key)

	if err := m.backend.DeleteProperty(ctx, id); err != nil {
		m.finish(key, err)
		m.logger.Error("Error deleting property %d: %v", id, err)
		return withFallback(err, "Error deleting property")
	}

	// Cascade cục bộ: property kéo theo phòng, phòng kéo theo tenant
	m.store.RemoveProperty(id)
	m.finish(key, nil)
	return nil
}

// CreateRoom validate rồi tạo phòng trong một property
func (m *MutationCoordinator) CreateRoom(ctx context.Context, propertyID uint, form dto.RoomForm) (models.Room, error) {
	if err := validator.ValidateRoomForm(&form); err != nil {
		return models.Room{}, err
	}

	key := fmt.Sprintf("room:create:%d", propertyID)
	m.begin(key)

	created, err := m.backend.CreateRoom(ctx, propertyID, form.Payload())
	if err != nil {
		m.finish(key, err)
		m.logger.Error("Error saving room: %v", err)
		return models.Room{}, withFallback(err, "Error adding room")
	}

	m.store.UpsertRoom(propertyID, created)
	m.finish(key, nil)
	return created, nil
}

// UpdateRoom validate rồi cập nhật phòng
func (m *MutationCoordinator) UpdateRoom(ctx context.Context, propertyID, roomID uint, form dto.RoomForm) (models.Room, error) {
	if err := validator.ValidateRoomForm(&form); err != nil {
		return models.Room{}, err
	}

	key := fmt.Sprintf("room:update:%d", roomID)
	m.begin(key)

	updated, err := m.backend.UpdateRoom(ctx, propertyID, roomID, form.Payload())
	if err != nil {
		m.finish(key, err)
		m.logger.Error("Error updating room %d: %v", roomID, err)
		return models.Room{}, withFallback(err, "Error updating room")
	}

	m.store.UpsertRoom(propertyID, normalizeRoomTenants(updated))
	m.finish(key, nil)
	return updated, nil
}

// DeleteRoom xóa phòng sau xác nhận; tenant trong phòng biến mất theo
func (m *MutationCoordinator) DeleteRoom(ctx context.Context, propertyID, roomID uint, confirmed bool) error {
	if !confirmed {
		return errors.NewAppError(errors.ErrCodeConfirmRequired, "Delete this room and its tenant assignments? This action cannot be undone.", nil)
	}

	key := fmt.Sprintf("room:delete:%d", roomID)
	m.begin(key)

	if err := m.backend.DeleteRoom(ctx, propertyID, roomID); err != nil {
		m.finish(key, err)
		m.logger.Error("Error deleting room %d: %v", roomID, err)
		return withFallback(err, "Error deleting room")
	}

	m.store.RemoveRoom(propertyID, roomID)
	m.finish(key, nil)
	return nil
}

// AssignTenant gán tenant theo email. Kho dữ liệu resolve email thành tenant
// và trả về cả phòng; danh sách tenant được normalize lịch thanh toán rồi
// thay thế nguyên khối trong store.
func (m *MutationCoordinator) AssignTenant(ctx context.Context, propertyID, roomID uint, email string) (models.Room, error) {
	trimmed, err := validator.ValidateTenantEmail(email)
	if err != nil {
		return models.Room{}, err
	}

	key := fmt.Sprintf("tenant:assign:%d", roomID)
	m.begin(key)

	updated, err := m.backend.AssignTenant(ctx, propertyID, roomID, trimmed)
	if err != nil {
		m.finish(key, err)
		m.logger.Error("Error assigning tenant to room %d: %v", roomID, err)
		return models.Room{}, withFallback(err, "Error assigning tenant")
	}

	normalized := normalizeRoomTenants(updated)
	m.store.ReplaceRoomTenants(propertyID, roomID, normalized.Tenants)
	m.finish(key, nil)
	return normalized, nil
}

// RemoveTenant gỡ tenant khỏi phòng sau xác nhận; xử lý kết quả như AssignTenant
func (m *MutationCoordinator) RemoveTenant(ctx context.Context, propertyID, roomID, tenantID uint, confirmed bool) (models.Room, error) {
	if !confirmed {
		return models.Room{}, errors.NewAppError(errors.ErrCodeConfirmRequired, "Remove this tenant from the room?", nil)
	}

	key := fmt.Sprintf("tenant:remove:%d:%d", roomID, tenantID)
	m.begin(key)

	updated, err := m.backend.RemoveTenant(ctx, propertyID, roomID, tenantID)
	if err != nil {
		m.finish(key, err)
		m.logger.Error("Error removing tenant %d from room %d: %v", tenantID, roomID, err)
		return models.Room{}, withFallback(err, "Error removing tenant")
	}

	normalized := normalizeRoomTenants(updated)
	m.store.ReplaceRoomTenants(propertyID, roomID, normalized.Tenants)
	m.finish(key, nil)
	return normalized, nil
}

// MyRoom tra cứu phòng của tenant; nil nghĩa là chưa được gán phòng
func (m *MutationCoordinator) MyRoom(ctx context.Context) (*models.TenantResidence, error) {
	residence, err := m.backend.MyRoom(ctx)
	if err != nil {
		m.logger.Error("Error fetching tenant room: %v", err)
		return nil, withFallback(err, "Could not load your room details.")
	}
	if residence != nil && residence.Room != nil {
		normalized := normalizeRoomTenants(*residence.Room)
		residence.Room = &normalized
	}
	return residence, nil
}

// ListBills lấy các khoản thanh toán tenant đã nộp
func (m *MutationCoordinator) ListBills(ctx context.Context) ([]models.Bill, error) {
	bills, err := m.backend.ListBills(ctx)
	if err != nil {
		m.logger.Error("Failed fetching bills: %v", err)
		return nil, withFallback(err, "Could not load your payments.")
	}
	return bills, nil
}

// SubmitBill validate rồi nộp một khoản thanh toán
func (m *MutationCoordinator) SubmitBill(ctx context.Context, form dto.BillPaymentForm) error {
	amount, err := validator.ValidateBillPayment(&form)
	if err != nil {
		return err
	}

	key := "bill:submit"
	m.begin(key)

	payload := dto.BillPaymentRequest{Amount: amount, Type: form.Type}
	if err := m.backend.SubmitBill(ctx, payload); err != nil {
		m.finish(key, err)
		m.logger.Error("Payment submit error: %v", err)
		return withFallback(err, "Failed to submit payment. Try again.")
	}

	m.finish(key, nil)
	return nil
}

// ConcernsCount lấy số yêu cầu đang chờ; lỗi chỉ làm giảm cấp về 0
func (m *MutationCoordinator) ConcernsCount(ctx context.Context) int {
	count, err := m.backend.ConcernsCount(ctx)
	if err != nil {
		m.logger.Debug("Error fetching concerns count: %v", err)
		return 0
	}
	return count
}
