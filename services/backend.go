package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"casaboard/dto"
	"casaboard/errors"
	"casaboard/models"
)

// BackendClient là client REST tới kho dữ liệu property. Token của phiên
// được gắn vào mọi request; client không giữ state nào khác.
type BackendClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewBackendClient tạo client cho một phiên đăng nhập
func NewBackendClient(baseURL, token string) *BackendClient {
	return &BackendClient{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// remoteErrorBody là body lỗi JSON của kho dữ liệu, message có thể vắng
type remoteErrorBody struct {
	Message string `json:"message"`
}

// do gửi một request JSON và decode kết quả vào out (nếu có)
func (c *BackendClient) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeRemote, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errors.NewAppError(errors.ErrCodeNotFound, remoteMessage(resp.Body), nil)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.NewAppError(errors.ErrCodeRemote, remoteMessage(resp.Body), nil)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// remoteMessage đọc message từ body lỗi, trả về chuỗi rỗng nếu không có
func remoteMessage(body io.Reader) string {
	var parsed remoteErrorBody
	if err := json.NewDecoder(body).Decode(&parsed); err != nil {
		return ""
	}
	return parsed.Message
}

// FetchProperties lấy toàn bộ property của chủ nhà
func (c *BackendClient) FetchProperties(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	if err := c.do(ctx, http.MethodGet, "/properties", nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// FetchRooms lấy danh sách phòng của một property
func (c *BackendClient) FetchRooms(ctx context.Context, propertyID uint) ([]models.Room, error) {
	var rooms []models.Room
	path := fmt.Sprintf("/properties/%d/rooms", propertyID)
	if err := c.do(ctx, http.MethodGet, path, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// CreateProperty tạo property mới, trả về bản ghi đã tạo
func (c *BackendClient) CreateProperty(ctx context.Context, form dto.PropertyForm) (models.Property, error) {
	var created models.Property
	if err := c.do(ctx, http.MethodPost, "/properties", form, &created); err != nil {
		return models.Property{}, err
	}
	return created, nil
}

// UpdateProperty cập nhật property, trả về bản ghi sau cập nhật
func (c *BackendClient) UpdateProperty(ctx context.Context, id uint, form dto.PropertyForm) (models.Property, error) {
	var updated models.Property
	path := fmt.Sprintf("/properties/%d", id)
	if err := c.do(ctx, http.MethodPut, path, form, &updated); err != nil {
		return models.Property{}, err
	}
	return updated, nil
}

// DeleteProperty xóa property; kho dữ liệu cascade phía server
func (c *BackendClient) DeleteProperty(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/properties/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// CreateRoom tạo phòng trong một property
func (c *BackendClient) CreateRoom(ctx context.Context, propertyID uint, payload dto.RoomPayload) (models.Room, error) {
	var created models.Room
	path := fmt.Sprintf("/properties/%d/rooms", propertyID)
	if err := c.do(ctx, http.MethodPost, path, payload, &created); err != nil {
		return models.Room{}, err
	}
	return created, nil
}

// UpdateRoom cập nhật phòng
func (c *BackendClient) UpdateRoom(ctx context.Context, propertyID, roomID uint, payload dto.RoomPayload) (models.Room, error) {
	var updated models.Room
	path := fmt.Sprintf("/properties/%d/rooms/%d", propertyID, roomID)
	if err := c.do(ctx, http.MethodPut, path, payload, &updated); err != nil {
		return models.Room{}, err
	}
	return updated, nil
}

// DeleteRoom xóa một phòng
func (c *BackendClient) DeleteRoom(ctx context.Context, propertyID, roomID uint) error {
	path := fmt.Sprintf("/properties/%d/rooms/%d", propertyID, roomID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// AssignTenant gán tenant theo email; kho dữ liệu trả về cả phòng đã cập nhật
func (c *BackendClient) AssignTenant(ctx context.Context, propertyID, roomID uint, email string) (models.Room, error) {
	var updated models.Room
	path := fmt.Sprintf("/properties/%d/rooms/%d/assign-tenant", propertyID, roomID)
	if err := c.do(ctx, http.MethodPost, path, dto.AssignTenantRequest{TenantEmail: email}, &updated); err != nil {
		return models.Room{}, err
	}
	return updated, nil
}

// RemoveTenant gỡ tenant khỏi phòng; kho dữ liệu trả về phòng đã cập nhật
func (c *BackendClient) RemoveTenant(ctx context.Context, propertyID, roomID, tenantID uint) (models.Room, error) {
	var updated models.Room
	path := fmt.Sprintf("/properties/%d/rooms/%d/tenants/%d", propertyID, roomID, tenantID)
	if err := c.do(ctx, http.MethodDelete, path, nil, &updated); err != nil {
		return models.Room{}, err
	}
	return updated, nil
}

// MyRoom tra cứu phòng của tenant đang đăng nhập.
// 404 nghĩa là chưa được gán phòng, không phải lỗi: trả về nil.
func (c *BackendClient) MyRoom(ctx context.Context) (*models.TenantResidence, error) {
	var residence models.TenantResidence
	if err := c.do(ctx, http.MethodGet, "/properties/tenants/me/room", nil, &residence); err != nil {
		if errors.IsCode(err, errors.ErrCodeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &residence, nil
}

// ListBills lấy các khoản thanh toán tenant đã nộp
func (c *BackendClient) ListBills(ctx context.Context) ([]models.Bill, error) {
	var parsed dto.BillListResponse
	if err := c.do(ctx, http.MethodGet, "/bills", nil, &parsed); err != nil {
		return nil, err
	}
	if parsed.Bills == nil {
		return []models.Bill{}, nil
	}
	return parsed.Bills, nil
}

// SubmitBill nộp một khoản thanh toán
func (c *BackendClient) SubmitBill(ctx context.Context, payload dto.BillPaymentRequest) error {
	return c.do(ctx, http.MethodPost, "/bills", payload, nil)
}

// ConcernsCount lấy số yêu cầu/phản ánh đang chờ của chủ nhà
func (c *BackendClient) ConcernsCount(ctx context.Context) (int, error) {
	var parsed dto.ConcernsCountResponse
	if err := c.do(ctx, http.MethodGet, "/concerns/count", nil, &parsed); err != nil {
		return 0, err
	}
	return parsed.Count, nil
}
