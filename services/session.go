package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"casaboard/errors"
	"casaboard/models"
	"casaboard/services/logger"

	"github.com/redis/go-redis/v9"
)

// SessionCredentials là thông tin đăng nhập của một phiên, nguồn duy nhất
// để trả lời "phiên này đã xác thực chưa, với vai trò gì"
type SessionCredentials struct {
	Token  string `json:"token"`
	UserID uint   `json:"userId"`
	Role   int    `json:"role"`
}

// DashboardSession gói toàn bộ trạng thái phía client của một phiên:
// cache entity, trạng thái giao diện, buffer form và coordinator.
// Mutex của phiên serialize mọi thao tác, tái hiện mô hình event-loop
// đơn luồng: không có song song thật trong một phiên, chỉ có các
// completion xen kẽ.
type DashboardSession struct {
	mu sync.Mutex

	ID          string
	Credentials SessionCredentials
	Store       *EntityStore
	UIState     *UIStateMaps
	Forms       *FormStateManager
	Coordinator *MutationCoordinator

	// Kết quả aggregate gần nhất, tính lại ngay sau mỗi lần store thay đổi
	Tenants []models.AggregatedTenant
	Metrics models.PortfolioMetrics

	loaded bool
}

// Lock serialize các thao tác của phiên
func (s *DashboardSession) Lock() { s.mu.Lock() }

// Unlock mở khóa phiên
func (s *DashboardSession) Unlock() { s.mu.Unlock() }

// Recompute tính lại các view dẫn xuất; phải gọi sau mỗi mutation đã
// xác nhận và trước khi trả state cho client, để không lộ aggregation cũ
func (s *DashboardSession) Recompute() {
	s.Tenants, s.Metrics = Aggregate(s.Store.Properties(), s.Store.RoomsByProperty())
}

// EnsureLoaded tải snapshot lần đầu cho phiên owner
func (s *DashboardSession) EnsureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	if err := s.Coordinator.RefreshAll(ctx); err != nil {
		return err
	}
	s.UIState.InitForProperties(s.Store.Properties())
	s.Recompute()
	s.loaded = true
	return nil
}

// SessionManager giữ các phiên đang sống trong bộ nhớ và lưu credentials
// vào Redis để phiên sống qua restart của gateway. Cache entity không bao
// giờ được ghi ra ngoài bộ nhớ.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*DashboardSession

	rdb        *redis.Client
	backendURL string
	logger     logger.Logger
	ttl        time.Duration
}

// SessionManagerOptions gom dependency khi khởi tạo
type SessionManagerOptions struct {
	Redis      *redis.Client
	BackendURL string
	Logger     logger.Logger
	TTL        time.Duration
}

// NewSessionManager tạo registry phiên
func NewSessionManager(opts SessionManagerOptions) *SessionManager {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	ttl := opts.TTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &SessionManager{
		sessions:   make(map[string]*DashboardSession),
		rdb:        opts.Redis,
		backendURL: opts.BackendURL,
		logger:     l,
		ttl:        ttl,
	}
}

// Ensure trả về phiên cho cặp (sessionID, token), tạo mới nếu chưa có.
// Token đổi (đăng nhập lại) thì phiên được dựng lại từ đầu.
func (m *SessionManager) Ensure(ctx context.Context, sessionID, token string) (*DashboardSession, error) {
	if token == "" {
		return nil, errors.NewAppError(errors.ErrCodeMissingToken, "Not authenticated. Please sign in.", nil)
	}

	userID, role, err := GetUserIDFromToken(token)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	existing, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if ok && existing.Credentials.Token == token {
		return existing, nil
	}

	creds := SessionCredentials{Token: token, UserID: userID, Role: role}
	session := m.buildSession(sessionID, creds)

	m.mu.Lock()
	m.sessions[sessionID] = session
	m.mu.Unlock()

	// Phiên đã có credentials trong Redis là phiên sống lại sau restart:
	// cache phải dựng lại từ đầu, chỉ credentials được khôi phục
	saved, err := m.LoadCredentials(ctx, sessionID)
	if err != nil {
		m.logger.Error("Error reading session %s from Redis: %v", sessionID, err)
	}
	if saved != nil && saved.Token == token {
		m.logger.Debug("Session %s resumed from saved credentials", sessionID)
		return session, nil
	}

	if err := m.saveCredentials(ctx, sessionID, creds); err != nil {
		m.logger.Error("Error saving session %s to Redis: %v", sessionID, err)
	}

	return session, nil
}

// Drop bỏ phiên và credentials của nó (logout); cache của phiên mất theo
func (m *SessionManager) Drop(ctx context.Context, sessionID string) {
	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()

	if m.rdb != nil {
		if err := m.rdb.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
			m.logger.Error("Error deleting session %s from Redis: %v", sessionID, err)
		}
	}
}

// buildSession dựng phiên mới với cache rỗng
func (m *SessionManager) buildSession(sessionID string, creds SessionCredentials) *DashboardSession {
	store := NewEntityStore()
	backend := NewBackendClient(m.backendURL, creds.Token)
	return &DashboardSession{
		ID:          sessionID,
		Credentials: creds,
		Store:       store,
		UIState:     NewUIStateMaps(),
		Forms:       NewFormStateManager(),
		Coordinator: NewMutationCoordinator(MutationCoordinatorOptions{
			Backend: backend,
			Store:   store,
			Logger:  m.logger,
		}),
	}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// saveCredentials lưu credentials phiên vào Redis với TTL
func (m *SessionManager) saveCredentials(ctx context.Context, sessionID string, creds SessionCredentials) error {
	if m.rdb == nil {
		return nil
	}
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return m.rdb.Set(ctx, sessionKey(sessionID), data, m.ttl).Err()
}

// LoadCredentials đọc credentials đã lưu của một phiên; nil nếu không có
func (m *SessionManager) LoadCredentials(ctx context.Context, sessionID string) (*SessionCredentials, error) {
	if m.rdb == nil {
		return nil, nil
	}
	data, err := m.rdb.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var creds SessionCredentials
	if err := json.Unmarshal([]byte(data), &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}
