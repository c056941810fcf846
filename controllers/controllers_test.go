package controllers_test

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"casaboard/constants"
	"casaboard/routes"
	"casaboard/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeToken(role int) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := fmt.Sprintf(`{"exp":%d,"userinfo":{"userid":7,"role":%d}}`, time.Now().Add(time.Hour).Unix(), role)
	body := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return header + "." + body + ".signature"
}

func newTestApp(t *testing.T, backend http.Handler) (*gin.Engine, *services.SessionManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	sessions := services.NewSessionManager(services.SessionManagerOptions{
		BackendURL: server.URL,
	})

	router := gin.New()
	routes.SetupRoutes(router, sessions)
	return router, sessions
}

func doRequest(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Session-ID", "test-session")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func portfolioBackend() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/properties", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"propertyName":"Casa Feliz","address":"12 Mabini St"}]`))
	})
	mux.HandleFunc("/properties/1/rooms", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":10,"propertyId":1,"roomNumber":"101","paymentSchedule":"15th","tenants":[{"id":100,"firstName":"Jane","lastName":"Smith","email":"jane@example.com"}]}]`))
	})
	return mux
}

func TestDashboardReturnsFullSnapshot(t *testing.T) {
	router, _ := newTestApp(t, portfolioBackend())

	w := doRequest(router, http.MethodGet, "/api/v1/dashboard", "", makeToken(constants.RoleOwner))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Casa Feliz")
	assert.Contains(t, body, "Jane")
	// Lịch của Jane resolve theo phòng trong view tổng hợp
	assert.Contains(t, body, `"paymentSchedule":"15th"`)
	assert.Contains(t, body, `"totalProperties":1`)
	assert.Contains(t, body, `"occupancyPct":100`)
}

func TestDashboardRequiresOwnerRole(t *testing.T) {
	router, _ := newTestApp(t, portfolioBackend())

	w := doRequest(router, http.MethodGet, "/api/v1/dashboard", "", makeToken(constants.RoleTenant))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDashboardRejectsMissingToken(t *testing.T) {
	router, _ := newTestApp(t, portfolioBackend())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeletePropertyWithoutConfirmSendsNoRequest(t *testing.T) {
	var deletes int32
	mux := http.NewServeMux()
	mux.HandleFunc("/properties/1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			atomic.AddInt32(&deletes, 1)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	router, _ := newTestApp(t, mux)

	w := doRequest(router, http.MethodDelete, "/api/v1/properties/1", "", makeToken(constants.RoleOwner))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "This action cannot be undone")
	assert.Equal(t, int32(0), atomic.LoadInt32(&deletes))
}

func TestCreatePropertyValidationError(t *testing.T) {
	router, _ := newTestApp(t, portfolioBackend())

	w := doRequest(router, http.MethodPost, "/api/v1/properties", `{"propertyName":""}`, makeToken(constants.RoleOwner))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please fill property name and address.")
}

func TestTenantEmailBuffersStayIsolated(t *testing.T) {
	router, sessions := newTestApp(t, portfolioBackend())
	token := makeToken(constants.RoleOwner)

	w := doRequest(router, http.MethodPut, "/api/v1/forms/rooms/10/tenant", `{"email":"jane@example.com"}`, token)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(router, http.MethodPut, "/api/v1/forms/rooms/11/tenant", `{"email":"john@example.com"}`, token)
	require.Equal(t, http.StatusOK, w.Code)

	session, err := sessions.Ensure(context.Background(), "test-session", token)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", session.Forms.TenantEmail(10))
	assert.Equal(t, "john@example.com", session.Forms.TenantEmail(11))
}

func TestToggleExpandReturnsUIState(t *testing.T) {
	router, _ := newTestApp(t, portfolioBackend())
	token := makeToken(constants.RoleOwner)

	w := doRequest(router, http.MethodPost, "/api/v1/ui/properties/1/expand", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"expanded":{"1":true}`)

	w = doRequest(router, http.MethodPost, "/api/v1/ui/properties/1/expand", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"expanded":{"1":false}`)
}

func TestSessionRegisterAndLogout(t *testing.T) {
	router, _ := newTestApp(t, portfolioBackend())
	token := makeToken(constants.RoleOwner)

	w := doRequest(router, http.MethodPost, "/api/v1/session", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sessionId":"test-session"`)
	assert.Contains(t, w.Body.String(), `"role":2`)

	w = doRequest(router, http.MethodDelete, "/api/v1/session", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
}
