package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brickmart/console-backend-go/internal/domain/user"
	"github.com/brickmart/console-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter builds a router with nil services. Requests in these tests
// must be rejected by middleware before any handler runs.
func newTestRouter(jwtSvc jwt.Service) http.Handler {
	handlers := Handlers{
		Auth:       NewAuthHandler(jwtSvc, nil, nil, "http://localhost:3000"),
		Employee:   NewEmployeeHandler(nil),
		Attendance: NewAttendanceHandler(nil),
		Salary:     NewSalaryHandler(nil),
		Customer:   NewCustomerHandler(nil),
		Catalog:    NewCatalogHandler(nil),
		Order:      NewOrderHandler(nil),
		Campaign:   NewCampaignHandler(nil),
		Ticket:     NewTicketHandler(nil),
		Dashboard:  NewDashboardHandler(nil),
	}

	return NewRouter(RouterConfig{
		Env:         "test",
		FrontendURL: "http://localhost:3000",
	}, jwtSvc, handlers)
}

func TestRouter_AdminRoutesRejectStaffToken(t *testing.T) {
	jwtSvc := jwt.NewJWTService("test-secret", "1h", "168h")
	router := newTestRouter(jwtSvc)

	token, _, err := jwtSvc.GenerateAccessToken("user-1", "cashier@example.com", user.RoleCashier)
	require.NoError(t, err)

	adminPaths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/employees/"},
		{http.MethodGet, "/api/v1/dashboard"},
		{http.MethodPost, "/api/v1/salaries/reconcile"},
		{http.MethodGet, "/api/v1/customers/"},
		{http.MethodGet, "/api/v1/categories/"},
		{http.MethodGet, "/api/v1/products/"},
		{http.MethodGet, "/api/v1/inventory/"},
		{http.MethodGet, "/api/v1/orders/"},
		{http.MethodGet, "/api/v1/campaigns/"},
		{http.MethodGet, "/api/v1/tickets/"},
	}

	for _, route := range adminPaths {
		req := httptest.NewRequest(route.method, route.path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code, "%s %s should be admin only", route.method, route.path)
	}
}

func TestRouter_AdminRoutesRejectMissingToken(t *testing.T) {
	jwtSvc := jwt.NewJWTService("test-secret", "1h", "168h")
	router := newTestRouter(jwtSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_AdminRoutesAllowAdminToken(t *testing.T) {
	jwtSvc := jwt.NewJWTService("test-secret", "1h", "168h")
	router := newTestRouter(jwtSvc)

	token, _, err := jwtSvc.GenerateAccessToken("admin-1", "admin@example.com", user.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.NotEqual(t, http.StatusForbidden, rec.Code)
	assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
}
